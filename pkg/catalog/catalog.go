/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"log/slog"
	"sort"

	"github.com/ento/pyreadiness-spike/pkg/version"
	"github.com/ento/pyreadiness-spike/pkg/wheel"
)

// PackageTypeWheel is the index's package-type tag for compiled (binary)
// distributions. Source distributions carry "sdist" and are excluded.
const PackageTypeWheel = "bdist_wheel"

// FileMeta is one distribution-file record from the index's per-release file
// list. Field names mirror the index JSON.
type FileMeta struct {
	Filename    string `json:"filename"`
	Yanked      bool   `json:"yanked"`
	PackageType string `json:"packagetype"`
}

// Release is one published version of a package together with the wheels
// that survived filtering. Releases are comparable and sortable solely by
// their version; a Release without wheels is never materialized.
type Release struct {
	Version version.Version `json:"version"`
	Wheels  []wheel.Wheel   `json:"wheels"`
}

// Less orders releases by version only.
func (r Release) Less(other Release) bool {
	return r.Version.Less(other.Version)
}

// Releases turns raw per-package release metadata into the sorted catalog the
// classifier consumes. Per the filtering contract:
//
//   - version strings that fail to parse are skipped with a warning
//   - pre-releases are discarded entirely
//   - only unyanked wheel files are considered
//   - filenames that fail to parse are skipped with a warning
//   - a version with zero usable wheels is not emitted at all
//
// The result is ordered ascending by version, so the latest release is the
// last element. No skip is fatal; a package whose metadata is entirely
// unusable simply yields an empty catalog.
func Releases(project string, releases map[string][]FileMeta) []Release {
	out := make([]Release, 0, len(releases))
	for versionString, files := range releases {
		v, err := version.ParseVersion(versionString)
		if err != nil {
			slog.Warn("skipping version with invalid format",
				"project", project,
				"version", versionString,
				"error", err)
			continue
		}
		if v.IsPrerelease() {
			continue
		}

		wheels := collectWheels(files)
		if len(wheels) == 0 {
			continue
		}
		out = append(out, Release{Version: v, Wheels: wheels})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// collectWheels filters one release's file records down to parseable,
// unyanked wheels.
func collectWheels(files []FileMeta) []wheel.Wheel {
	wheels := make([]wheel.Wheel, 0, len(files))
	for _, f := range files {
		if f.Yanked {
			continue
		}
		if f.PackageType != PackageTypeWheel {
			continue
		}
		w, err := wheel.ParseFilename(f.Filename)
		if err != nil {
			slog.Warn("skipping wheel with invalid filename",
				"filename", f.Filename,
				"error", err)
			continue
		}
		wheels = append(wheels, w)
	}
	return wheels
}

// Latest returns the newest release in a sorted catalog, or false if the
// catalog is empty.
func Latest(releases []Release) (Release, bool) {
	if len(releases) == 0 {
		return Release{}, false
	}
	return releases[len(releases)-1], true
}

// Previous returns the second-newest release in a sorted catalog, or false
// if there is none.
func Previous(releases []Release) (Release, bool) {
	if len(releases) < 2 {
		return Release{}, false
	}
	return releases[len(releases)-2], true
}
