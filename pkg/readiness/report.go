/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package readiness

import (
	"strconv"
	"strings"

	"github.com/ento/pyreadiness-spike/pkg/catalog"
	"github.com/ento/pyreadiness-spike/pkg/version"
	"github.com/ento/pyreadiness-spike/pkg/wheel"
)

// ProjectReport is the per-package output record. Built once per run and not
// mutated after construction; the field tags define the output contract.
type ProjectReport struct {
	Project             string           `json:"project" yaml:"project"`
	LatestVersion       *version.Version `json:"latest_version" yaml:"latest_version"`
	LatestWheels        []wheel.Wheel    `json:"latest_wheels" yaml:"latest_wheels"`
	PreviousVersion     *version.Version `json:"previous_version" yaml:"previous_version"`
	PreviousWheels      []wheel.Wheel    `json:"previous_wheels" yaml:"previous_wheels"`
	ClassifierVersions  []string         `json:"classifier_versions" yaml:"classifier_versions"`
	VersionReadiness    Status           `json:"version_readiness" yaml:"version_readiness"`
	ClassifierReadiness Status           `json:"classifier_readiness" yaml:"classifier_readiness"`
	CombinedReadiness   Status           `json:"combined_readiness" yaml:"combined_readiness"`
}

// BuildReport evaluates both readiness signals for one package and assembles
// its report record. The releases slice must be the sorted catalog produced
// by catalog.Releases; classifiers are the package's raw trove classifier
// strings.
func BuildReport(target version.Version, project string, releases []catalog.Release, classifiers []string) ProjectReport {
	versionStatus := ByWheelTags(target, releases)
	classifierStatus := ByClassifiers(target, classifiers)

	report := ProjectReport{
		Project:             project,
		LatestWheels:        []wheel.Wheel{},
		PreviousWheels:      []wheel.Wheel{},
		ClassifierVersions:  declaredVersions(target, classifiers),
		VersionReadiness:    versionStatus,
		ClassifierReadiness: classifierStatus,
		CombinedReadiness:   Combine(versionStatus, classifierStatus),
	}

	if latest, ok := catalog.Latest(releases); ok {
		v := latest.Version
		report.LatestVersion = &v
		report.LatestWheels = latest.Wheels
	}
	if previous, ok := catalog.Previous(releases); ok {
		v := previous.Version
		report.PreviousVersion = &v
		report.PreviousWheels = previous.Wheels
	}

	return report
}

// declaredVersions collects the Python versions a package's classifiers
// declare within the target's major line, stripped of the common prefix.
// Qualifier entries like "Programming Language :: Python :: 3 :: Only" are
// excluded.
func declaredVersions(target version.Version, classifiers []string) []string {
	majorPrefix := ClassifierString(strconv.Itoa(target.Major()))
	out := make([]string, 0, len(classifiers))
	for _, c := range classifiers {
		if !strings.HasPrefix(c, majorPrefix) {
			continue
		}
		if strings.HasSuffix(c, onlyQualifierSuffix) {
			continue
		}
		out = append(out, strings.TrimPrefix(c, classifierPrefix))
	}
	return out
}
