/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"testing"
)

func wheelFile(name string) FileMeta {
	return FileMeta{Filename: name, PackageType: PackageTypeWheel}
}

func TestReleasesFiltersAndSorts(t *testing.T) {
	releases := map[string][]FileMeta{
		"1.10.0": {wheelFile("pkg-1.10.0-cp312-cp312-manylinux_2_17_x86_64.whl")},
		"1.9.0":  {wheelFile("pkg-1.9.0-cp311-cp311-manylinux_2_17_x86_64.whl")},
		"1.2.0":  {wheelFile("pkg-1.2.0-py3-none-any.whl")},
	}

	got := Releases("pkg", releases)
	if len(got) != 3 {
		t.Fatalf("expected 3 releases, got %d", len(got))
	}
	want := []string{"1.2.0", "1.9.0", "1.10.0"}
	for i, r := range got {
		if r.Version.String() != want[i] {
			t.Errorf("releases[%d] = %s, want %s", i, r.Version, want[i])
		}
	}
}

func TestReleasesSkipsInvalidVersions(t *testing.T) {
	releases := map[string][]FileMeta{
		"not-a-version": {wheelFile("pkg-1.0-py3-none-any.whl")},
		"1.0":           {wheelFile("pkg-1.0-py3-none-any.whl")},
	}

	got := Releases("pkg", releases)
	if len(got) != 1 || got[0].Version.String() != "1.0" {
		t.Fatalf("expected only 1.0, got %+v", got)
	}
}

func TestReleasesDiscardsPrereleases(t *testing.T) {
	releases := map[string][]FileMeta{
		"2.0rc1":    {wheelFile("pkg-2.0rc1-cp312-cp312-manylinux_2_17_x86_64.whl")},
		"2.0.dev0":  {wheelFile("pkg-2.0.dev0-cp312-cp312-manylinux_2_17_x86_64.whl")},
		"1.0a1":     {wheelFile("pkg-1.0a1-py3-none-any.whl")},
		"1.0":       {wheelFile("pkg-1.0-py3-none-any.whl")},
		"2.0.post1": {wheelFile("pkg-2.0.post1-py3-none-any.whl")},
	}

	got := Releases("pkg", releases)
	want := []string{"1.0", "2.0.post1"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %+v", want, got)
	}
	for i, r := range got {
		if r.Version.String() != want[i] {
			t.Errorf("releases[%d] = %s, want %s", i, r.Version, want[i])
		}
	}
}

func TestReleasesSkipsYankedAndSdists(t *testing.T) {
	releases := map[string][]FileMeta{
		"1.0": {
			{Filename: "pkg-1.0-py3-none-any.whl", PackageType: PackageTypeWheel, Yanked: true},
			{Filename: "pkg-1.0.tar.gz", PackageType: "sdist"},
		},
		"1.1": {
			{Filename: "pkg-1.1-py3-none-any.whl", PackageType: PackageTypeWheel, Yanked: true},
			{Filename: "pkg-1.1-cp312-cp312-win_amd64.whl", PackageType: PackageTypeWheel},
		},
	}

	got := Releases("pkg", releases)
	// 1.0 has no usable wheels and must vanish entirely, not appear empty.
	if len(got) != 1 {
		t.Fatalf("expected 1 release, got %+v", got)
	}
	if got[0].Version.String() != "1.1" || len(got[0].Wheels) != 1 {
		t.Errorf("unexpected release %+v", got[0])
	}
}

func TestReleasesSkipsInvalidFilenames(t *testing.T) {
	releases := map[string][]FileMeta{
		"1.0": {
			{Filename: "broken", PackageType: PackageTypeWheel},
			wheelFile("pkg-1.0-py3-none-any.whl"),
		},
	}

	got := Releases("pkg", releases)
	if len(got) != 1 || len(got[0].Wheels) != 1 {
		t.Fatalf("expected single release with single wheel, got %+v", got)
	}
}

func TestReleasesEmptyInput(t *testing.T) {
	if got := Releases("pkg", nil); len(got) != 0 {
		t.Errorf("expected empty catalog, got %+v", got)
	}
}

func TestLatestPrevious(t *testing.T) {
	got := Releases("pkg", map[string][]FileMeta{
		"1.0": {wheelFile("pkg-1.0-py3-none-any.whl")},
		"2.0": {wheelFile("pkg-2.0-py3-none-any.whl")},
	})

	latest, ok := Latest(got)
	if !ok || latest.Version.String() != "2.0" {
		t.Errorf("Latest = %+v, %v", latest, ok)
	}
	previous, ok := Previous(got)
	if !ok || previous.Version.String() != "1.0" {
		t.Errorf("Previous = %+v, %v", previous, ok)
	}

	if _, ok := Latest(nil); ok {
		t.Error("Latest of empty catalog should report false")
	}
	if _, ok := Previous(got[:1]); ok {
		t.Error("Previous of single-release catalog should report false")
	}
}
