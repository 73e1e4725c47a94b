/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package wheel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidFilename indicates a filename that is not a well-formed wheel
// name. Callers treat this as skip-and-warn, never as fatal.
var ErrInvalidFilename = errors.New("invalid wheel filename")

// Wheel identifies one compiled distribution of one release, decomposed from
// its filename per the binary-distribution format spec:
//
//	{distribution}-{version}[-{build}]-{python}-{abi}-{platform}.whl
//
// Tag fields are sets: a dotted compound tag like "py2.py3" expands to both
// members. Wheels are immutable after construction.
type Wheel struct {
	// Name is the full original filename, kept for display and reporting.
	Name string `json:"name"`

	Distribution string `json:"-"`
	Version      string `json:"-"`
	Build        string `json:"-"`

	PythonTags   []string `json:"python_tags"`
	ABITags      []string `json:"abi_tags"`
	PlatformTags []string `json:"-"`
}

// ParseFilename decomposes a wheel filename into its structured tags.
// Returns an error wrapping ErrInvalidFilename if the name does not follow
// the wheel naming convention.
func ParseFilename(name string) (Wheel, error) {
	base, ok := strings.CutSuffix(name, ".whl")
	if !ok {
		return Wheel{}, fmt.Errorf("%w: %q: missing .whl extension", ErrInvalidFilename, name)
	}

	parts := strings.Split(base, "-")
	if len(parts) != 5 && len(parts) != 6 {
		return Wheel{}, fmt.Errorf("%w: %q: expected 5 or 6 dash-separated fields, got %d",
			ErrInvalidFilename, name, len(parts))
	}
	for _, part := range parts {
		if part == "" {
			return Wheel{}, fmt.Errorf("%w: %q: empty field", ErrInvalidFilename, name)
		}
	}

	w := Wheel{
		Name:         name,
		Distribution: parts[0],
		Version:      parts[1],
	}
	rest := parts[2:]
	if len(parts) == 6 {
		w.Build = parts[2]
		rest = parts[3:]
	}

	w.PythonTags = splitTagSet(rest[0])
	w.ABITags = splitTagSet(rest[1])
	w.PlatformTags = splitTagSet(rest[2])
	return w, nil
}

// splitTagSet expands a compound tag field ("py2.py3") into its sorted,
// deduplicated members.
func splitTagSet(field string) []string {
	members := strings.Split(field, ".")
	seen := make(map[string]struct{}, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// HasABITag reports whether the wheel's ABI tag set contains tag.
func (w Wheel) HasABITag(tag string) bool {
	for _, t := range w.ABITags {
		if t == tag {
			return true
		}
	}
	return false
}
