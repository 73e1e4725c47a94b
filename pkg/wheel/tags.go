/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package wheel

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ento/pyreadiness-spike/pkg/version"
)

// stableABITag is the forward-compatibility marker: a wheel built against the
// stable ABI runs on every later interpreter of the same major version.
const stableABITag = "abi3"

// ConstraintOp selects how a constraint's version bound is applied.
type ConstraintOp string

const (
	// OpExact matches only the tagged interpreter version.
	OpExact ConstraintOp = "=="
	// OpAtLeast matches the tagged version and anything newer.
	OpAtLeast ConstraintOp = ">="
)

// Constraint is one interpreter version bound derived from a wheel tag.
type Constraint struct {
	Op      ConstraintOp
	Version version.Version
}

// String returns the constraint in requirement syntax, e.g. ">=3.8".
func (c Constraint) String() string {
	return string(c.Op) + c.Version.String()
}

// Matches reports whether target satisfies the constraint.
func (c Constraint) Matches(target version.Version) bool {
	switch c.Op {
	case OpAtLeast:
		return target.EqualsOrNewer(c.Version)
	case OpExact:
		return target.Equal(c.Version)
	default:
		return false
	}
}

// ConstraintSet is a deduplicated collection of constraints gathered from the
// wheels of one release. The zero value is not usable; construct with
// NewConstraintSet or Constraints.
type ConstraintSet struct {
	members map[string]Constraint
}

// NewConstraintSet returns an empty constraint set.
func NewConstraintSet() ConstraintSet {
	return ConstraintSet{members: make(map[string]Constraint)}
}

// Add inserts a constraint; duplicates collapse.
func (s ConstraintSet) Add(c Constraint) {
	s.members[c.String()] = c
}

// Len returns the number of distinct constraints.
func (s ConstraintSet) Len() int {
	return len(s.members)
}

// List returns the constraints sorted by their string form.
func (s ConstraintSet) List() []Constraint {
	out := make([]Constraint, 0, len(s.members))
	for _, c := range s.members {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// AnyMatches reports whether any constraint in the set matches target.
func (s ConstraintSet) AnyMatches(target version.Version) bool {
	for _, c := range s.members {
		if c.Matches(target) {
			return true
		}
	}
	return false
}

// MinorPrecision returns the subset of constraints whose version names a
// minor number (two or more release segments).
func (s ConstraintSet) MinorPrecision() ConstraintSet {
	out := NewConstraintSet()
	for _, c := range s.members {
		if c.Version.Segments() >= 2 {
			out.Add(c)
		}
	}
	return out
}

// HasMajor reports whether any constraint's version has the given major
// version number, regardless of comparator.
func (s ConstraintSet) HasMajor(major int) bool {
	for _, c := range s.members {
		if c.Version.Major() == major {
			return true
		}
	}
	return false
}

// IsCPythonCompatible reports whether a python tag targets CPython or the
// generic Python tag namespace. Tags for other interpreters (pp, ip, jy, cn)
// carry no signal about CPython readiness and are ignored.
func IsCPythonCompatible(tag string) bool {
	return strings.HasPrefix(tag, "cp") || strings.HasPrefix(tag, "py")
}

// ParsePythonTag converts a python tag into the interpreter version it names:
// the two-character interpreter prefix is stripped, the first remaining
// character is the major digit, and the rest, if any, is the minor number.
// "cp311" parses as 3.11 and "py3" as the major-only version 3.
func ParsePythonTag(tag string) (version.Version, error) {
	if len(tag) < 3 {
		return version.Version{}, fmt.Errorf("%w: tag %q has no version part", version.ErrInvalidVersion, tag)
	}
	part := tag[2:]
	major := part[:1]
	minor := part[1:]
	if minor == "" {
		return version.ParseVersion(major)
	}
	return version.ParseVersion(major + "." + minor)
}

// Constraints gathers the interpreter version constraints declared by a
// release's wheels. A wheel built against the stable ABI yields at-least
// constraints; anything else yields exact constraints. Tags that fail to
// parse are skipped with a warning.
func Constraints(wheels []Wheel) ConstraintSet {
	set := NewConstraintSet()
	for _, w := range wheels {
		op := OpExact
		if w.HasABITag(stableABITag) {
			op = OpAtLeast
		}
		for _, tag := range w.PythonTags {
			if !IsCPythonCompatible(tag) {
				continue
			}
			v, err := ParsePythonTag(tag)
			if err != nil {
				slog.Warn("ignoring invalid python version tag",
					"tag", tag,
					"wheel", w.Name,
					"error", err)
				continue
			}
			set.Add(Constraint{Op: op, Version: v})
		}
	}
	return set
}
