/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package readiness

import (
	"fmt"
	"strconv"
)

// Status is a four-valued readiness verdict, ordered from most to least
// confident of support: StatusYes < StatusMaybe < StatusNo < StatusUnknown.
// The order is load-bearing: Combine picks the smaller (more optimistic)
// of two statuses.
type Status int

const (
	// StatusYes means the package explicitly declares support for the
	// target version.
	StatusYes Status = iota
	// StatusMaybe means the package declares support for the target's major
	// version line without naming the target itself.
	StatusMaybe
	// StatusNo means the package declares minor-granularity support that
	// stops short of the target, signalling an intentional cutoff.
	StatusNo
	// StatusUnknown means the signal carries no usable information.
	StatusUnknown
)

// String returns the verdict name used in reports.
func (s Status) String() string {
	switch s {
	case StatusYes:
		return "yes"
	case StatusMaybe:
		return "maybe"
	case StatusNo:
		return "no"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalJSON encodes the verdict as its name string.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// MarshalYAML encodes the verdict as its name string.
func (s Status) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Combine merges two independent readiness signals into one verdict by
// picking the MORE OPTIMISTIC of the two.
//
// This is a deliberate, stated policy and easy to mistake for its inverse:
// if the wheel-tag signal says "no" but the classifier signal says "yes",
// the combined verdict is "yes". The reasoning is that either signal alone
// is sufficient evidence of declared support, while "no" and "unknown" often
// just mean a maintainer did not update one kind of metadata. The combined
// verdict only converges on pessimism when both signals agree on it or one
// is merely uninformative.
//
// Do not replace this with a worst-case merge; the asymmetry is the design.
func Combine(a, b Status) Status {
	if a < b {
		return a
	}
	return b
}
