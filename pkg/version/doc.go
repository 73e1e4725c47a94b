/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package version provides parsing and ordering for Python interpreter and
// package versions.
//
// # Overview
//
// The package implements the subset of PEP 440 that matters for readiness
// classification: dotted numeric release segments ("3", "3.11", "1.26.4")
// plus pre-release, post-release, and dev qualifiers. Versions are immutable
// value types with a total order:
//
//   - release segments compare numerically, left to right, with missing
//     segments treated as zero ("3.9" < "3.10", "3.11" == "3.11.0")
//   - a pre-release sorts before its final release ("3.12rc1" < "3.12")
//   - a post-release sorts after it ("1.0" < "1.0.post1")
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.ParseVersion("3.11")
//	if err != nil {
//	    // skip and warn; malformed versions are never fatal
//	}
//
// Compare versions:
//
//	if target.EqualsOrNewer(floor) {
//	    // target satisfies an at-least constraint
//	}
//
// Strings that are not PEP 440 versions (legacy distutils spellings, dates,
// git hashes) fail with an error wrapping ErrInvalidVersion. Callers are
// expected to skip the offending release and continue.
package version
