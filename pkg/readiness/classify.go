/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package readiness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ento/pyreadiness-spike/pkg/catalog"
	"github.com/ento/pyreadiness-spike/pkg/version"
	"github.com/ento/pyreadiness-spike/pkg/wheel"
)

// classifierPrefix is the fixed prefix of Python version trove classifiers.
const classifierPrefix = "Programming Language :: Python :: "

// onlyQualifierSuffix marks classifiers like "... :: 3 :: Only" that qualify
// rather than declare a version.
const onlyQualifierSuffix = ":: Only"

// ClassifierString returns the trove classifier for a Python version string,
// e.g. ClassifierString("3.11") == "Programming Language :: Python :: 3.11".
func ClassifierString(pythonVersion string) string {
	return classifierPrefix + pythonVersion
}

// ByWheelTags derives a readiness verdict for the target interpreter version
// from the wheel tags of a package's latest release.
//
// The decision sequence, in order:
//
//  1. empty catalog: unknown
//  2. any constraint of the latest release matches the target: yes
//  3. walking candidate minors of the target's major strictly downward from
//     target.minor-1, the first candidate matched by a minor-precision
//     constraint means the package declared explicit support for an OLDER
//     minor without declaring the target, an intentional cutoff: no
//  4. any constraint shares the target's major version: maybe
//  5. otherwise: unknown
//
// Step 3 deliberately runs before the major-presence check in step 4, even
// when the target's major is absent from every constraint. Deviating from
// that ordering is a behavior change, not a bug fix.
//
// The releases slice must be sorted ascending by version and free of
// pre-releases, as produced by catalog.Releases.
func ByWheelTags(target version.Version, releases []catalog.Release) Status {
	latest, ok := catalog.Latest(releases)
	if !ok {
		return StatusUnknown
	}

	constraints := wheel.Constraints(latest.Wheels)
	if constraints.AnyMatches(target) {
		return StatusYes
	}

	minorConstraints := constraints.MinorPrecision()
	for minor := target.Minor() - 1; minor >= 0; minor-- {
		candidate := version.MustParseVersion(fmt.Sprintf("%d.%d", target.Major(), minor))
		if minorConstraints.AnyMatches(candidate) {
			return StatusNo
		}
	}

	if constraints.HasMajor(target.Major()) {
		return StatusMaybe
	}

	return StatusUnknown
}

// ByClassifiers derives a readiness verdict for the target interpreter
// version from a package's trove classifier strings.
//
//  1. the exact classifier for the target is present: yes
//  2. any classifier declares a minor version of the target's major
//     ("Programming Language :: Python :: 3.x") without the exact one having
//     matched above, meaning the package lists minors and omitted the
//     target: no
//  3. the bare major classifier is present: maybe
//  4. otherwise: unknown
func ByClassifiers(target version.Version, classifiers []string) Status {
	exact := ClassifierString(target.String())
	for _, c := range classifiers {
		if c == exact {
			return StatusYes
		}
	}

	minorPrefix := ClassifierString(strconv.Itoa(target.Major()) + ".")
	for _, c := range classifiers {
		if strings.HasPrefix(c, minorPrefix) {
			return StatusNo
		}
	}

	major := ClassifierString(strconv.Itoa(target.Major()))
	for _, c := range classifiers {
		if c == major {
			return StatusMaybe
		}
	}

	return StatusUnknown
}
