/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package catalog builds an ordered release catalog from raw package-index
// metadata.
//
// The input is the index's per-package release map: version string to list of
// distribution-file records. The output is a version-sorted slice of releases
// that each carry at least one usable wheel. Everything the readiness
// classifier should not see (pre-releases, yanked files, source
// distributions, unparsable versions or filenames) is filtered here, with
// warnings rather than errors for malformed input.
package catalog
