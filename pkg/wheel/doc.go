/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package wheel parses compiled-distribution (wheel) filenames and interprets
// their compatibility tags.
//
// A wheel filename encodes the interpreters and ABIs a binary distribution
// was built for:
//
//	numpy-1.26.4-cp312-cp312-manylinux_2_17_x86_64.whl
//	cryptography-42.0.5-cp37-abi3-musllinux_1_1_aarch64.whl
//
// ParseFilename decomposes the name into structured tag sets; malformed names
// fail with ErrInvalidFilename and are expected to be skipped by callers.
//
// Constraints turns the python and ABI tags of a release's wheels into
// interpreter version constraints. A "cp312" tag paired with a "cp312" ABI is
// an exact constraint on CPython 3.12; the same python tag paired with the
// "abi3" stable-ABI marker is a forward-compatible lower bound instead.
package wheel
