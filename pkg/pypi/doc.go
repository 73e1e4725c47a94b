/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package pypi retrieves project metadata from the package index JSON API
// and memoizes it on disk.
//
// The classification engine has zero I/O surface; this package is the
// external collaborator that feeds it. Client fetches
// https://pypi.org/pypi/<name>/json with pooled connections, timeouts, and
// a client-side rate limiter. Cache wraps any MetadataSource with file-based
// memoization so repeat runs do not touch the network.
//
// Typical composition:
//
//	source, err := pypi.NewCache(cacheDir, pypi.NewClient())
//
// Both layers implement MetadataSource, so tests can substitute either.
package pypi
