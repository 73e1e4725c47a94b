/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults provides centralized configuration constants.
//
// Timeout values, rate limits, and concurrency defaults used across the
// codebase live here so tuning happens in one place. Import and use the
// constants directly:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CheckerTimeout)
//	defer cancel()
package defaults
