/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package checker orchestrates readiness evaluation across a set of
// packages: it fetches metadata for each project, runs both readiness
// signals against the target interpreter version, and collects the
// per-project reports.
//
// Projects are evaluated concurrently with a bounded worker group; the
// metadata source's rate limiter keeps aggregate index traffic polite
// regardless of the concurrency setting.
//
//	c := checker.New(target, source)
//	reports, err := c.Run(ctx, projects)
package checker
