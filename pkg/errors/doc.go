/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for programmatic error
// handling across the CLI and the API server.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUpstream,
//	    "failed to fetch project metadata",
//	    fetchErr,
//	    map[string]any{
//	        "project": name,
//	        "target":  target.String(),
//	    },
//	)
package errors
