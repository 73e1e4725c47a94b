/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities shared by the CLI
// and the API server.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr (stdout is reserved for report data), module and version
// context on every record, LOG_LEVEL environment configuration, and source
// location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("pyready", version)
//	    slog.Info("starting", "target", target)
//	}
//
// Supported log levels (case-insensitive): DEBUG, INFO (default), WARN,
// WARNING, ERROR. An explicit level passed to
// SetDefaultStructuredLoggerWithLevel wins over the LOG_LEVEL environment
// variable.
package logging
