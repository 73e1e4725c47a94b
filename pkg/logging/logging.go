/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// logLevelEnvVar configures logging verbosity when no explicit level is set.
const logLevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a level name to a slog.Level. Unrecognized or empty
// names fall back to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger creates a JSON logger writing to stderr with module
// and version attached to every record. Debug-level loggers include source
// location.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	parsed := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     parsed,
		AddSource: parsed == slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs the structured logger as the slog
// default, with the level taken from the LOG_LEVEL environment variable.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(logLevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs the structured logger as the
// slog default with an explicit level, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	if strings.TrimSpace(level) == "" {
		level = os.Getenv(logLevelEnvVar)
	}
	slog.SetDefault(NewStructuredLogger(module, version, level))
}
