/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: " error ", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "bogus", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test", "v0.0.0", "debug")
	if logger == nil {
		t.Fatal("expected logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}

	quiet := NewStructuredLogger("test", "v0.0.0", "error")
	if quiet.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at error level")
	}
}
