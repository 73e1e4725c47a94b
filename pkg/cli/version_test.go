/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := versionCmd()
	cmd.Writer = &buf

	if err := cmd.Run(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, name) || !strings.Contains(out, version) {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestRootCmd_HasCommands(t *testing.T) {
	root := rootCmd()
	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	for _, want := range []string{"check", "version"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand", want)
		}
	}
}
