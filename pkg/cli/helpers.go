/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ento/pyreadiness-spike/pkg/serializer"
	pyversion "github.com/ento/pyreadiness-spike/pkg/version"
)

// Flags shared across commands that write report data.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatJSON),
	}
)

// parseTarget validates the --python flag. The readiness rules compare
// major.minor precision, so a bare major like "3" is rejected.
func parseTarget(raw string) (pyversion.Version, error) {
	target, err := pyversion.ParseVersion(raw)
	if err != nil {
		return pyversion.Version{}, fmt.Errorf("invalid python version %q: %w", raw, err)
	}
	if target.Segments() < 2 {
		return pyversion.Version{}, fmt.Errorf("python version %q must include a minor version, e.g. %s.0", raw, raw)
	}
	return target, nil
}
