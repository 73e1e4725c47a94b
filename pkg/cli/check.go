/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/ento/pyreadiness-spike/pkg/checker"
	"github.com/ento/pyreadiness-spike/pkg/defaults"
	"github.com/ento/pyreadiness-spike/pkg/pypi"
	"github.com/ento/pyreadiness-spike/pkg/serializer"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Evaluate readiness of packages for a target Python version",
		Description: `Evaluate whether PyPI packages are ready for a target Python version.

Two signals are combined per package:
  - wheel build tags of the latest release (cp312, abi3, py3, ...)
  - declared trove classifiers (Programming Language :: Python :: 3.12)

Packages come from --project flags, or from a list file given with
--projects. A .json or .yaml list file holds an array of names or an array
of download-statistics rows ({"project": ..., "total_downloads": ...});
any other extension is plain text with one name per line. HTTP(S) URLs
work too.

# Examples

Check a handful of packages:
  pyready check --python 3.14 --project numpy --project requests

Check the packages in a list file, writing YAML to a file:
  pyready check --python 3.14 --projects top-packages.json \
    --format yaml --output readiness.yaml

Reuse metadata across runs with a local cache:
  pyready check --python 3.14 --projects top-packages.json \
    --cache-dir ~/.cache/pyready`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "python",
				Aliases:  []string{"p"},
				Usage:    "target Python version, e.g. 3.14",
				Sources:  cli.EnvVars("PYREADY_PYTHON"),
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "project",
				Usage: "package name to check (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "projects",
				Usage:   "path or URL of a project list file",
				Sources: cli.EnvVars("PYREADY_PROJECTS"),
			},
			&cli.StringFlag{
				Name:    "index-url",
				Usage:   "package index JSON API root",
				Sources: cli.EnvVars("PYREADY_INDEX_URL"),
				Value:   pypi.DefaultBaseURL,
			},
			&cli.StringFlag{
				Name:    "cache-dir",
				Usage:   "directory for cached package metadata (empty: no cache)",
				Sources: cli.EnvVars("PYREADY_CACHE_DIR"),
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Usage:   "number of packages evaluated in parallel",
				Sources: cli.EnvVars("PYREADY_CONCURRENCY"),
				Value:   defaults.CheckerConcurrency,
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "max index requests per second",
				Value: float64(defaults.IndexRateLimit),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "total timeout for the check run",
				Value: defaults.CheckerTimeout,
			},
			outputFlag,
			formatFlag,
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	target, err := parseTarget(cmd.String("python"))
	if err != nil {
		return err
	}

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	projects, err := resolveProjects(ctx, cmd)
	if err != nil {
		return err
	}

	var source pypi.MetadataSource = pypi.NewClient(
		pypi.WithBaseURL(cmd.String("index-url")),
		pypi.WithRateLimit(rate.Limit(cmd.Float("rate-limit")), defaults.IndexRateBurst),
	)
	if dir := cmd.String("cache-dir"); dir != "" {
		source, err = pypi.NewCache(dir, source)
		if err != nil {
			return fmt.Errorf("failed to set up metadata cache: %w", err)
		}
	}

	c := checker.New(target, source, checker.WithConcurrency(int(cmd.Int("concurrency"))))

	start := time.Now()
	reports, err := c.Run(ctx, projects)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}
	slog.Debug("check complete", "projects", len(reports), "took", time.Since(start).String())

	writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if closer, ok := writer.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close output writer", "error", err)
			}
		}
	}()
	return writer.Serialize(ctx, reports)
}

// resolveProjects merges the repeatable --project flags with the --projects
// list file. At least one of the two must be supplied.
func resolveProjects(ctx context.Context, cmd *cli.Command) ([]string, error) {
	names := make([]string, 0)

	for _, raw := range cmd.StringSlice("project") {
		if normalized := pypi.NormalizeName(raw); normalized != "" {
			names = append(names, normalized)
		}
	}

	if path := cmd.String("projects"); path != "" {
		listed, err := pypi.LoadProjects(ctx, path)
		if err != nil {
			return nil, err
		}
		names = append(names, listed...)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no packages to check: use --project or --projects")
	}

	// Dedupe across the two sources.
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}
