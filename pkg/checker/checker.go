/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ento/pyreadiness-spike/pkg/catalog"
	"github.com/ento/pyreadiness-spike/pkg/defaults"
	"github.com/ento/pyreadiness-spike/pkg/pypi"
	"github.com/ento/pyreadiness-spike/pkg/readiness"
	"github.com/ento/pyreadiness-spike/pkg/version"
)

// Option configures a Checker.
type Option func(*Checker)

// WithConcurrency bounds the number of projects evaluated in parallel.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Checker evaluates readiness for packages against one target interpreter
// version. It is safe for concurrent use.
type Checker struct {
	target      version.Version
	source      pypi.MetadataSource
	concurrency int
}

// New creates a Checker for the given target version backed by the given
// metadata source.
func New(target version.Version, source pypi.MetadataSource, opts ...Option) *Checker {
	c := &Checker{
		target:      target,
		source:      source,
		concurrency: defaults.CheckerConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Target returns the interpreter version this Checker evaluates against.
func (c *Checker) Target() version.Version {
	return c.target
}

// Check evaluates readiness for a single project. A project missing from the
// index still yields a report; both signals come back unknown.
func (c *Checker) Check(ctx context.Context, project string) (readiness.ProjectReport, error) {
	name := pypi.NormalizeName(project)
	if name == "" {
		projectChecks.WithLabelValues("error").Inc()
		return readiness.ProjectReport{}, fmt.Errorf("project name is empty")
	}

	meta, err := c.source.ProjectMeta(ctx, name)
	if err != nil {
		if errors.Is(err, pypi.ErrProjectNotFound) {
			slog.Warn("project not found in index", "project", name)
			projectChecks.WithLabelValues("not_found").Inc()
			return readiness.BuildReport(c.target, name, nil, nil), nil
		}
		projectChecks.WithLabelValues("error").Inc()
		return readiness.ProjectReport{}, fmt.Errorf("failed to fetch metadata for %q: %w", name, err)
	}

	releases := catalog.Releases(name, meta.Releases)
	report := readiness.BuildReport(c.target, name, releases, meta.Info.Classifiers)
	projectChecks.WithLabelValues("ok").Inc()
	return report, nil
}

// Run evaluates readiness for every project in the list, fanning out across
// a bounded worker group. Reports come back sorted by project name. The
// first fetch failure other than a missing project cancels the remaining
// work and fails the run.
func (c *Checker) Run(ctx context.Context, projects []string) ([]readiness.ProjectReport, error) {
	if len(projects) == 0 {
		return nil, fmt.Errorf("project list is empty")
	}

	runID := uuid.NewString()
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Info("starting readiness check run",
		"run_id", runID,
		"target", c.target.String(),
		"projects", len(projects),
		"concurrency", c.concurrency,
	)

	reports := make([]readiness.ProjectReport, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, project := range projects {
		i, project := i, project
		g.Go(func() error {
			report, err := c.Check(gctx, project)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("readiness check run failed", "run_id", runID, "error", err)
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Project < reports[j].Project
	})

	slog.Info("readiness check run complete",
		"run_id", runID,
		"reports", len(reports),
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return reports, nil
}
