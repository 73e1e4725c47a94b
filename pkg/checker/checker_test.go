/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package checker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ento/pyreadiness-spike/pkg/catalog"
	"github.com/ento/pyreadiness-spike/pkg/pypi"
	"github.com/ento/pyreadiness-spike/pkg/readiness"
	"github.com/ento/pyreadiness-spike/pkg/version"
)

type fakeSource struct {
	metas map[string]*pypi.Meta
	err   error
}

func (s *fakeSource) ProjectMeta(ctx context.Context, name string) (*pypi.Meta, error) {
	if s.err != nil {
		return nil, s.err
	}
	meta, ok := s.metas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", pypi.ErrProjectNotFound, name)
	}
	return meta, nil
}

func metaWithWheel(name, release, filename string, classifiers ...string) *pypi.Meta {
	return &pypi.Meta{
		Info: pypi.Info{
			Name:        name,
			Version:     release,
			Classifiers: classifiers,
		},
		Releases: map[string][]catalog.FileMeta{
			release: {
				{Filename: filename, PackageType: "bdist_wheel"},
			},
		},
	}
}

func TestChecker_Check(t *testing.T) {
	target := version.MustParseVersion("3.12")
	source := &fakeSource{
		metas: map[string]*pypi.Meta{
			"numpy": metaWithWheel(
				"numpy", "2.1.0",
				"numpy-2.1.0-cp312-cp312-manylinux_2_17_x86_64.whl",
				"Programming Language :: Python :: 3.12",
			),
		},
	}

	c := New(target, source)
	report, err := c.Check(context.Background(), "NumPy")
	require.NoError(t, err)

	assert.Equal(t, "numpy", report.Project, "report carries the normalized name")
	assert.Equal(t, readiness.StatusYes, report.VersionReadiness)
	assert.Equal(t, readiness.StatusYes, report.ClassifierReadiness)
	assert.Equal(t, readiness.StatusYes, report.CombinedReadiness)
	require.NotNil(t, report.LatestVersion)
	assert.Equal(t, "2.1.0", report.LatestVersion.String())
}

func TestChecker_CheckProjectNotFound(t *testing.T) {
	c := New(version.MustParseVersion("3.12"), &fakeSource{metas: map[string]*pypi.Meta{}})

	report, err := c.Check(context.Background(), "no-such-project")
	require.NoError(t, err, "a missing project is a verdict, not a failure")

	assert.Equal(t, readiness.StatusUnknown, report.VersionReadiness)
	assert.Equal(t, readiness.StatusUnknown, report.ClassifierReadiness)
	assert.Equal(t, readiness.StatusUnknown, report.CombinedReadiness)
	assert.Nil(t, report.LatestVersion)
}

func TestChecker_CheckEmptyName(t *testing.T) {
	c := New(version.MustParseVersion("3.12"), &fakeSource{})
	_, err := c.Check(context.Background(), "  ")
	require.Error(t, err)
}

func TestChecker_Run(t *testing.T) {
	target := version.MustParseVersion("3.12")
	source := &fakeSource{
		metas: map[string]*pypi.Meta{
			"numpy": metaWithWheel(
				"numpy", "2.1.0",
				"numpy-2.1.0-cp312-cp312-manylinux_2_17_x86_64.whl",
			),
			"legacy-lib": metaWithWheel(
				"legacy-lib", "0.9.0",
				"legacy_lib-0.9.0-cp311-cp311-manylinux_2_17_x86_64.whl",
			),
			"pure-lib": metaWithWheel(
				"pure-lib", "1.0.0",
				"pure_lib-1.0.0-py3-none-any.whl",
			),
		},
	}

	c := New(target, source, WithConcurrency(2))
	reports, err := c.Run(context.Background(), []string{"pure-lib", "numpy", "legacy-lib"})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	// Sorted by project name regardless of input order.
	assert.Equal(t, "legacy-lib", reports[0].Project)
	assert.Equal(t, "numpy", reports[1].Project)
	assert.Equal(t, "pure-lib", reports[2].Project)

	assert.Equal(t, readiness.StatusNo, reports[0].VersionReadiness)
	assert.Equal(t, readiness.StatusYes, reports[1].VersionReadiness)
	assert.Equal(t, readiness.StatusMaybe, reports[2].VersionReadiness)
}

func TestChecker_RunEmptyList(t *testing.T) {
	c := New(version.MustParseVersion("3.12"), &fakeSource{})
	_, err := c.Run(context.Background(), nil)
	require.Error(t, err)
}

func TestChecker_RunFetchErrorFailsRun(t *testing.T) {
	wantErr := errors.New("index unavailable")
	c := New(version.MustParseVersion("3.12"), &fakeSource{err: wantErr})

	_, err := c.Run(context.Background(), []string{"numpy", "requests"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wantErr))
}

func TestChecker_RunMissingProjectsStillReport(t *testing.T) {
	target := version.MustParseVersion("3.12")
	source := &fakeSource{
		metas: map[string]*pypi.Meta{
			"numpy": metaWithWheel(
				"numpy", "2.1.0",
				"numpy-2.1.0-cp312-cp312-manylinux_2_17_x86_64.whl",
			),
		},
	}

	c := New(target, source)
	reports, err := c.Run(context.Background(), []string{"numpy", "no-such-project"})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "no-such-project", reports[0].Project)
	assert.Equal(t, readiness.StatusUnknown, reports[0].CombinedReadiness)
	assert.Equal(t, "numpy", reports[1].Project)
}

func TestWithConcurrency_IgnoresInvalid(t *testing.T) {
	c := New(version.MustParseVersion("3.12"), &fakeSource{}, WithConcurrency(0))
	assert.Greater(t, c.concurrency, 0)
}
