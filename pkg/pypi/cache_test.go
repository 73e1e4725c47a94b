/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls int
	meta  *Meta
	err   error
}

func (s *countingSource) ProjectMeta(ctx context.Context, name string) (*Meta, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.meta, nil
}

func TestCache_MissThenHit(t *testing.T) {
	dir := t.TempDir()
	source := &countingSource{meta: &Meta{Info: Info{Name: "numpy", Version: "2.1.0"}}}

	cache, err := NewCache(dir, source)
	require.NoError(t, err)

	meta, err := cache.ProjectMeta(context.Background(), "numpy")
	require.NoError(t, err)
	assert.Equal(t, "numpy", meta.Info.Name)
	assert.Equal(t, 1, source.calls)

	// Second lookup must be served from disk.
	meta, err = cache.ProjectMeta(context.Background(), "numpy")
	require.NoError(t, err)
	assert.Equal(t, "numpy", meta.Info.Name)
	assert.Equal(t, 1, source.calls)
}

func TestCache_NormalizesEntryName(t *testing.T) {
	dir := t.TempDir()
	source := &countingSource{meta: &Meta{Info: Info{Name: "typing_extensions"}}}

	cache, err := NewCache(dir, source)
	require.NoError(t, err)

	_, err = cache.ProjectMeta(context.Background(), "Typing_Extensions")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "typing-extensions.json"))
	assert.NoError(t, err, "cache entry uses the normalized name")

	// A differently-spelled lookup of the same project hits the same entry.
	_, err = cache.ProjectMeta(context.Background(), "typing-extensions")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestCache_CorruptEntryRefetched(t *testing.T) {
	dir := t.TempDir()
	source := &countingSource{meta: &Meta{Info: Info{Name: "numpy"}}}

	cache, err := NewCache(dir, source)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "numpy.json"), []byte("{corrupt"), 0o644))

	meta, err := cache.ProjectMeta(context.Background(), "numpy")
	require.NoError(t, err)
	assert.Equal(t, "numpy", meta.Info.Name)
	assert.Equal(t, 1, source.calls, "corrupt entry triggers a refetch")

	// The refetch repaired the entry.
	_, err = cache.ProjectMeta(context.Background(), "numpy")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestCache_SourceErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	wantErr := errors.New("index unavailable")
	source := &countingSource{err: wantErr}

	cache, err := NewCache(dir, source)
	require.NoError(t, err)

	_, err = cache.ProjectMeta(context.Background(), "numpy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, wantErr))
}

func TestNewCache_EmptyDir(t *testing.T) {
	_, err := NewCache("", &countingSource{})
	require.Error(t, err)
}
