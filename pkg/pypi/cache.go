/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Cache memoizes project metadata as JSON files on disk, one file per
// normalized project name. A populated cache makes repeat runs fully
// offline; there is no expiry, so delete the directory to refresh.
type Cache struct {
	dir    string
	source MetadataSource
}

// NewCache wraps a metadata source with a file-backed cache rooted at dir.
// The directory is created if missing.
func NewCache(dir string, source MetadataSource) (*Cache, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %q: %w", dir, err)
	}
	return &Cache{dir: dir, source: source}, nil
}

// ProjectMeta returns cached metadata when present, otherwise fetches from
// the wrapped source and stores the result. Implements MetadataSource.
func (c *Cache) ProjectMeta(ctx context.Context, name string) (*Meta, error) {
	path := c.path(name)

	if meta, err := readMeta(path); err == nil {
		cacheHits.Inc()
		slog.Debug("cache hit", "project", name, "path", path)
		return meta, nil
	} else if !os.IsNotExist(err) {
		// A corrupt cache entry is repaired by refetching, not by failing.
		slog.Warn("unreadable cache entry, refetching", "path", path, "error", err)
	}

	cacheMisses.Inc()
	meta, err := c.source.ProjectMeta(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := writeMeta(path, meta); err != nil {
		slog.Warn("failed to write cache entry", "path", path, "error", err)
	}
	return meta, nil
}

func (c *Cache) path(name string) string {
	return filepath.Join(c.dir, NormalizeName(name)+".json")
}

func readMeta(path string) (*Meta, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry %q: %w", path, err)
	}
	return &meta, nil
}

func writeMeta(path string, meta *Meta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
