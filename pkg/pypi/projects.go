/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ento/pyreadiness-spike/pkg/serializer"
)

// topProject is one row of the download-statistics export used to seed the
// project list ("SELECT file.project, COUNT(*) AS total_downloads ...").
type topProject struct {
	Project        string `json:"project"`
	TotalDownloads int64  `json:"total_downloads"`
}

// LoadProjects reads a project list from a local file or an HTTP/HTTPS URL.
// The file extension selects the parser: .json and .yaml/.yml files hold
// either an array of name strings (["numpy", "requests"]) or an array of
// download-statistics rows ([{"project": "numpy", ...}]); .txt and other
// extensions are plain text, one name per line, with # comments. Files
// without an extension are treated as JSON.
//
// Names are normalized and deduplicated, preserving first-seen order.
func LoadProjects(ctx context.Context, path string) ([]string, error) {
	var names []string
	var err error

	switch serializer.FormatFromPath(path) {
	case serializer.FormatJSON, serializer.FormatYAML:
		names, err = loadStructuredProjects(path)
	default:
		names, err = loadLineProjects(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		normalized := NormalizeName(name)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("project list %q is empty", path)
	}
	return out, nil
}

// loadStructuredProjects deserializes a JSON or YAML list, trying the plain
// name-array shape first and the download-statistics row shape second.
func loadStructuredProjects(path string) ([]string, error) {
	if names, err := serializer.FromFile[[]string](path); err == nil {
		return *names, nil
	}

	rows, err := serializer.FromFile[[]topProject](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load project list %q: %w", path, err)
	}
	names := make([]string, 0, len(*rows))
	for _, row := range *rows {
		names = append(names, row.Project)
	}
	return names, nil
}

func loadLineProjects(ctx context.Context, path string) ([]string, error) {
	var data []byte
	var err error
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		data, err = serializer.NewHttpReader().ReadWithContext(ctx, path)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project list %q: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}
