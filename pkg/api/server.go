/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ento/pyreadiness-spike/pkg/logging"
	"github.com/ento/pyreadiness-spike/pkg/pypi"
	"github.com/ento/pyreadiness-spike/pkg/server"
)

const (
	name           = "pyready-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown. It configures
// logging, builds the metadata source, registers routes, and delegates
// lifecycle management to pkg/server.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	var source pypi.MetadataSource = pypi.NewClient(clientOptions()...)
	if dir := os.Getenv("PYREADY_CACHE_DIR"); dir != "" {
		cached, err := pypi.NewCache(dir, source)
		if err != nil {
			slog.Error("failed to set up metadata cache", "dir", dir, "error", err)
			return err
		}
		source = cached
	}

	h := NewHandler(source)
	routes := map[string]http.HandlerFunc{
		"/v1/readiness": h.HandleReadiness,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandlers(routes),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

func clientOptions() []pypi.Option {
	opts := make([]pypi.Option, 0, 1)
	if baseURL := os.Getenv("PYREADY_INDEX_URL"); baseURL != "" {
		opts = append(opts, pypi.WithBaseURL(baseURL))
	}
	return opts
}
