/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package api provides the HTTP API layer of the readiness service.
//
// It is a thin wrapper around the reusable pkg/server package, registering
// the readiness route and delegating server lifecycle, middleware, and
// system endpoints to it.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/readiness - Evaluate package readiness for a Python version
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query parameters (GET /v1/readiness)
//
//   - python:  target Python version, e.g. 3.14 (required)
//   - project: package name, repeatable (at least one required)
//
// Example:
//
//	curl 'http://localhost:8080/v1/readiness?python=3.14&project=numpy&project=requests'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - PYREADY_INDEX_URL: package index JSON API root
//   - PYREADY_CACHE_DIR: directory for cached package metadata
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/ento/pyreadiness-spike/pkg/api.version=1.0.0'"
package api
