/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package server provides a reusable HTTP server with the middleware stack
// the API binary needs: request IDs, rate limiting, panic recovery, request
// logging, and Prometheus metrics.
//
// Application handlers are registered per route and wrapped in the full
// middleware chain; the system endpoints /health, /ready, and /metrics are
// served without rate limiting.
//
//	s := server.New(
//	    server.WithName("pyready-api-server"),
//	    server.WithVersion(version),
//	    server.WithHandlers(map[string]http.HandlerFunc{
//	        "/v1/readiness": handler.HandleReadiness,
//	    }),
//	)
//	err := s.Run(ctx)
package server
