/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import (
	"time"

	"golang.org/x/time/rate"
)

// HTTP client timeouts for outbound index requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPKeepAlive is the keep-alive interval for pooled connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second
)

// Package index client politeness limits.
const (
	// IndexRateLimit is the default client-side request rate against the
	// package index, in requests per second.
	IndexRateLimit rate.Limit = 10

	// IndexRateBurst is the default burst size for index requests.
	IndexRateBurst = 5
)

// Checker limits.
const (
	// CheckerConcurrency is the default number of packages evaluated in
	// parallel. The index rate limiter still caps aggregate request rate.
	CheckerConcurrency = 8

	// CheckerTimeout is the default total timeout for a full check run.
	CheckerTimeout = 10 * time.Minute
)

// Server timeouts for the API server.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// ReadinessHandlerTimeout is the timeout for readiness report requests.
	ReadinessHandlerTimeout = 60 * time.Second

	// APIMaxProjectsPerRequest caps the number of packages one readiness
	// request may ask about.
	APIMaxProjectsPerRequest = 50
)
