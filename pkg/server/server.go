/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Option configures a Server.
type Option func(*Server)

// WithName sets the server name reported on the default route.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion sets the version reported on the default route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithConfig replaces the default configuration.
func WithConfig(config *Config) Option {
	return func(s *Server) {
		if config != nil {
			s.config = config
		}
	}
}

// WithHandlers registers application handlers by route. Each handler is
// wrapped in the full middleware chain.
func WithHandlers(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		for route, handler := range handlers {
			s.handlers[route] = handler
		}
	}
}

// Server is an HTTP server with middleware, health endpoints, and metrics.
type Server struct {
	name       string
	version    string
	config     *Config
	handlers   map[string]http.HandlerFunc
	httpServer *http.Server

	rateLimiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// New creates a server instance. Defaults come from NewConfig.
func New(opts ...Option) *Server {
	s := &Server{
		name:     "server",
		version:  "undefined",
		config:   NewConfig(),
		handlers: make(map[string]http.HandlerFunc),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
	return s
}

// SetReady marks the server as ready to serve traffic.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start starts the HTTP server and blocks until ctx is canceled or the
// server fails.
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	slog.Info("starting http server", "addr", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down http server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server and blocks until SIGINT/SIGTERM or a fatal error.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("server config",
		slog.String("name", s.name),
		slog.String("version", s.version),
		slog.String("address", s.httpServer.Addr),
		slog.Any("rateLimit", s.config.RateLimit),
		slog.Int("rateLimitBurst", s.config.RateLimitBurst),
		slog.Duration("readTimeout", s.config.ReadTimeout),
		slog.Duration("writeTimeout", s.config.WriteTimeout),
		slog.Duration("idleTimeout", s.config.IdleTimeout),
		slog.Duration("shutdownTimeout", s.config.ShutdownTimeout),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
