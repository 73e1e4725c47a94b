/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/ento/pyreadiness-spike/pkg/defaults"
	"github.com/ento/pyreadiness-spike/pkg/errors"
)

const (
	// DefaultBaseURL is the JSON API root of the public package index.
	DefaultBaseURL = "https://pypi.org/pypi"

	clientUserAgent = "pyready/1.0"
)

// ErrProjectNotFound indicates the index has no project under the requested
// name.
var ErrProjectNotFound = stderrors.New("project not found")

// MetadataSource supplies per-project metadata. The HTTP client and the
// file-backed cache both implement it, which keeps the classification
// pipeline free of I/O concerns.
type MetadataSource interface {
	ProjectMeta(ctx context.Context, name string) (*Meta, error)
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the index API root (for tests and mirrors).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient supplies a custom *http.Client. Transport defaults are not
// applied to custom clients.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithRateLimit sets the client-side politeness limit for index requests.
func WithRateLimit(rps rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rps, burst)
	}
}

// Client fetches project metadata from the package index JSON API. It is
// safe for concurrent use; a token-bucket limiter keeps request rates polite
// regardless of caller concurrency.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// NewClient creates an index client with pooled transport, sane timeouts,
// and the default rate limit.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: clientUserAgent,
		limiter:   rate.NewLimiter(defaults.IndexRateLimit, defaults.IndexRateBurst),
		client: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				ForceAttemptHTTP2:     true,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProjectMeta fetches and decodes the metadata document for one project.
// The request is bound to ctx for cancellation and deadlines.
func (c *Client) ProjectMeta(ctx context.Context, name string) (*Meta, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "project name is empty")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "rate limiter wait interrupted", err)
		}
	}

	url := fmt.Sprintf("%s/%s/json", c.baseURL, NormalizeName(name))
	slog.Debug("fetching project metadata", "project", name, "url", url)

	start := time.Now()
	defer func() {
		fetchDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", name, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeUpstream, "index request failed", err,
			map[string]any{"project": name})
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		fetchTotal.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	default:
		fetchTotal.WithLabelValues("error").Inc()
		return nil, errors.NewWithContext(errors.ErrCodeUpstream, "unexpected index status",
			map[string]any{"project": name, "status": resp.Status})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeUpstream, "failed to read index response", err,
			map[string]any{"project": name})
	}

	var meta Meta
	if err := json.Unmarshal(body, &meta); err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeUpstream, "failed to decode project metadata", err,
			map[string]any{"project": name})
	}

	fetchTotal.WithLabelValues("success").Inc()
	return &meta, nil
}
