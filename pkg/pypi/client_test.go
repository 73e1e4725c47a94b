/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apperrors "github.com/ento/pyreadiness-spike/pkg/errors"
)

const sampleMetaJSON = `{
  "info": {
    "name": "numpy",
    "version": "2.1.0",
    "classifiers": [
      "Programming Language :: Python :: 3",
      "Programming Language :: Python :: 3.12"
    ]
  },
  "releases": {
    "2.1.0": [
      {"filename": "numpy-2.1.0-cp312-cp312-manylinux_2_17_x86_64.whl", "packagetype": "bdist_wheel", "yanked": false}
    ]
  }
}`

func TestClient_ProjectMeta(t *testing.T) {
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleMetaJSON))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithRateLimit(rate.Inf, 1))
	meta, err := client.ProjectMeta(context.Background(), "NumPy")
	require.NoError(t, err)

	assert.Equal(t, "/numpy/json", gotPath, "request path uses the normalized name")
	assert.Equal(t, clientUserAgent, gotAgent)
	assert.Equal(t, "numpy", meta.Info.Name)
	assert.Len(t, meta.Info.Classifiers, 2)
	require.Contains(t, meta.Releases, "2.1.0")
	assert.Equal(t, "bdist_wheel", meta.Releases["2.1.0"][0].PackageType)
}

func TestClient_ProjectMetaNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithRateLimit(rate.Inf, 1))
	_, err := client.ProjectMeta(context.Background(), "no-such-project")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}

func TestClient_ProjectMetaServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithRateLimit(rate.Inf, 1))
	_, err := client.ProjectMeta(context.Background(), "numpy")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrProjectNotFound))

	var structured *apperrors.StructuredError
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, apperrors.ErrCodeUpstream, structured.Code)
	assert.Equal(t, "numpy", structured.Context["project"])
}

func TestClient_ProjectMetaBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithRateLimit(rate.Inf, 1))
	_, err := client.ProjectMeta(context.Background(), "numpy")
	require.Error(t, err)
}

func TestClient_ProjectMetaEmptyName(t *testing.T) {
	client := NewClient()
	_, err := client.ProjectMeta(context.Background(), "")
	require.Error(t, err)

	var structured *apperrors.StructuredError
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, structured.Code)
}

func TestClient_ProjectMetaContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleMetaJSON))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.ProjectMeta(ctx, "numpy")
	require.Error(t, err)
}

func TestClient_Options(t *testing.T) {
	custom := &http.Client{}
	client := NewClient(
		WithBaseURL("http://localhost:1"),
		WithUserAgent("pyready-test/0.1"),
		WithHTTPClient(custom),
	)

	assert.Equal(t, "http://localhost:1", client.baseURL)
	assert.Equal(t, "pyready-test/0.1", client.userAgent)
	assert.Same(t, custom, client.client)
}
