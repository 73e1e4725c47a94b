/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ento/pyreadiness-spike/pkg/checker"
	"github.com/ento/pyreadiness-spike/pkg/defaults"
	"github.com/ento/pyreadiness-spike/pkg/errors"
	"github.com/ento/pyreadiness-spike/pkg/pypi"
	"github.com/ento/pyreadiness-spike/pkg/readiness"
	"github.com/ento/pyreadiness-spike/pkg/serializer"
	"github.com/ento/pyreadiness-spike/pkg/server"
	pyversion "github.com/ento/pyreadiness-spike/pkg/version"
)

// ReadinessResponse is the JSON body of GET /v1/readiness.
type ReadinessResponse struct {
	Python      string                    `json:"python"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Reports     []readiness.ProjectReport `json:"reports"`
}

// Handler serves readiness requests against a shared metadata source.
type Handler struct {
	source      pypi.MetadataSource
	maxProjects int
}

// NewHandler creates a Handler backed by the given metadata source.
func NewHandler(source pypi.MetadataSource) *Handler {
	return &Handler{
		source:      source,
		maxProjects: defaults.APIMaxProjectsPerRequest,
	}
}

// HandleReadiness handles GET /v1/readiness.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"allowed": "GET"})
		return
	}

	query := r.URL.Query()

	target, err := parseTargetParam(query.Get("python"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			err.Error(), false, map[string]any{"param": "python"})
		return
	}

	// The project parameter may be repeated, comma-separated, or both.
	projects := make([]string, 0)
	for _, raw := range query["project"] {
		for _, part := range strings.Split(raw, ",") {
			if normalized := pypi.NormalizeName(part); normalized != "" {
				projects = append(projects, normalized)
			}
		}
	}
	if len(projects) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"at least one project parameter is required", false, map[string]any{"param": "project"})
		return
	}
	if len(projects) > h.maxProjects {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"too many projects in one request", false, map[string]any{
				"max":       h.maxProjects,
				"requested": len(projects),
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ReadinessHandlerTimeout)
	defer cancel()

	c := checker.New(target, h.source)
	reports, err := c.Run(ctx, projects)
	if err != nil {
		slog.Error("readiness check failed",
			"requestID", server.RequestID(r.Context()),
			"target", target.String(),
			"error", err,
		)

		code := errors.ErrCodeUpstream
		details := map[string]any(nil)
		var structured *errors.StructuredError
		if stderrors.As(err, &structured) {
			code = structured.Code
			details = structured.Context
		}
		server.WriteError(w, r, http.StatusBadGateway, code,
			"Failed to fetch package metadata", true, details)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ReadinessResponse{
		Python:      target.String(),
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
	})
}

// parseTargetParam validates the python query parameter. Readiness rules
// compare at major.minor precision, so a bare major is rejected.
func parseTargetParam(raw string) (pyversion.Version, error) {
	if raw == "" {
		return pyversion.Version{}, fmt.Errorf("python parameter is required")
	}
	target, err := pyversion.ParseVersion(raw)
	if err != nil {
		return pyversion.Version{}, fmt.Errorf("invalid python version %q", raw)
	}
	if target.Segments() < 2 {
		return pyversion.Version{}, fmt.Errorf("python version %q must include a minor version", raw)
	}
	return target, nil
}
