/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ento/pyreadiness-spike/pkg/errors"
	"github.com/ento/pyreadiness-spike/pkg/serializer"
)

// WriteError writes a structured JSON error response. The request ID comes
// from the request context when the middleware chain has set one.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}
