/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// contextKeyRequestID is the context key for request ID
	contextKeyRequestID contextKey = "requestID"
	// contextKeyAPIVersion is the context key for API version
	contextKeyAPIVersion contextKey = "apiVersion"
)

// RequestID returns the request ID stored in ctx by the request ID
// middleware, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}
