/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{name: "no accept header", accept: "", want: "v1"},
		{name: "plain json", accept: "application/json", want: "v1"},
		{name: "vendor v1", accept: "application/vnd.pyready.v1+json", want: "v1"},
		{name: "unsupported vendor version", accept: "application/vnd.pyready.v9+json", want: "v1"},
		{name: "other vendor", accept: "application/vnd.other.v2+json", want: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("negotiateAPIVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
