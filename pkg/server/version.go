/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is the API version used when none is negotiated.
	DefaultAPIVersion = "v1"

	vendorMIMEPrefix = "application/vnd.pyready.v"
)

// negotiateAPIVersion extracts the API version from the Accept header.
// Clients may request a version via a vendor MIME type like
// "application/vnd.pyready.v1+json"; anything else gets the default.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return DefaultAPIVersion
	}

	if strings.Contains(accept, vendorMIMEPrefix) {
		parts := strings.Split(accept, ".")
		for _, part := range parts {
			if strings.HasPrefix(part, "v") {
				version := strings.Split(part, "+")[0]
				if isValidAPIVersion(version) {
					return version
				}
			}
		}
	}

	return DefaultAPIVersion
}

// isValidAPIVersion reports whether version names a supported API version.
func isValidAPIVersion(version string) bool {
	validVersions := map[string]bool{
		"v1": true,
	}
	return validVersions[version]
}

// SetAPIVersionHeader advertises the negotiated API version to the client.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
