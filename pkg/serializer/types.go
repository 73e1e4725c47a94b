/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import "context"

// Serializer writes structured report data to some destination.
// Implementations cover the supported output formats and sinks (stdout,
// files, HTTP responses).
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface for Serializers that hold resources,
// such as open file handles.
type Closer interface {
	Close() error
}
