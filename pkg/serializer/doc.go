/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer reads and writes structured data in the formats the
// project exposes: JSON, YAML, and a flattened key/value table.
//
// Writing reports:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer w.(serializer.Closer).Close()
//	if err := w.Serialize(ctx, reports); err != nil {
//	    return err
//	}
//
// An empty path writes to stdout, which is the default for the CLI (log
// output goes to stderr, so stdout stays clean for piping).
//
// Reading supports JSON and YAML from local files or HTTP URLs, with the
// format detected from the path extension:
//
//	projects, err := serializer.FromFile[[]string]("https://example.com/top.json")
//
// The table format is write-only; it flattens nested structures into
// dotted keys for terminal viewing.
package serializer
