/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ento/pyreadiness-spike/pkg/catalog"
)

// Meta is the package-index JSON document for one project, reduced to the
// fields the readiness pipeline consumes.
type Meta struct {
	Info     Info                          `json:"info"`
	Releases map[string][]catalog.FileMeta `json:"releases"`
}

// Info carries the project-level metadata fields.
type Info struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Classifiers []string `json:"classifiers"`
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

var fold = cases.Fold()

// NormalizeName canonicalizes a project name per the index naming rules:
// case-folded, with runs of hyphens, underscores, and dots collapsed to a
// single hyphen. "Django" and "typing_extensions" become "django" and
// "typing-extensions".
func NormalizeName(name string) string {
	folded := fold.String(strings.TrimSpace(name))
	return nameSeparators.ReplaceAllString(folded, "-")
}
