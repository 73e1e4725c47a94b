/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "numpy", want: "numpy"},
		{input: "Django", want: "django"},
		{input: "typing_extensions", want: "typing-extensions"},
		{input: "ruamel.yaml", want: "ruamel-yaml"},
		{input: "Foo--Bar__baz", want: "foo-bar-baz"},
		{input: "  requests  ", want: "requests"},
		{input: "zope.interface", want: "zope-interface"},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
