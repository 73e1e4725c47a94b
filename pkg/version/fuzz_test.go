/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package version

import "testing"

// FuzzParseVersion verifies that parsing never panics and that every
// successfully parsed version round-trips through String.
func FuzzParseVersion(f *testing.F) {
	seeds := []string{
		"3",
		"3.11",
		"1.26.4",
		"v2.1",
		"3.12rc1",
		"1.0.dev0",
		"2.0.post1",
		"1.13.1+cu117",
		"0!1.2",
		"",
		"not-a-version",
		"1..2",
		"1.2.3.4.5.6",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ParseVersion(input)
		if err != nil {
			return
		}
		again, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("canonical form %q of %q does not reparse: %v", v.String(), input, err)
		}
		if !again.Equal(v) {
			t.Fatalf("round trip changed order: %q -> %q", input, v.String())
		}
	})
}
