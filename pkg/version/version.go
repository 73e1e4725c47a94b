/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion   = errors.New("version string is empty")
	ErrInvalidVersion = errors.New("invalid version")
)

// pattern accepts the subset of PEP 440 that shows up on the package index:
// optional epoch, dotted release segments, optional pre/post/dev qualifiers,
// and an ignored local-version suffix. Legacy non-PEP-440 strings do not match
// and are rejected.
var pattern = regexp.MustCompile(`(?i)^(?:(\d+)!)?(\d+(?:\.\d+)*)(?:[._-]?(a|b|c|rc|alpha|beta|pre|preview)[._-]?(\d*))?(?:[._-]?(post|rev|r)[._-]?(\d*))?(?:[._-]?(dev)[._-]?(\d*))?(?:\+[0-9a-z]+(?:[._-][0-9a-z]+)*)?$`)

// Pre-release phase ranks used for ordering within one release.
const (
	phaseDev   = 1
	phaseAlpha = 2
	phaseBeta  = 3
	phaseRC    = 4
	phaseFinal = 5
	phasePost  = 6
)

// Version is an immutable Python package or interpreter version: one or more
// numeric release segments plus optional pre-release, post-release, and dev
// qualifiers. Construct with ParseVersion or MustParseVersion; the zero value
// is not a valid version.
//
// Ordering is total: release segments compare lexicographically with implicit
// zero padding, pre-releases sort before their final release, and
// post-releases after it.
type Version struct {
	segments []int

	pre     int // phaseAlpha..phaseRC, 0 if none
	preNum  int
	post    bool
	postNum int
	dev     bool
	devNum  int
}

// ParseVersion parses a version string into a Version.
// Supported formats: "3", "3.11", "3.11.2", "1.2.3rc1", "1.2.3.post1",
// "1.2.3.dev0", with an optional "v" prefix and an optional "0!" epoch.
// Local version suffixes ("+cu118") are accepted and ignored.
// Returns an error wrapping ErrEmptyVersion or ErrInvalidVersion.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	// Epochs reorder entire version lines; nothing on the index that this
	// tool inspects uses a non-zero epoch, so only the default is accepted.
	if m[1] != "" && m[1] != "0" {
		return Version{}, fmt.Errorf("%w: %q: non-zero epoch", ErrInvalidVersion, s)
	}

	parts := strings.Split(m[2], ".")
	v := Version{segments: make([]int, 0, len(parts))}
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: segment %q", ErrInvalidVersion, s, part)
		}
		v.segments = append(v.segments, n)
	}

	if m[3] != "" {
		v.pre = preRank(m[3])
		v.preNum = atoiDefault(m[4])
	}
	if m[5] != "" {
		v.post = true
		v.postNum = atoiDefault(m[6])
	}
	if m[7] != "" {
		v.dev = true
		v.devNum = atoiDefault(m[8])
	}

	return v, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use ParseVersion and handle errors explicitly.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

func preRank(qualifier string) int {
	switch strings.ToLower(qualifier) {
	case "a", "alpha":
		return phaseAlpha
	case "b", "beta":
		return phaseBeta
	default:
		// c, rc, pre, preview all normalize to a release candidate
		return phaseRC
	}
}

func atoiDefault(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// String returns the canonical string form, e.g. "3.11", "1.2rc1", "1.0.post2".
func (v Version) String() string {
	var b strings.Builder
	for i, seg := range v.segments {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(seg))
	}
	switch v.pre {
	case phaseAlpha:
		fmt.Fprintf(&b, "a%d", v.preNum)
	case phaseBeta:
		fmt.Fprintf(&b, "b%d", v.preNum)
	case phaseRC:
		fmt.Fprintf(&b, "rc%d", v.preNum)
	}
	if v.post {
		fmt.Fprintf(&b, ".post%d", v.postNum)
	}
	if v.dev {
		fmt.Fprintf(&b, ".dev%d", v.devNum)
	}
	return b.String()
}

// IsPrerelease reports whether the version carries an alpha, beta, candidate,
// or dev qualifier. Post-releases are not pre-releases.
func (v Version) IsPrerelease() bool {
	return v.pre != 0 || v.dev
}

// Major returns the first release segment.
func (v Version) Major() int {
	if len(v.segments) == 0 {
		return 0
	}
	return v.segments[0]
}

// Minor returns the second release segment, or 0 if the version has only one.
func (v Version) Minor() int {
	if len(v.segments) < 2 {
		return 0
	}
	return v.segments[1]
}

// Release returns a copy of the numeric release segments.
func (v Version) Release() []int {
	out := make([]int, len(v.segments))
	copy(out, v.segments)
	return out
}

// Segments returns the number of release segments the version was written
// with. "3" has one, "3.11" has two.
func (v Version) Segments() int {
	return len(v.segments)
}

// phase collapses the qualifier fields into a single comparable rank.
func (v Version) phase() int {
	switch {
	case v.dev && v.pre == 0 && !v.post:
		return phaseDev
	case v.pre != 0:
		return v.pre
	case v.post:
		return phasePost
	default:
		return phaseFinal
	}
}

// Compare returns -1 if v < other, 0 if equal, and 1 if v > other.
// Release segments compare lexicographically with missing segments treated
// as zero, so 3.9 < 3.10 and 3 equals 3.0.0 at the segment level.
// Pre-releases order before the corresponding final release.
func (v Version) Compare(other Version) int {
	n := len(v.segments)
	if len(other.segments) > n {
		n = len(other.segments)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.segments) {
			a = v.segments[i]
		}
		if i < len(other.segments) {
			b = other.segments[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}

	if p, q := v.phase(), other.phase(); p != q {
		if p < q {
			return -1
		}
		return 1
	}
	if v.preNum != other.preNum {
		if v.preNum < other.preNum {
			return -1
		}
		return 1
	}
	if v.postNum != other.postNum {
		if v.postNum < other.postNum {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other occupy the same position in the version
// order. "3.11" equals "3.11.0".
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// EqualsOrNewer reports whether v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// MarshalJSON encodes the version as its canonical string.
func (v Version) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}

// UnmarshalJSON decodes a version from its string form.
func (v *Version) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidVersion, data)
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the version as its canonical string.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}
