// Package goversion parses Go toolchain version strings as published in the
// release index (go1.22.3, go1.23rc2) and orders their bare suffixes.
package goversion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/gover/internal/messages"
)

var (
	versionPattern = regexp.MustCompile(`^go(\d.*)$`)
	suffixPattern  = regexp.MustCompile(`^(\d+(?:\.\d+){0,2})([a-z]+)(\d*)$`)
)

// Parse extracts the bare version suffix from an index version string.
// "go1.22.3" yields "1.22.3"; anything without the literal go prefix is an
// unknown-format error.
func Parse(version string) (string, error) {
	m := versionPattern.FindStringSubmatch(version)
	if m == nil {
		return "", fmt.Errorf(messages.VersionUnknownFormatFmt, version)
	}
	return m[1], nil
}

// Compare orders two bare version suffixes, returning -1, 0, or 1.
// Prerelease builds (1.23rc2) sort before the corresponding final release.
// Suffixes that cannot be interpreted sort lexically after interpretable ones.
func Compare(a string, b string) int {
	va, errA := toSemver(a)
	vb, errB := toSemver(b)
	switch {
	case errA == nil && errB == nil:
		return va.Compare(vb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// toSemver maps a go version suffix onto semver: "1.22" parses as-is via
// coercion, "1.21rc4" becomes "1.21.0-rc.4".
func toSemver(suffix string) (*semver.Version, error) {
	if m := suffixPattern.FindStringSubmatch(suffix); m != nil {
		pre := m[2]
		if m[3] != "" {
			pre += "." + m[3]
		}
		return semver.NewVersion(pad(m[1]) + "-" + pre)
	}
	return semver.NewVersion(suffix)
}

func pad(numeric string) string {
	for strings.Count(numeric, ".") < 2 {
		numeric += ".0"
	}
	return numeric
}
