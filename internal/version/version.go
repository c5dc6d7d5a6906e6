// Package version parses and orders .NET shared-framework version
// directory names.
//
// A version directory is named either "3.1.7" or
// "3.0.0-preview-18579-0056". The part after the first hyphen is a
// free-form prerelease label. Parsing is deliberately lenient: a
// numeric component that overflows or otherwise fails to parse becomes
// zero, because a half-broken install is still worth indexing.
package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionDirPattern matches "major.minor.patch" with an optional
// "-label" prerelease suffix. Anything else is not a version directory.
var versionDirPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-(.+))?$`)

// Version is an immutable parsed runtime version.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32

	// Extra is the prerelease label, empty for a stable release.
	Extra string
}

// Key identifies an equivalence class of versions. Two prerelease
// builds of the same major.minor.patch are the same logical install
// even when their labels differ, because prerelease build identifiers
// are not stable within a channel. A stable release is never
// equivalent to a prerelease.
type Key struct {
	Major      uint32
	Minor      uint32
	Patch      uint32
	Prerelease bool
}

// Parse parses a version directory name.
// Returns false when the name is not shaped like a version at all;
// numeric components that fail to parse degrade to zero instead.
func Parse(name string) (Version, bool) {
	m := versionDirPattern.FindStringSubmatch(name)
	if m == nil {
		return Version{}, false
	}
	return Version{
		Major: parseComponent(m[1]),
		Minor: parseComponent(m[2]),
		Patch: parseComponent(m[3]),
		Extra: m[4],
	}, true
}

func parseComponent(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// Key returns the grouping key for v.
func (v Version) Key() Key {
	return Key{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Prerelease: v.Extra != "",
	}
}

// IsPrerelease reports whether v carries a prerelease label.
func (v Version) IsPrerelease() bool {
	return v.Extra != ""
}

// Compare orders versions: major, minor, patch ascending, and at the
// same numeric triple a prerelease sorts before the stable release.
// Returns -1, 0, or 1.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmpUint32(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpUint32(v.Minor, o.Minor)
	case v.Patch != o.Patch:
		return cmpUint32(v.Patch, o.Patch)
	case v.IsPrerelease() && !o.IsPrerelease():
		return -1
	case !v.IsPrerelease() && o.IsPrerelease():
		return 1
	default:
		return 0
	}
}

func cmpUint32(a, b uint32) int {
	if a < b {
		return -1
	}
	return 1
}

// String renders the version in directory-name form.
func (v Version) String() string {
	if v.Extra == "" {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Extra)
}
