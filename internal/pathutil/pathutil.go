// Package pathutil provides the path-containment predicate used by
// reverse lookups. Pure string and path algebra; symlinks are not
// resolved.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Normalize re-joins a path's directory and base components, clearing
// trailing separators and dot segments without touching the
// filesystem.
func Normalize(path string) string {
	return filepath.Join(filepath.Dir(path), filepath.Base(path))
}

// EqualFold compares two paths case-insensitively after normalizing
// both. Windows install roots differ only in recorded casing.
func EqualFold(a, b string) bool {
	return strings.EqualFold(Normalize(a), Normalize(b))
}

// IsUnder reports whether path is dir itself or located anywhere
// beneath dir. Comparison is case-insensitive.
func IsUnder(dir, path string) bool {
	dir = strings.ToLower(Normalize(dir))
	path = strings.ToLower(Normalize(path))
	if dir == path {
		return true
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
