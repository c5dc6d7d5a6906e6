// Package framework builds the queryable index of discovered runtime
// installs and answers best-match and reverse-lookup queries over it.
//
// The index is a snapshot: constructed once from a scan, immutable
// afterwards, and safe for any number of concurrent readers. A caller
// that wants a fresh view constructs a new index.
package framework

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/Hackerago/dotnetpath/internal/pe"
	"github.com/Hackerago/dotnetpath/internal/scan"
	"github.com/Hackerago/dotnetpath/internal/version"
)

// DefaultPrimaryFamily is the framework family that marks a group as
// containing the core runtime rather than only auxiliary overlays such
// as the desktop or web frameworks.
const DefaultPrimaryFamily = "Microsoft.NETCore.App"

// Group is one logical install: every discovered version directory
// sharing an install root, a bitness, and a version equivalence class.
// Distinct prerelease builds of the same major.minor.patch collapse
// into one group because their build identifiers are not stable within
// a prerelease channel.
type Group struct {
	// Paths holds the member version directories in discovery order.
	Paths []string

	Bitness pe.Bitness

	// Version is the first-discovered member's version. It is both the
	// representative for search ordering and the version reported by
	// reverse lookups.
	Version version.Version

	// HasDotNetAppPath is true when any member belongs to the primary
	// runtime family.
	HasDotNetAppPath bool
}

// groupKey is the composite grouping identity of the shared-framework
// layout: the install root (grandparent of the version directory,
// case-folded), the launcher bitness, and the version equivalence
// class.
type groupKey struct {
	root    string
	bitness pe.Bitness
	version version.Key
}

// Index is the sorted, immutable collection of install groups.
type Index struct {
	groups []*Group
}

// NewIndex groups the raw installs and sorts them into the index's
// total order: bitness ascending, then version ascending, with a
// stable release sorting after any prerelease of the same numeric
// triple. primaryFamily selects the family that sets HasDotNetAppPath;
// empty means DefaultPrimaryFamily.
func NewIndex(installs []scan.RawInstall, primaryFamily string) *Index {
	if primaryFamily == "" {
		primaryFamily = DefaultPrimaryFamily
	}

	byKey := make(map[groupKey]*Group)
	var groups []*Group
	for _, in := range installs {
		familyDir := filepath.Dir(in.Dir)
		key := groupKey{
			root:    strings.ToLower(normalize(filepath.Dir(familyDir))),
			bitness: in.Bitness,
			version: in.Version.Key(),
		}
		g, ok := byKey[key]
		if !ok {
			g = &Group{Bitness: in.Bitness, Version: in.Version}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.Paths = append(g.Paths, in.Dir)
		if strings.EqualFold(filepath.Base(familyDir), primaryFamily) {
			g.HasDotNetAppPath = true
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Bitness != b.Bitness {
			return a.Bitness < b.Bitness
		}
		return a.Version.Compare(b.Version) < 0
	})

	return &Index{groups: groups}
}

func normalize(path string) string {
	return filepath.Join(filepath.Dir(path), filepath.Base(path))
}

// Groups returns the sorted groups. The returned slice and the groups
// it holds must be treated as read-only.
func (x *Index) Groups() []*Group {
	return x.groups
}

// HasInstalls reports whether the scan found any runtime at all.
func (x *Index) HasInstalls() bool {
	return len(x.groups) > 0
}
