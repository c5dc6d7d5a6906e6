package framework

import (
	"path/filepath"
	"testing"

	"github.com/Hackerago/dotnetpath/internal/pe"
	"github.com/Hackerago/dotnetpath/internal/scan"
	"github.com/Hackerago/dotnetpath/internal/version"
)

// install builds a RawInstall for <root>/shared/<family>/<ver>.
func install(t *testing.T, root, family, ver string, bitness pe.Bitness) scan.RawInstall {
	t.Helper()
	v, ok := version.Parse(ver)
	if !ok {
		t.Fatalf("bad test version %q", ver)
	}
	return scan.RawInstall{
		Dir:     filepath.Join(root, "shared", family, ver),
		Bitness: bitness,
		Version: v,
	}
}

func TestNewIndexGroupsEquivalentInstalls(t *testing.T) {
	root := filepath.Join("/", "install", "dotnet")
	installs := []scan.RawInstall{
		install(t, root, "Microsoft.NETCore.App", "3.0.0-preview-18579-0056", pe.Bitness64),
		install(t, root, "Microsoft.WindowsDesktop.App", "3.0.0-rc1-final", pe.Bitness64),
		install(t, root, "Microsoft.AspNetCore.App", "3.0.0-preview9", pe.Bitness64),
	}

	idx := NewIndex(installs, "")
	groups := idx.Groups()
	if len(groups) != 1 {
		t.Fatalf("NewIndex produced %d groups, want 1: %+v", len(groups), groups)
	}

	g := groups[0]
	if len(g.Paths) != 3 {
		t.Errorf("group has %d paths, want 3", len(g.Paths))
	}
	for i, in := range installs {
		if g.Paths[i] != in.Dir {
			t.Errorf("Paths[%d] = %q, want input order %q", i, g.Paths[i], in.Dir)
		}
	}
	if !g.HasDotNetAppPath {
		t.Error("group contains Microsoft.NETCore.App, HasDotNetAppPath should be true")
	}
	// Reported version is the first-discovered member's.
	if g.Version.Extra != "preview-18579-0056" {
		t.Errorf("group version = %s, want the first member's version", g.Version)
	}
}

func TestNewIndexSeparatesGroups(t *testing.T) {
	rootA := filepath.Join("/", "a", "dotnet")
	rootB := filepath.Join("/", "b", "dotnet")
	installs := []scan.RawInstall{
		install(t, rootA, "Microsoft.NETCore.App", "3.0.0", pe.Bitness64),
		// Prerelease of the same triple is a distinct group.
		install(t, rootA, "Microsoft.NETCore.App", "3.0.0-preview9", pe.Bitness64),
		// Same version, other bitness.
		install(t, rootA, "Microsoft.NETCore.App", "3.0.0", pe.Bitness32),
		// Same version, other root.
		install(t, rootB, "Microsoft.NETCore.App", "3.0.0", pe.Bitness64),
	}

	idx := NewIndex(installs, "")
	if got := len(idx.Groups()); got != 4 {
		t.Fatalf("NewIndex produced %d groups, want 4", got)
	}
}

func TestNewIndexRootIdentityIsCaseInsensitive(t *testing.T) {
	lower := filepath.Join("/", "install", "dotnet")
	upper := filepath.Join("/", "Install", "Dotnet")
	installs := []scan.RawInstall{
		install(t, lower, "Microsoft.NETCore.App", "2.1.0", pe.Bitness64),
		install(t, upper, "Microsoft.NETCore.App", "2.1.0", pe.Bitness64),
	}

	idx := NewIndex(installs, "")
	if got := len(idx.Groups()); got != 1 {
		t.Fatalf("case-differing roots produced %d groups, want 1", got)
	}
}

func TestNewIndexCustomPrimaryFamily(t *testing.T) {
	root := filepath.Join("/", "install", "mono")
	installs := []scan.RawInstall{
		install(t, root, "Custom.Core", "1.0.0", pe.Bitness64),
	}

	if g := NewIndex(installs, "").Groups()[0]; g.HasDotNetAppPath {
		t.Error("Custom.Core must not count as the default primary family")
	}
	if g := NewIndex(installs, "Custom.Core").Groups()[0]; !g.HasDotNetAppPath {
		t.Error("Custom.Core should count when configured as the primary family")
	}
}

func TestNewIndexSortOrder(t *testing.T) {
	root := filepath.Join("/", "install", "dotnet")
	installs := []scan.RawInstall{
		install(t, root, "Microsoft.NETCore.App", "3.1.0", pe.Bitness64),
		install(t, root, "Microsoft.NETCore.App", "2.1.0", pe.Bitness64),
		install(t, root, "Microsoft.NETCore.App", "3.1.0", pe.Bitness32),
		install(t, root, "Microsoft.NETCore.App", "3.1.0-preview1", pe.Bitness64),
	}

	idx := NewIndex(installs, "")
	want := []struct {
		bitness pe.Bitness
		version string
	}{
		{pe.Bitness32, "3.1.0"},
		{pe.Bitness64, "2.1.0"},
		{pe.Bitness64, "3.1.0-preview1"},
		{pe.Bitness64, "3.1.0"},
	}

	groups := idx.Groups()
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, w := range want {
		if groups[i].Bitness != w.bitness || groups[i].Version.String() != w.version {
			t.Errorf("Groups()[%d] = (%d, %s), want (%d, %s)",
				i, groups[i].Bitness, groups[i].Version, w.bitness, w.version)
		}
	}
}

func TestHasInstalls(t *testing.T) {
	if NewIndex(nil, "").HasInstalls() {
		t.Error("empty index should report no installs")
	}
	root := filepath.Join("/", "install", "dotnet")
	idx := NewIndex([]scan.RawInstall{
		install(t, root, "Microsoft.NETCore.App", "2.1.0", pe.Bitness64),
	}, "")
	if !idx.HasInstalls() {
		t.Error("non-empty index should report installs")
	}
}

func TestVersionOf(t *testing.T) {
	root := filepath.Join("/", "install", "dotnet")
	idx := NewIndex([]scan.RawInstall{
		install(t, root, "Microsoft.NETCore.App", "2.1.0", pe.Bitness64),
		install(t, root, "Microsoft.NETCore.App", "3.1.7", pe.Bitness64),
	}, "")

	v, ok := idx.VersionOf(filepath.Join(root, "shared", "Microsoft.NETCore.App", "2.1.0", "lib.dll"))
	if !ok {
		t.Fatal("VersionOf() found nothing for a member-owned file")
	}
	if v.String() != "2.1.0" {
		t.Errorf("VersionOf() = %s, want 2.1.0", v)
	}

	if _, ok := idx.VersionOf(filepath.Join("/", "somewhere", "else", "lib.dll")); ok {
		t.Error("VersionOf() matched a path outside every member directory")
	}
	if _, ok := idx.VersionOf(""); ok {
		t.Error("VersionOf() matched the empty path")
	}
}
