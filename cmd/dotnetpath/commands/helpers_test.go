package commands

import (
	"path/filepath"
	"testing"

	"github.com/Hackerago/dotnetpath/internal/framework"
	"github.com/Hackerago/dotnetpath/internal/pe"
	"github.com/Hackerago/dotnetpath/internal/scan"
	"github.com/Hackerago/dotnetpath/internal/version"
)

// testIndex builds a provider over a fixed inventory:
//
//	/opt/dotnet      64-bit  6.0.1 and 8.0.3 (core runtime)
//	/opt/dotnet32    32-bit  8.0.1 (core runtime)
func testIndex(t *testing.T) *framework.PathProvider {
	t.Helper()

	installs := []scan.RawInstall{
		{
			Dir:     filepath.Join("/opt", "dotnet", "shared", "Microsoft.NETCore.App", "8.0.3"),
			Bitness: pe.Bitness64,
			Version: version.Version{Major: 8, Minor: 0, Patch: 3},
		},
		{
			Dir:     filepath.Join("/opt", "dotnet", "shared", "Microsoft.NETCore.App", "6.0.1"),
			Bitness: pe.Bitness64,
			Version: version.Version{Major: 6, Minor: 0, Patch: 1},
		},
		{
			Dir:     filepath.Join("/opt", "dotnet32", "shared", "Microsoft.NETCore.App", "8.0.1"),
			Bitness: pe.Bitness32,
			Version: version.Version{Major: 8, Minor: 0, Patch: 1},
		},
	}
	return framework.NewPathProvider(installs, "")
}

// emptyIndex builds a provider over no installs.
func emptyIndex(t *testing.T) *framework.PathProvider {
	t.Helper()
	return framework.NewPathProvider(nil, "")
}
