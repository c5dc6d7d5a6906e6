// Package hostenv abstracts the process environment and the
// platform's well-known install locations so discovery can run against
// a fake machine in tests instead of the real one.
package hostenv

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment is the configuration source the candidate scanner reads.
// Implementations must be safe for concurrent use.
type Environment interface {
	// Getenv returns the value of the named variable, empty if unset.
	Getenv(name string) string

	// StandardInstallDirs returns the platform's conventional runtime
	// install roots, e.g. %ProgramFiles%\dotnet on Windows.
	StandardInstallDirs() []string

	// LauncherName returns the file name of the runtime launcher
	// expected directly under an install root.
	LauncherName() string
}

// runtimeDirName is the directory the runtime installer creates under
// the platform's program-files equivalents.
const runtimeDirName = "dotnet"

// OS reads the real process environment.
type OS struct {
	// Launcher overrides the launcher file name when non-empty.
	Launcher string
}

// Getenv implements Environment via os.Getenv.
func (OS) Getenv(name string) string {
	return os.Getenv(name)
}

// StandardInstallDirs returns the conventional install roots for the
// current platform. Roots that do not exist are returned anyway; the
// scanner filters.
func (OS) StandardInstallDirs() []string {
	if runtime.GOOS == "windows" {
		var dirs []string
		for _, v := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if pf := os.Getenv(v); pf != "" {
				dirs = append(dirs, filepath.Join(pf, runtimeDirName))
			}
		}
		return dirs
	}
	return []string{
		filepath.Join("/usr", "share", runtimeDirName),
		filepath.Join("/usr", "local", "share", runtimeDirName),
		filepath.Join("/opt", runtimeDirName),
	}
}

// LauncherName implements Environment.
func (e OS) LauncherName() string {
	if e.Launcher != "" {
		return e.Launcher
	}
	if runtime.GOOS == "windows" {
		return "dotnet.exe"
	}
	return "dotnet"
}

// Fake is a deterministic Environment for tests.
type Fake struct {
	Vars     map[string]string
	Standard []string
	Launcher string
}

// Getenv implements Environment.
func (f *Fake) Getenv(name string) string {
	return f.Vars[name]
}

// StandardInstallDirs implements Environment.
func (f *Fake) StandardInstallDirs() []string {
	return f.Standard
}

// LauncherName implements Environment.
func (f *Fake) LauncherName() string {
	if f.Launcher == "" {
		return "dotnet.exe"
	}
	return f.Launcher
}
