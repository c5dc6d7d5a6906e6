package scan

import (
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hackerago/dotnetpath/internal/hostenv"
	"github.com/Hackerago/dotnetpath/internal/logging"
	"github.com/Hackerago/dotnetpath/internal/pe"
)

// fakePE returns minimal PE header bytes with the given
// optional-header magic (0x10B for 32-bit, 0x20B for 64-bit).
func fakePE(magic uint16) []byte {
	const lfanew = 0x80
	buf := make([]byte, lfanew+4+0x14+2)
	binary.LittleEndian.PutUint16(buf[0:], 0x5A4D)
	binary.LittleEndian.PutUint32(buf[0x3C:], lfanew)
	binary.LittleEndian.PutUint32(buf[lfanew:], 0x00004550)
	binary.LittleEndian.PutUint16(buf[lfanew+4+0x14:], magic)
	return buf
}

// makeRoot creates an install root holding a fake launcher and the
// given shared/<family>/<version> directories.
func makeRoot(t *testing.T, base string, magic uint16, versionDirs ...string) string {
	t.Helper()
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "dotnet.exe"), fakePE(magic), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, vd := range versionDirs {
		if err := os.MkdirAll(filepath.Join(base, SharedDirName, vd), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return base
}

func newScanner(t *testing.T, env hostenv.Environment, opts Options) *Scanner {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = logging.ForTest(t)
	}
	return NewScanner(env, opts)
}

func TestCandidatesSourceOrderAndDedup(t *testing.T) {
	tmp := t.TempDir()
	a := makeRoot(t, filepath.Join(tmp, "a"), 0x20B)
	b := makeRoot(t, filepath.Join(tmp, "b"), 0x10B)
	std := makeRoot(t, filepath.Join(tmp, "std"), 0x20B)

	sep := string(os.PathListSeparator)
	env := &hostenv.Fake{
		Vars: map[string]string{
			"PATH":        strings.Join([]string{a, filepath.Join(tmp, "missing")}, sep),
			"DOTNET_ROOT": b + sep + strings.ToUpper(a[:1]) + a[1:], // duplicate of a, different case
		},
		Standard: []string{std, a + string(filepath.Separator)}, // duplicate of a, trailing separator
	}

	got := newScanner(t, env, Options{}).Candidates()
	if len(got) != 3 {
		t.Fatalf("Candidates() returned %d entries, want 3: %+v", len(got), got)
	}
	want := []Candidate{
		{Dir: a, Bitness: pe.Bitness64},
		{Dir: b, Bitness: pe.Bitness32},
		{Dir: std, Bitness: pe.Bitness64},
	}
	for i, c := range want {
		if got[i] != c {
			t.Errorf("Candidates()[%d] = %+v, want %+v", i, got[i], c)
		}
	}
}

func TestCandidatesFiltering(t *testing.T) {
	tmp := t.TempDir()

	// Exists but has no launcher.
	noLauncher := filepath.Join(tmp, "nolauncher")
	if err := os.MkdirAll(noLauncher, 0o755); err != nil {
		t.Fatal(err)
	}

	// Launcher exists but is not a PE image.
	badPE := filepath.Join(tmp, "badpe")
	if err := os.MkdirAll(badPE, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(badPE, "dotnet.exe"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	// Launcher path exists but is a directory.
	launcherDir := filepath.Join(tmp, "launcherdir")
	if err := os.MkdirAll(filepath.Join(launcherDir, "dotnet.exe"), 0o755); err != nil {
		t.Fatal(err)
	}

	good := makeRoot(t, filepath.Join(tmp, "good"), 0x20B)

	env := &hostenv.Fake{
		Standard: []string{noLauncher, badPE, launcherDir, filepath.Join(tmp, "missing"), good},
	}

	got := newScanner(t, env, Options{}).Candidates()
	if len(got) != 1 || got[0].Dir != good {
		t.Fatalf("Candidates() = %+v, want only %q", got, good)
	}
}

func TestCandidatesCustomVarsAndExtraRoots(t *testing.T) {
	tmp := t.TempDir()
	fromVar := makeRoot(t, filepath.Join(tmp, "fromvar"), 0x10B)
	pinned := makeRoot(t, filepath.Join(tmp, "pinned"), 0x20B)

	env := &hostenv.Fake{Vars: map[string]string{"MY_ROOT": fromVar}}
	opts := Options{
		SearchPathVar: "UNSET_PATH_VAR",
		RootVars:      []string{"MY_ROOT"},
		ExtraRoots:    []string{pinned},
	}

	got := newScanner(t, env, opts).Candidates()
	if len(got) != 2 {
		t.Fatalf("Candidates() returned %d entries, want 2", len(got))
	}
	if got[0].Dir != fromVar || got[1].Dir != pinned {
		t.Errorf("Candidates() order = %+v, want [fromvar pinned]", got)
	}
}

func TestInstallsEnumeratesSharedLayout(t *testing.T) {
	tmp := t.TempDir()
	root := makeRoot(t, filepath.Join(tmp, "dotnet"), 0x20B,
		filepath.Join("Microsoft.NETCore.App", "2.1.0"),
		filepath.Join("Microsoft.NETCore.App", "3.0.0-preview-18579-0056"),
		filepath.Join("Microsoft.WindowsDesktop.App", "3.0.0"),
		filepath.Join("Microsoft.NETCore.App", "notaversion"),
	)
	// A stray file under a family must not be listed.
	if err := os.WriteFile(filepath.Join(root, SharedDirName, "Microsoft.NETCore.App", "README"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := &hostenv.Fake{Standard: []string{root}}
	installs := newScanner(t, env, Options{}).Installs()

	if len(installs) != 3 {
		t.Fatalf("Installs() returned %d entries, want 3: %+v", len(installs), installs)
	}
	for _, in := range installs {
		if in.Bitness != pe.Bitness64 {
			t.Errorf("install %q bitness = %d, want 64", in.Dir, in.Bitness)
		}
		if filepath.Base(in.Dir) != in.Version.String() {
			t.Errorf("install %q version %s does not match directory name", in.Dir, in.Version)
		}
	}
}

func TestInstallsNoSharedDirectory(t *testing.T) {
	root := makeRoot(t, filepath.Join(t.TempDir(), "dotnet"), 0x20B)

	env := &hostenv.Fake{Standard: []string{root}}
	if installs := newScanner(t, env, Options{}).Installs(); len(installs) != 0 {
		t.Errorf("Installs() = %+v, want none without a shared directory", installs)
	}
}

func TestScannerDefaultLogger(t *testing.T) {
	// NewScanner must tolerate a nil logger in Options.
	s := NewScanner(&hostenv.Fake{}, Options{})
	if s.log == nil {
		t.Fatal("scanner logger not defaulted")
	}
	if s.log != slog.Default() {
		t.Error("nil Options.Logger should fall back to slog.Default()")
	}
}
