// Package scan discovers candidate .NET install roots and enumerates
// the version directories inside them.
//
// Discovery is best-effort by contract: a root that cannot be probed
// is skipped, never reported. The scanner only confirms that a root
// exists, holds the launcher executable, and that the launcher's
// bitness can be read from its PE header. Enumeration then walks the
// shared-framework layout underneath each confirmed root.
package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hackerago/dotnetpath/internal/hostenv"
	"github.com/Hackerago/dotnetpath/internal/pathutil"
	"github.com/Hackerago/dotnetpath/internal/pe"
	"github.com/Hackerago/dotnetpath/internal/version"
)

// Default environment variable names consulted for install roots.
// These are defaults, not policy: the config layer may substitute
// different names.
var (
	DefaultSearchPathVar = "PATH"
	DefaultRootVars      = []string{"DOTNET_ROOT", "DOTNET_ROOT(x86)"}
)

// Candidate is a confirmed install root together with the bitness of
// its launcher.
type Candidate struct {
	Dir     string
	Bitness pe.Bitness
}

// RawInstall is one discovered version directory. Created during
// enumeration and never mutated afterwards.
type RawInstall struct {
	// Dir is the full path of the version directory,
	// <root>/shared/<family>/<version>.
	Dir     string
	Bitness pe.Bitness
	Version version.Version
}

// Options adjusts which environment sources the scanner consults.
// Zero values fall back to the defaults above.
type Options struct {
	// SearchPathVar is the name of the path-list variable to split for
	// candidate roots.
	SearchPathVar string

	// RootVars are names of variables that each hold a path list of
	// runtime root overrides.
	RootVars []string

	// ExtraRoots are additional roots appended after the platform's
	// standard install directories (e.g. pinned portable installs).
	ExtraRoots []string

	// Logger receives debug-level traces of skipped candidates.
	Logger *slog.Logger
}

// Scanner locates confirmed install roots.
type Scanner struct {
	env  hostenv.Environment
	opts Options
	log  *slog.Logger
}

// NewScanner creates a scanner over the given environment.
func NewScanner(env hostenv.Environment, opts Options) *Scanner {
	if opts.SearchPathVar == "" {
		opts.SearchPathVar = DefaultSearchPathVar
	}
	if opts.RootVars == nil {
		opts.RootVars = DefaultRootVars
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{env: env, opts: opts, log: log}
}

// Candidates returns the deduplicated, confirmed install roots in
// source order: search-path entries, root-variable entries, standard
// install directories, extra roots. The order is deliberately not
// sorted; the index imposes the final total order.
func (s *Scanner) Candidates() []Candidate {
	var dirs []string
	dirs = append(dirs, splitPathList(s.env.Getenv(s.opts.SearchPathVar))...)
	for _, v := range s.opts.RootVars {
		dirs = append(dirs, splitPathList(s.env.Getenv(v))...)
	}
	dirs = append(dirs, s.env.StandardInstallDirs()...)
	dirs = append(dirs, s.opts.ExtraRoots...)

	launcher := s.env.LauncherName()
	seen := make(map[string]struct{}, len(dirs))
	var out []Candidate
	for _, dir := range dirs {
		dir = pathutil.Normalize(dir)
		key := strings.ToLower(dir)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		bitness, ok := s.confirm(dir, launcher)
		if !ok {
			continue
		}
		out = append(out, Candidate{Dir: dir, Bitness: bitness})
	}
	return out
}

// Installs runs the full discovery pass: confirmed roots, then one
// RawInstall per version directory found beneath them.
func (s *Scanner) Installs() []RawInstall {
	var out []RawInstall
	for _, c := range s.Candidates() {
		out = append(out, s.enumerate(c)...)
	}
	return out
}

// confirm checks that dir is a directory holding a sniffable launcher.
func (s *Scanner) confirm(dir, launcher string) (pe.Bitness, bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return 0, false
	}
	bitness, err := pe.Sniff(filepath.Join(dir, launcher))
	if err != nil {
		s.log.Debug("skipping install root", "dir", dir, "reason", err)
		return 0, false
	}
	return bitness, true
}

func splitPathList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, string(os.PathListSeparator)) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
