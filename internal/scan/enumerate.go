package scan

import (
	"os"
	"path/filepath"

	"github.com/Hackerago/dotnetpath/internal/version"
)

// SharedDirName is the subdirectory of an install root that holds the
// versioned framework families.
const SharedDirName = "shared"

// enumerate yields one RawInstall per version directory under
// <root>/shared/<family>/. A missing shared directory, an unreadable
// family, or a directory name that is not a version are all normal and
// produce no entries.
func (s *Scanner) enumerate(c Candidate) []RawInstall {
	families, err := listDirs(filepath.Join(c.Dir, SharedDirName))
	if err != nil {
		return nil
	}

	var out []RawInstall
	for _, family := range families {
		versionDirs, err := listDirs(family)
		if err != nil {
			s.log.Debug("skipping framework family", "dir", family, "reason", err)
			continue
		}
		for _, dir := range versionDirs {
			v, ok := version.Parse(filepath.Base(dir))
			if !ok {
				continue
			}
			out = append(out, RawInstall{Dir: dir, Bitness: c.Bitness, Version: v})
		}
	}
	return out
}

// listDirs returns the full paths of dir's immediate subdirectories.
func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
