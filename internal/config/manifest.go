package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/Hackerago/dotnetpath/pkg/fileutil"
)

// ManifestName is the file name of the pinned-roots manifest, kept
// next to the config file.
const ManifestName = "roots.toml"

// Manifest lists install roots the environment does not advertise,
// typically portable or xcopy installs:
//
//	roots = [
//	  'D:\runtimes\dotnet-preview',
//	]
type Manifest struct {
	Roots []string `toml:"roots"`
}

// ManifestPath returns the default location of the pinned-roots
// manifest.
func ManifestPath() string {
	return filepath.Join(Dir(), ManifestName)
}

// LoadManifest reads the pinned install roots from path. A missing
// manifest is normal and yields no roots; a malformed one is reported.
func LoadManifest(path string) ([]string, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading roots manifest")
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing roots manifest")
	}
	return m.Roots, nil
}
