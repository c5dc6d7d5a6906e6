package framework

import (
	"github.com/Hackerago/dotnetpath/internal/pathutil"
	"github.com/Hackerago/dotnetpath/internal/version"
)

// VersionOf reports the version of the install group owning filePath:
// the first group, in index order, with a member directory that is an
// ancestor of the path. The second return is false when no group
// contains the path.
func (x *Index) VersionOf(filePath string) (version.Version, bool) {
	if filePath == "" {
		return version.Version{}, false
	}
	for _, g := range x.groups {
		for _, dir := range g.Paths {
			if pathutil.IsUnder(dir, filePath) {
				return g.Version, true
			}
		}
	}
	return version.Version{}, false
}
