package framework

import (
	"github.com/Hackerago/dotnetpath/internal/pe"
	"github.com/Hackerago/dotnetpath/internal/scan"
	"github.com/Hackerago/dotnetpath/internal/version"
)

// PathProvider is the embedding-friendly front door over an index:
// the try-style query surface plus everything Index exposes. A
// provider is a snapshot; rescanning means building a new one.
type PathProvider struct {
	*Index
}

// NewPathProvider indexes the given installs. primaryFamily selects
// the family treated as the core runtime; empty means
// DefaultPrimaryFamily.
func NewPathProvider(installs []scan.RawInstall, primaryFamily string) *PathProvider {
	return &PathProvider{Index: NewIndex(installs, primaryFamily)}
}

// TryGetPaths returns the member directories of the best install for
// the request, or false when nothing is installed that can serve it.
func (p *PathProvider) TryGetPaths(major, minor uint32, bitness pe.Bitness) ([]string, bool) {
	g, ok := p.Resolve(major, minor, bitness)
	if !ok {
		return nil, false
	}
	return g.Paths, true
}

// TryGetVersion returns the version of the install owning filePath,
// or false when no install owns it.
func (p *PathProvider) TryGetVersion(filePath string) (version.Version, bool) {
	return p.VersionOf(filePath)
}
