package commands

import (
	"fmt"

	"github.com/Hackerago/dotnetpath/internal/framework"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// groupJSON is the machine-readable shape of an install group, shared
// by the list and resolve commands.
type groupJSON struct {
	Version string   `json:"version" yaml:"version"`
	Bitness int      `json:"bitness" yaml:"bitness"`
	Primary bool     `json:"primary" yaml:"primary"`
	Paths   []string `json:"paths" yaml:"paths"`
}

func toGroupJSON(g *framework.Group) groupJSON {
	return groupJSON{
		Version: g.Version.String(),
		Bitness: int(g.Bitness),
		Primary: g.HasDotNetAppPath,
		Paths:   g.Paths,
	}
}

// groupLabel is the one-line human form of a group.
func groupLabel(g *framework.Group) string {
	return fmt.Sprintf("%s (%d-bit)", g.Version, g.Bitness)
}
