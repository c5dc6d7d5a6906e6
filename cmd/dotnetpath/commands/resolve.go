package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hackerago/dotnetpath/internal/errors"
	"github.com/Hackerago/dotnetpath/internal/framework"
	"github.com/Hackerago/dotnetpath/internal/pe"
)

var (
	resolveBitness int
	resolveJSON    bool
)

func init() {
	resolveCmd.Flags().IntVar(&resolveBitness, "bitness", 64,
		"requested bitness: 32 or 64")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false,
		"Output in JSON format")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <major>.<minor>",
	Short: "Find the best install for a runtime version",
	Long: `Resolve the best installed runtime for a major.minor request.

The search prefers an exact major.minor at the requested bitness and
relaxes in stages: nearest minor of the same major (higher minors
before lower), then any install of the major, then any install at all.
Each stage tries the requested bitness before the other one. Within a
stage, installs carrying the core runtime (Microsoft.NETCore.App) win
over auxiliary-only installs.

Exits with code 1 when nothing is installed at all.

Examples:
  # Best 64-bit match for .NET 8.0
  dotnetpath resolve 8.0

  # Best 32-bit match for .NET Core 3.1
  dotnetpath resolve 3.1 --bitness 32`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	major, minor, err := parseMajorMinor(args[0])
	if err != nil {
		return errors.NewUserError(err, "expected a version like 8.0")
	}

	bitness := pe.Bitness(resolveBitness)
	if !bitness.Valid() {
		return errors.NewUserError(errors.ErrInvalidBitness, "use --bitness 32 or --bitness 64")
	}

	return runResolveWithWriter(os.Stdout, buildProvider(cmd), major, minor, bitness)
}

// runResolveWithWriter allows injecting a writer and provider for testing.
func runResolveWithWriter(w io.Writer, p *framework.PathProvider, major, minor uint32, bitness pe.Bitness) error {
	g, ok := p.Resolve(major, minor, bitness)
	if !ok {
		return errors.NewUserError(errors.ErrNoRuntime, "Run: dotnetpath doctor")
	}

	if resolveJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toGroupJSON(g))
	}

	fmt.Fprintln(w, groupLabel(g))
	for _, p := range g.Paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
	return nil
}

// parseMajorMinor parses a "<major>.<minor>" request. Patch and
// prerelease parts are not part of a request; extra segments are an
// error, not silently ignored.
func parseMajorMinor(s string) (major, minor uint32, err error) {
	rawMajor, rawMinor, ok := strings.Cut(s, ".")
	if !ok {
		return 0, 0, errors.Newf("invalid version %q", s)
	}

	m, err := strconv.ParseUint(rawMajor, 10, 32)
	if err != nil {
		return 0, 0, errors.Newf("invalid major version %q", rawMajor)
	}
	n, err := strconv.ParseUint(rawMinor, 10, 32)
	if err != nil {
		return 0, 0, errors.Newf("invalid minor version %q", rawMinor)
	}
	return uint32(m), uint32(n), nil
}
