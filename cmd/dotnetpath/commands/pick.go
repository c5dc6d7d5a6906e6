package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/Hackerago/dotnetpath/internal/errors"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick an installed runtime",
	Long: `Fuzzy-find over the discovered installs and print the chosen
install's version directory to stdout.

Useful for shell substitution:
  export DOTNET_SHARED=$(dotnetpath pick)`,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, _ []string) error {
	groups := buildProvider(cmd).Groups()
	if len(groups) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No .NET runtimes found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		groups,
		func(i int) string {
			return groupLabel(groups[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			g := groups[i]
			primary := "no"
			if g.HasDotNetAppPath {
				primary = "yes"
			}
			return fmt.Sprintf("Version: %s\nBitness: %d-bit\nCore runtime: %s\n\nDirectories:\n%s",
				g.Version,
				g.Bitness,
				primary,
				strings.Join(g.Paths, "\n"),
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), groups[idx].Paths[0])
	return nil
}
