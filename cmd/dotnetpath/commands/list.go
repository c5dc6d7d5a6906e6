package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Hackerago/dotnetpath/internal/errors"
	"github.com/Hackerago/dotnetpath/internal/framework"
)

var (
	listJSON bool
	listYAML bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed .NET runtimes",
	Long: `List every .NET runtime install discovered on this machine.

Installs are grouped by install root, bitness, and version; a group's
paths are the version directories it spans. Groups are printed in
index order: 32-bit before 64-bit, then ascending version.

Examples:
  # Human-readable table
  dotnetpath list

  # Machine-readable output
  dotnetpath list --json
  dotnetpath list --yaml`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if listJSON && listYAML {
			return errors.NewUserError(nil, "flags --json and --yaml are mutually exclusive")
		}
		return nil
	},
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout, buildProvider(cmd))
}

// runListWithWriter allows injecting a writer and provider for testing.
func runListWithWriter(w io.Writer, p *framework.PathProvider) error {
	groups := p.Groups()

	switch {
	case listJSON:
		return outputGroupsJSON(w, groups)
	case listYAML:
		return outputGroupsYAML(w, groups)
	default:
		return outputGroupsTabular(w, groups)
	}
}

func outputGroupsJSON(w io.Writer, groups []*framework.Group) error {
	out := make([]groupJSON, len(groups))
	for i, g := range groups {
		out[i] = toGroupJSON(g)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputGroupsYAML(w io.Writer, groups []*framework.Group) error {
	out := make([]groupJSON, len(groups))
	for i, g := range groups {
		out[i] = toGroupJSON(g)
	}
	return yaml.NewEncoder(w).Encode(out)
}

func outputGroupsTabular(w io.Writer, groups []*framework.Group) error {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No .NET runtimes found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sVERSION%s\t%sBITNESS%s\t%sPRIMARY%s\t%sPATH%s\n",
		colorBold, colorReset, colorBold, colorReset,
		colorBold, colorReset, colorBold, colorReset)

	for _, g := range groups {
		primary := ""
		if g.HasDotNetAppPath {
			primary = colorCyan + "yes" + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%d-bit\t%s\t%s\n",
			colorGreen, g.Version, colorReset, g.Bitness, primary, g.Paths[0])

		// Extra member directories of the same group, indented.
		for _, p := range g.Paths[1:] {
			fmt.Fprintf(tw, "\t\t\t%s%s%s\n", colorGray, p, colorReset)
		}
	}
	return tw.Flush()
}
