package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hackerago/dotnetpath/internal/errors"
	"github.com/Hackerago/dotnetpath/internal/framework"
)

func init() {
	rootCmd.AddCommand(whichCmd)
}

var whichCmd = &cobra.Command{
	Use:   "which <file>",
	Short: "Report which installed runtime owns a file",
	Long: `Report the runtime version that owns a file path.

A file is owned by an install when it sits underneath one of the
install's version directories. The path is matched lexically and
case-insensitively; the file does not have to exist.

Exits with code 1 when no installed runtime owns the path.

Examples:
  dotnetpath which /usr/share/dotnet/shared/Microsoft.NETCore.App/8.0.3/System.Text.Json.dll`,
	Args: cobra.ExactArgs(1),
	RunE: runWhich,
}

func runWhich(cmd *cobra.Command, args []string) error {
	return runWhichWithWriter(os.Stdout, buildProvider(cmd), args[0])
}

// runWhichWithWriter allows injecting a writer and provider for testing.
func runWhichWithWriter(w io.Writer, p *framework.PathProvider, path string) error {
	v, ok := p.TryGetVersion(path)
	if !ok {
		return errors.NewUserError(errors.ErrNotOwned, "Run: dotnetpath list")
	}

	fmt.Fprintln(w, v)
	return nil
}
