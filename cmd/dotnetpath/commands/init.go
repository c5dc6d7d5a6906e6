package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hackerago/dotnetpath/internal/config"
	"github.com/Hackerago/dotnetpath/internal/errors"
	"github.com/Hackerago/dotnetpath/pkg/fileutil"
)

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Non-interactive mode, accept all defaults")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dotnetpath configuration",
	Long: `Write a default configuration file.

Creates ~/.config/dotnetpath/config.yaml holding the stock discovery
settings so unusual machines can adjust them: the search-path variable,
the runtime root variables, extra install roots, the launcher name, and
the primary framework family.`,
	Example: `  # Initialize with interactive prompts
  dotnetpath init

  # Initialize non-interactively, accepting defaults
  dotnetpath init --yes

  # Force overwrite existing configuration
  dotnetpath init --force

  See Also: dotnetpath doctor`,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := filepath.Join(config.Dir(), "config.yaml")

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Printf("Configuration already exists at %s\n", configPath)
		fmt.Println("Use --force to overwrite")
		return nil
	}

	// Interactive confirmation
	if !initYes {
		fmt.Println("This will create:")
		fmt.Printf("  %s\n", configPath)
		fmt.Println()

		if !confirm("Proceed?") {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Printf("Created %s\n", configPath)
	return nil
}

// confirm prompts the user for a yes/no confirmation.
// Returns true only if the user enters "y" or "yes" (case-insensitive).
func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N] ", prompt)

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
