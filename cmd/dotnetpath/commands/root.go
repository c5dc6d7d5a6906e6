// Package commands implements the CLI commands for dotnetpath.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hackerago/dotnetpath/cmd"
	"github.com/Hackerago/dotnetpath/internal/config"
	"github.com/Hackerago/dotnetpath/internal/errors"
	"github.com/Hackerago/dotnetpath/internal/framework"
	"github.com/Hackerago/dotnetpath/internal/hostenv"
	"github.com/Hackerago/dotnetpath/internal/logging"
	"github.com/Hackerago/dotnetpath/internal/scan"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedConfig holds the configuration loaded during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// --version reports the same build info as the version subcommand.
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("dotnetpath version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	loadedConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "dotnetpath",
	Short: "Locate installed .NET runtimes",
	Long: `dotnetpath discovers the .NET runtimes installed on this machine and
answers version queries against them.

It scans the process environment (PATH, DOTNET_ROOT, DOTNET_ROOT(x86))
and the platform's conventional install directories, confirms each root
by the launcher executable it holds, and reads the launcher's header to
tell 32-bit from 64-bit installs side by side.

Queries run against the resulting snapshot: resolve the best install
for a major.minor request, find which install owns a given file, or
browse the full inventory.`,
	Example: `  # List every discovered install
  dotnetpath list

  # Best 64-bit match for .NET 8.0
  dotnetpath resolve 8.0 --bitness 64

  # Which install owns this assembly?
  dotnetpath which /usr/share/dotnet/shared/Microsoft.NETCore.App/8.0.3/System.Text.Json.dll

  # Check discovery health
  dotnetpath doctor

  See Also: dotnetpath init, dotnetpath doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DOTNETPATH_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces configuration load errors before any command runs.
func checkConfig(cmd *cobra.Command, _ []string) error {
	// Skip for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	return nil
}

// currentConfig returns the loaded configuration, falling back to
// defaults when initialization has not run (e.g. in tests).
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.Default()
}

// newScanner builds a scanner over the real environment from the
// loaded configuration. A manifest problem degrades to a warning; the
// pinned roots that did parse are still honored.
func newScanner(logger *slog.Logger) *scan.Scanner {
	cfg := currentConfig()
	opts, err := cfg.ScanOptions()
	if err != nil {
		logger.Warn("ignoring pinned-roots manifest", "error", err)
	}
	opts.Logger = logger
	return scan.NewScanner(hostenv.OS{Launcher: cfg.Launcher}, opts)
}

// buildProvider runs a full discovery pass and indexes the result.
func buildProvider(cmd *cobra.Command) *framework.PathProvider {
	logger := logging.FromContext(cmd.Context())
	scanner := newScanner(logger)
	return framework.NewPathProvider(scanner.Installs(), currentConfig().PrimaryFamily)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
