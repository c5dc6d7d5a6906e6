package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hackerago/dotnetpath/internal/config"
	"github.com/Hackerago/dotnetpath/internal/doctor"
	"github.com/Hackerago/dotnetpath/internal/errors"
	"github.com/Hackerago/dotnetpath/internal/hostenv"
	"github.com/Hackerago/dotnetpath/internal/logging"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose runtime discovery issues",
	Long: `Run diagnostic checks on runtime discovery.

Validates the discovery environment variables, confirms install roots
hold a readable launcher, verifies the shared-framework layout, and
checks the pinned-roots manifest.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.New("flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()
	scanner := newScanner(logging.FromContext(cmd.Context()))

	runner := doctor.NewRunner()
	runner.AddCheck(&doctor.RootVarCheck{
		Env:  hostenv.OS{Launcher: cfg.Launcher},
		Vars: cfg.RootVars,
	})
	runner.AddCheck(&doctor.LauncherCheck{Scanner: scanner})
	runner.AddCheck(&doctor.SharedLayoutCheck{Scanner: scanner})
	runner.AddCheck(&doctor.IndexCheck{
		Scanner:       scanner,
		PrimaryFamily: cfg.PrimaryFamily,
	})
	runner.AddCheck(&doctor.ManifestCheck{Path: config.ManifestPath()})

	report := runner.Run()

	if err := outputDoctorReport(report); err != nil {
		return err
	}

	// Determine exit code based on results
	if report.HasErrors() {
		return errDoctorErrors
	}
	if report.HasWarnings() {
		return errDoctorWarnings
	}
	return nil
}

func outputDoctorReport(report *doctor.Report) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		return outputDoctorJSON(report)
	}

	return outputDoctorText(report)
}

func outputDoctorJSON(report *doctor.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func outputDoctorText(report *doctor.Report) error {
	// In normal mode, show only errors and warnings
	// In verbose mode, show all checks
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		icon := statusIcon(result.Status)
		fmt.Printf("%s [%s] %s: %s\n", icon, result.Category, result.Name, result.Message)

		if showAll {
			for k, v := range result.Details {
				fmt.Printf("  %s: %v\n", k, v)
			}
		}

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Printf("  hint: %s\n", result.FixHint)
		}
	}

	// Print summary
	if hasOutput || showAll {
		fmt.Println()
	}

	fmt.Printf("Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

// errDoctorWarnings carries exit code 1 without a printed error.
var errDoctorWarnings = errors.NewExitError(nil, errors.ExitUser)

// errDoctorErrors carries exit code 2 without a printed error.
var errDoctorErrors = errors.NewExitError(nil, errors.ExitSystem)
