package config

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrEmptyVarName indicates an environment variable name is blank.
	ErrEmptyVarName = errors.New("environment variable name must not be empty")

	// ErrLauncherIsPath indicates the launcher override contains path
	// separators; it must be a bare file name.
	ErrLauncherIsPath = errors.New("launcher must be a file name, not a path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if strings.TrimSpace(cfg.SearchPathVar) == "" {
		errs = append(errs, errors.Wrap(ErrEmptyVarName, "search_path_var"))
	}
	for _, v := range cfg.RootVars {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, errors.Wrap(ErrEmptyVarName, "root_vars"))
			break
		}
	}

	if strings.ContainsAny(cfg.Launcher, `/\`) {
		errs = append(errs, ErrLauncherIsPath)
	}

	return errs
}
