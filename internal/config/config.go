// Package config provides configuration management for dotnetpath using Viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	dnperrors "github.com/Hackerago/dotnetpath/internal/errors"
	"github.com/Hackerago/dotnetpath/internal/scan"
)

// AppName is the application name used for config file naming.
const AppName = "dotnetpath"

// Config is the tool's own configuration. Every field has a default
// that reproduces stock discovery behavior; the file exists for
// machines with unusual layouts.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// SearchPathVar is the path-list variable scanned for install
	// roots, normally PATH.
	SearchPathVar string `mapstructure:"search_path_var" yaml:"search_path_var"`

	// RootVars are the runtime root override variables, normally
	// DOTNET_ROOT and DOTNET_ROOT(x86).
	RootVars []string `mapstructure:"root_vars" yaml:"root_vars"`

	// ExtraRoots are install roots to probe in addition to the
	// environment and the pinned-roots manifest.
	ExtraRoots []string `mapstructure:"extra_roots" yaml:"extra_roots"`

	// Launcher overrides the launcher executable name.
	Launcher string `mapstructure:"launcher" yaml:"launcher"`

	// PrimaryFamily overrides the framework family treated as the
	// core runtime.
	PrimaryFamily string `mapstructure:"primary_family" yaml:"primary_family"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("DOTNETPATH")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("search_path_var", scan.DefaultSearchPathVar)
	viper.SetDefault("root_vars", scan.DefaultRootVars)
}

// Dir returns the directory holding the config file and the
// pinned-roots manifest.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:       1,
		SearchPathVar: scan.DefaultSearchPathVar,
		RootVars:      scan.DefaultRootVars,
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back
// to defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// An explicitly requested file must exist.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errs[0], dnperrors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// ScanOptions translates the configuration into scanner options,
// appending the pinned roots from the manifest (if any) after the
// configured extra roots. Manifest problems are returned so the CLI
// can surface them; the returned options are still usable.
func (c *Config) ScanOptions() (scan.Options, error) {
	opts := scan.Options{
		SearchPathVar: c.SearchPathVar,
		RootVars:      c.RootVars,
		ExtraRoots:    append([]string(nil), c.ExtraRoots...),
	}

	pinned, err := LoadManifest(ManifestPath())
	opts.ExtraRoots = append(opts.ExtraRoots, pinned...)
	return opts, err
}
