package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.SearchPathVar != "PATH" {
		t.Errorf("SearchPathVar = %q, want PATH", cfg.SearchPathVar)
	}
	if len(cfg.RootVars) != 2 {
		t.Errorf("RootVars = %v, want the two runtime root variables", cfg.RootVars)
	}
	if errs := Validate(cfg); len(errs) > 0 {
		t.Errorf("default config should validate, got %v", errs)
	}
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "version zero", mutate: func(c *Config) { c.Version = 0 }, wantErr: ErrVersionTooLow},
		{name: "blank search path var", mutate: func(c *Config) { c.SearchPathVar = "  " }, wantErr: ErrEmptyVarName},
		{name: "blank root var", mutate: func(c *Config) { c.RootVars = []string{"DOTNET_ROOT", ""} }, wantErr: ErrEmptyVarName},
		{name: "launcher with path", mutate: func(c *Config) { c.Launcher = "bin/dotnet" }, wantErr: ErrLauncherIsPath},
		{name: "launcher bare name ok", mutate: func(c *Config) { c.Launcher = "dotnet" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			cfg.RootVars = append([]string(nil), valid.RootVars...)
			tt.mutate(&cfg)

			errs := Validate(&cfg)
			if tt.wantErr == nil {
				if len(errs) > 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			found := false
			for _, err := range errs {
				if errors.Is(err, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want exactly one error", errs)
	}
}

func TestLoadManifest(t *testing.T) {
	t.Run("missing file yields no roots", func(t *testing.T) {
		roots, err := LoadManifest(filepath.Join(t.TempDir(), ManifestName))
		if err != nil {
			t.Fatalf("LoadManifest() error = %v", err)
		}
		if roots != nil {
			t.Errorf("LoadManifest() = %v, want nil", roots)
		}
	})

	t.Run("valid manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ManifestName)
		content := "roots = ['/opt/dotnet-preview', '/srv/runtimes/dotnet']\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		roots, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("LoadManifest() error = %v", err)
		}
		if len(roots) != 2 || roots[0] != "/opt/dotnet-preview" {
			t.Errorf("LoadManifest() = %v", roots)
		}
	})

	t.Run("malformed manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ManifestName)
		if err := os.WriteFile(path, []byte("roots = [unterminated"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadManifest(path); err == nil {
			t.Error("LoadManifest() should report a parse error")
		}
	})
}

func TestScanOptionsMapping(t *testing.T) {
	cfg := &Config{
		Version:       1,
		SearchPathVar: "MY_PATH",
		RootVars:      []string{"MY_ROOT"},
		ExtraRoots:    []string{"/opt/pinned"},
	}

	opts, _ := cfg.ScanOptions()
	if opts.SearchPathVar != "MY_PATH" {
		t.Errorf("SearchPathVar = %q, want MY_PATH", opts.SearchPathVar)
	}
	if len(opts.RootVars) != 1 || opts.RootVars[0] != "MY_ROOT" {
		t.Errorf("RootVars = %v, want [MY_ROOT]", opts.RootVars)
	}
	if len(opts.ExtraRoots) < 1 || opts.ExtraRoots[0] != "/opt/pinned" {
		t.Errorf("ExtraRoots = %v, want /opt/pinned first", opts.ExtraRoots)
	}
}
