package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hackerago/dotnetpath/internal/config"
	"github.com/Hackerago/dotnetpath/internal/framework"
	"github.com/Hackerago/dotnetpath/internal/hostenv"
	"github.com/Hackerago/dotnetpath/internal/scan"
)

// RootVarCheck verifies that the configured runtime root variables,
// when set, point at existing directories. An unset variable is
// normal; a set variable naming a missing directory is the classic
// misconfiguration this tool exists to diagnose.
type RootVarCheck struct {
	Env  hostenv.Environment
	Vars []string
}

var _ Check = (*RootVarCheck)(nil)

// Name returns the unique identifier for this check.
func (c *RootVarCheck) Name() string {
	return "root-variables"
}

// Category returns the grouping for this check.
func (c *RootVarCheck) Category() string {
	return "environment"
}

// Run executes the root-variable diagnostic check.
func (c *RootVarCheck) Run() *CheckResult {
	details := make(map[string]any)
	var missing []string

	for _, name := range c.Vars {
		val := c.Env.Getenv(name)
		if val == "" {
			details[name] = "unset"
			continue
		}
		details[name] = val
		for _, dir := range filepath.SplitList(val) {
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				missing = append(missing, fmt.Sprintf("%s -> %s", name, dir))
			}
		}
	}

	if len(missing) > 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%d root variable path(s) do not exist", len(missing)),
			Details:  map[string]any{"missing": missing},
			FixHint:  "Unset the variable or point it at an existing install root",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "root variables are consistent",
		Details:  details,
	}
}

// LauncherCheck reports the install roots that survived candidate
// filtering, i.e. those whose launcher exists and sniffs as a PE
// image.
type LauncherCheck struct {
	Scanner *scan.Scanner
}

var _ Check = (*LauncherCheck)(nil)

// Name returns the unique identifier for this check.
func (c *LauncherCheck) Name() string {
	return "launchers"
}

// Category returns the grouping for this check.
func (c *LauncherCheck) Category() string {
	return "roots"
}

// Run executes the launcher diagnostic check.
func (c *LauncherCheck) Run() *CheckResult {
	candidates := c.Scanner.Candidates()
	if len(candidates) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no install root with a readable launcher was found",
			FixHint:  "Install a runtime or pin its root in " + config.ManifestName,
		}
	}

	details := make(map[string]any, len(candidates))
	for _, cand := range candidates {
		details[cand.Dir] = fmt.Sprintf("%d-bit", cand.Bitness)
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d install root(s) confirmed", len(candidates)),
		Details:  details,
	}
}

// SharedLayoutCheck verifies each confirmed root carries the
// shared-framework layout. A root with a launcher but no shared
// directory contributes nothing to the index.
type SharedLayoutCheck struct {
	Scanner *scan.Scanner
}

var _ Check = (*SharedLayoutCheck)(nil)

// Name returns the unique identifier for this check.
func (c *SharedLayoutCheck) Name() string {
	return "shared-layout"
}

// Category returns the grouping for this check.
func (c *SharedLayoutCheck) Category() string {
	return "roots"
}

// Run executes the shared-layout diagnostic check.
func (c *SharedLayoutCheck) Run() *CheckResult {
	var bare []string
	for _, cand := range c.Scanner.Candidates() {
		shared := filepath.Join(cand.Dir, scan.SharedDirName)
		if info, err := os.Stat(shared); err != nil || !info.IsDir() {
			bare = append(bare, cand.Dir)
		}
	}

	if len(bare) > 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%d confirmed root(s) have no %q directory", len(bare), scan.SharedDirName),
			Details:  map[string]any{"roots": bare},
			FixHint:  "These roots hold a launcher but no shared frameworks; reinstall or unpin them",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "all confirmed roots carry the shared-framework layout",
	}
}

// IndexCheck builds the full index and reports what discovery found.
type IndexCheck struct {
	Scanner       *scan.Scanner
	PrimaryFamily string
}

var _ Check = (*IndexCheck)(nil)

// Name returns the unique identifier for this check.
func (c *IndexCheck) Name() string {
	return "index"
}

// Category returns the grouping for this check.
func (c *IndexCheck) Category() string {
	return "index"
}

// Run executes the index diagnostic check.
func (c *IndexCheck) Run() *CheckResult {
	idx := framework.NewIndex(c.Scanner.Installs(), c.PrimaryFamily)
	if !idx.HasInstalls() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no installed runtime was discovered",
			FixHint:  "Run with -vv to see which candidates were skipped and why",
		}
	}

	primary := 0
	for _, g := range idx.Groups() {
		if g.HasDotNetAppPath {
			primary++
		}
	}

	status := SeverityPass
	msg := fmt.Sprintf("%d install group(s) indexed, %d with the core runtime", len(idx.Groups()), primary)
	if primary == 0 {
		// Auxiliary overlays without a core runtime cannot host an app.
		status = SeverityWarning
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   status,
		Message:  msg,
	}
}

// ManifestCheck validates the pinned-roots manifest when present.
type ManifestCheck struct {
	Path string
}

var _ Check = (*ManifestCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ManifestCheck) Name() string {
	return "roots-manifest"
}

// Category returns the grouping for this check.
func (c *ManifestCheck) Category() string {
	return "config"
}

// Run executes the manifest diagnostic check.
func (c *ManifestCheck) Run() *CheckResult {
	roots, err := config.LoadManifest(c.Path)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  err.Error(),
			FixHint:  "Fix or remove " + c.Path,
		}
	}
	if roots == nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no pinned-roots manifest",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d pinned root(s)", len(roots)),
		Details:  map[string]any{"roots": roots},
	}
}
