package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/thoreinstein/extbuild/internal/instructions"
	"github.com/thoreinstein/extbuild/internal/paths"
	"github.com/thoreinstein/extbuild/internal/phpenv"
	"github.com/thoreinstein/extbuild/internal/platform"
	"github.com/thoreinstein/extbuild/internal/toolchain"
)

// Check categories.
const (
	CategoryPlatform  = "platform"
	CategoryToolchain = "toolchain"
	CategoryPHP       = "php"
	CategoryInstall   = "install"
)

// Runtime is the subset of phpenv.Runtime the checks query.
type Runtime interface {
	Version(ctx context.Context) (string, error)
	ExtensionLoaded(ctx context.Context, name string) (bool, error)
	ExtensionDir(ctx context.Context) (string, phpenv.DirSource)
}

// Standard returns the checks for p in the order they are reported.
func Standard(p platform.Platform, locator toolchain.Locator, checker *toolchain.Checker, rt Runtime, ext, userDir string) []Check {
	checks := []Check{NewPlatformCheck(p)}
	for _, req := range toolchain.Requirements(p) {
		checks = append(checks, NewToolCheck(req, locator))
	}
	if p == platform.MacOS {
		checks = append(checks, NewAdvisoryCheck(p, checker))
	}
	return append(checks,
		NewPHPVersionCheck(rt),
		NewExtensionLoadedCheck(rt, ext),
		NewExtensionDirCheck(rt, userDir),
	)
}

// PlatformCheck verifies the host is a platform the build supports.
type PlatformCheck struct {
	platform platform.Platform
}

var _ Check = (*PlatformCheck)(nil)

// NewPlatformCheck creates a platform support check.
func NewPlatformCheck(p platform.Platform) *PlatformCheck {
	return &PlatformCheck{platform: p}
}

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string { return "platform" }

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string { return CategoryPlatform }

// Run executes the check.
func (c *PlatformCheck) Run(_ context.Context) *CheckResult {
	details := map[string]any{"platform": c.platform.String()}
	if !c.platform.Supported() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "unsupported platform: " + c.platform.String(),
			Details:  details,
			FixHint:  instructions.Hints(c.platform)[0],
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  c.platform.DisplayName() + " is supported",
		Details:  details,
	}
}

// ToolCheck verifies one required build tool is on PATH.
type ToolCheck struct {
	req     toolchain.Requirement
	locator toolchain.Locator
}

var _ Check = (*ToolCheck)(nil)

// NewToolCheck creates a check for req.
func NewToolCheck(req toolchain.Requirement, locator toolchain.Locator) *ToolCheck {
	return &ToolCheck{req: req, locator: locator}
}

// Name returns the unique identifier for this check.
func (c *ToolCheck) Name() string { return "tool:" + c.req.Name }

// Category returns the grouping for this check.
func (c *ToolCheck) Category() string { return CategoryToolchain }

// Run executes the check.
func (c *ToolCheck) Run(ctx context.Context) *CheckResult {
	path, err := c.locator.Locate(ctx, c.req.Name)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("%s not found", c.req.Name),
			Details:  map[string]any{"purpose": c.req.Purpose},
			FixHint:  c.req.Purpose,
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  path,
		Details:  map[string]any{"path": path},
	}
}

// AdvisoryCheck reports the checker's non-fatal environment notes.
type AdvisoryCheck struct {
	platform platform.Platform
	checker  *toolchain.Checker
}

var _ Check = (*AdvisoryCheck)(nil)

// NewAdvisoryCheck creates an advisory check for p.
func NewAdvisoryCheck(p platform.Platform, checker *toolchain.Checker) *AdvisoryCheck {
	return &AdvisoryCheck{platform: p, checker: checker}
}

// Name returns the unique identifier for this check.
func (c *AdvisoryCheck) Name() string { return "environment" }

// Category returns the grouping for this check.
func (c *AdvisoryCheck) Category() string { return CategoryToolchain }

// Run executes the check. Warnings outrank notes; the first warning's hint
// becomes the fix hint.
func (c *AdvisoryCheck) Run(ctx context.Context) *CheckResult {
	advisories := c.checker.Advisories(ctx, c.platform)

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "no advisories",
	}
	if len(advisories) == 0 {
		return result
	}

	messages := make([]string, len(advisories))
	result.Status = SeverityInfo
	for i, a := range advisories {
		messages[i] = a.Message
		if a.Warning && result.Status != SeverityWarning {
			result.Status = SeverityWarning
			result.Message = a.Message
			result.FixHint = a.Hint
		}
	}
	if result.Status == SeverityInfo {
		result.Message = messages[0]
	}
	result.Details = map[string]any{"advisories": messages}
	return result
}

// PHPVersionCheck verifies the php binary runs.
type PHPVersionCheck struct {
	rt Runtime
}

var _ Check = (*PHPVersionCheck)(nil)

// NewPHPVersionCheck creates a PHP version check.
func NewPHPVersionCheck(rt Runtime) *PHPVersionCheck {
	return &PHPVersionCheck{rt: rt}
}

// Name returns the unique identifier for this check.
func (c *PHPVersionCheck) Name() string { return "php-version" }

// Category returns the grouping for this check.
func (c *PHPVersionCheck) Category() string { return CategoryPHP }

// Run executes the check.
func (c *PHPVersionCheck) Run(ctx context.Context) *CheckResult {
	version, err := c.rt.Version(ctx)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "could not run php: " + err.Error(),
			FixHint:  "check the php_binary setting or your PATH",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "PHP " + version,
		Details:  map[string]any{"version": version},
	}
}

// ExtensionLoadedCheck reports whether PHP already loads the extension, in
// which case a build run is skipped.
type ExtensionLoadedCheck struct {
	rt  Runtime
	ext string
}

var _ Check = (*ExtensionLoadedCheck)(nil)

// NewExtensionLoadedCheck creates a check for ext.
func NewExtensionLoadedCheck(rt Runtime, ext string) *ExtensionLoadedCheck {
	return &ExtensionLoadedCheck{rt: rt, ext: ext}
}

// Name returns the unique identifier for this check.
func (c *ExtensionLoadedCheck) Name() string { return "extension-loaded" }

// Category returns the grouping for this check.
func (c *ExtensionLoadedCheck) Category() string { return CategoryPHP }

// Run executes the check.
func (c *ExtensionLoadedCheck) Run(ctx context.Context) *CheckResult {
	loaded, err := c.rt.ExtensionLoaded(ctx, c.ext)
	switch {
	case err != nil:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "could not query loaded extensions: " + err.Error(),
		}
	case loaded:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  c.ext + " is already loaded; a build run will be skipped",
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  c.ext + " is not loaded yet",
		}
	}
}

// ExtensionDirCheck resolves PHP's extension directory and reports whether
// a direct copy into it would succeed.
type ExtensionDirCheck struct {
	rt      Runtime
	userDir string
}

var _ Check = (*ExtensionDirCheck)(nil)

// NewExtensionDirCheck creates an extension directory check. userDir is the
// fallback named in hints.
func NewExtensionDirCheck(rt Runtime, userDir string) *ExtensionDirCheck {
	return &ExtensionDirCheck{rt: rt, userDir: userDir}
}

// Name returns the unique identifier for this check.
func (c *ExtensionDirCheck) Name() string { return "extension-dir" }

// Category returns the grouping for this check.
func (c *ExtensionDirCheck) Category() string { return CategoryInstall }

// Run executes the check.
func (c *ExtensionDirCheck) Run(ctx context.Context) *CheckResult {
	dir, source := c.rt.ExtensionDir(ctx)
	if dir == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "extension directory could not be determined",
			Details:  map[string]any{"fallback": c.userDir},
			FixHint:  "set extension_dir in extbuild.yaml; installs will use " + c.userDir,
		}
	}

	details := map[string]any{
		"dir":      dir,
		"source":   string(source),
		"fallback": c.userDir,
	}

	if !paths.DirExists(dir) {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  dir + " does not exist",
			Details:  details,
			FixHint:  "installs will fall back to " + c.userDir,
		}
	}

	if !writable(dir) {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  dir + " is not writable by the current user",
			Details:  details,
			FixHint:  "installs will need elevation or fall back to " + c.userDir,
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  dir,
		Details:  details,
	}
}

// writable probes dir by creating and removing a temp file.
func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".extbuild-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
