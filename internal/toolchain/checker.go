package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/logging"
	"github.com/thoreinstein/extbuild/internal/paths"
	"github.com/thoreinstein/extbuild/internal/platform"
)

// MissingToolError reports the first required tool that could not be resolved.
type MissingToolError struct {
	Name    string
	Purpose string
}

// Error implements error.
func (e *MissingToolError) Error() string {
	return fmt.Sprintf("Required tool '%s' not found. %s", e.Name, e.Purpose)
}

// Unwrap lets errors.Is match exterrors.ErrMissingTool.
func (e *MissingToolError) Unwrap() error {
	return exterrors.ErrMissingTool
}

// Xcode install locations checked by the macOS advisory.
var xcodeDirs = []string{
	"/Library/Developer/CommandLineTools",
	"/Applications/Xcode.app",
}

// Homebrew prefixes recognised by the macOS advisory.
var homebrewPrefixes = []string{"/opt/homebrew", "/usr/local"}

// Advisory is an informational observation about the build environment.
type Advisory struct {
	// Warning is true when the observation may explain a later failure.
	Warning bool
	Message string
	Hint    string
}

// Checker verifies platform requirements through a Locator.
type Checker struct {
	locator   Locator
	dirExists func(string) bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithDirExists replaces the directory probe used by advisories.
func WithDirExists(fn func(string) bool) Option {
	return func(c *Checker) {
		c.dirExists = fn
	}
}

// NewChecker creates a Checker that resolves tools with locator.
func NewChecker(locator Locator, opts ...Option) *Checker {
	c := &Checker{
		locator:   locator,
		dirExists: paths.DirExists,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Verify checks every requirement of p in order and returns a
// *MissingToolError for the first one that cannot be resolved.
func (c *Checker) Verify(ctx context.Context, p platform.Platform) error {
	if !p.Supported() {
		return errors.Wrapf(exterrors.ErrUnsupportedPlatform, "%s", p)
	}

	logger := logging.FromContext(ctx)
	for _, req := range Requirements(p) {
		path, err := c.locator.Locate(ctx, req.Name)
		if err != nil {
			logger.Debug("tool lookup failed", "tool", req.Name, "error", err)
			return &MissingToolError{Name: req.Name, Purpose: req.Purpose}
		}
		logger.Debug("found tool", "tool", req.Name, "path", path)
	}
	return nil
}

// Advisories returns best-effort environment notes for p. Lookup failures
// are ignored.
func (c *Checker) Advisories(ctx context.Context, p platform.Platform) []Advisory {
	if p != platform.MacOS {
		return nil
	}

	var out []Advisory

	hasXcode := false
	for _, dir := range xcodeDirs {
		if c.dirExists(dir) {
			hasXcode = true
			break
		}
	}
	if !hasXcode {
		out = append(out, Advisory{
			Warning: true,
			Message: "Xcode command line tools may not be installed.",
			Hint:    "xcode-select --install",
		})
	}

	if phpConfig, err := c.locator.Locate(ctx, "php-config"); err == nil {
		for _, prefix := range homebrewPrefixes {
			if strings.Contains(phpConfig, prefix) {
				out = append(out, Advisory{
					Message: "Detected Homebrew PHP installation: " + phpConfig,
				})
				break
			}
		}
	}

	return out
}

// Report logs each advisory at the matching level.
func Report(ctx context.Context, advisories []Advisory) {
	logger := logging.FromContext(ctx)
	for _, a := range advisories {
		attrs := []any{}
		if a.Hint != "" {
			attrs = append(attrs, "run", a.Hint)
		}
		if a.Warning {
			logger.Warn(a.Message, attrs...)
		} else {
			logger.Info(a.Message, attrs...)
		}
	}
}
