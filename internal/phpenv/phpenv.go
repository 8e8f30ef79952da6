// Package phpenv queries the host PHP runtime: its version, whether an
// extension is already loaded, and where it loads extensions from.
package phpenv

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/extbuild/internal/logging"
)

// Querier runs a program and returns its trimmed stdout.
type Querier interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecQuerier runs programs with os/exec.
type ExecQuerier struct{}

var _ Querier = ExecQuerier{}

// Output implements Querier.
func (ExecQuerier) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.Wrapf(err, "%s: %s", name, msg)
		}
		return "", errors.Wrap(err, name)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// DirSource names where an extension directory came from.
type DirSource string

// Extension directory sources, in lookup order.
const (
	SourcePHPConfig DirSource = "php-config"
	SourceINI       DirSource = "ini"
	SourceCompiled  DirSource = "compiled-in"
	SourceDefault   DirSource = "configured default"
)

// Runtime queries a PHP installation.
type Runtime struct {
	// PHP is the php CLI binary.
	PHP string
	// PHPConfig is the php-config binary.
	PHPConfig string
	// DefaultExtensionDir is used when every query comes back empty.
	DefaultExtensionDir string

	q Querier
}

// New creates a Runtime that runs php and phpConfig through q. A nil q uses
// ExecQuerier.
func New(php, phpConfig string, q Querier) *Runtime {
	if q == nil {
		q = ExecQuerier{}
	}
	return &Runtime{PHP: php, PHPConfig: phpConfig, q: q}
}

func (r *Runtime) eval(ctx context.Context, code string) (string, error) {
	return r.q.Output(ctx, r.PHP, "-r", code)
}

// Version returns PHP_VERSION.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	v, err := r.eval(ctx, "echo PHP_VERSION;")
	if err != nil {
		return "", errors.Wrap(err, "reading PHP version")
	}
	if v == "" {
		return "", errors.New("reading PHP version: empty output")
	}
	return v, nil
}

// ExtensionLoaded reports whether PHP already loads the named extension.
// PHP registers extensions with underscores, so valkey-glide is checked as
// both valkey-glide and valkey_glide.
func (r *Runtime) ExtensionLoaded(ctx context.Context, name string) (bool, error) {
	candidates := []string{name}
	if alt := strings.ReplaceAll(name, "-", "_"); alt != name {
		candidates = append(candidates, alt)
	}

	for _, candidate := range candidates {
		code := fmt.Sprintf("echo extension_loaded(%s) ? '1' : '0';", phpString(candidate))
		out, err := r.eval(ctx, code)
		if err != nil {
			return false, errors.Wrapf(err, "checking extension %s", candidate)
		}
		if out == "1" {
			return true, nil
		}
	}
	return false, nil
}

// ExtensionDir resolves the directory PHP loads extensions from:
// php-config --extension-dir, then ini_get("extension_dir"), then the
// compiled-in PHP_EXTENSION_DIR, then DefaultExtensionDir. It returns an
// empty string when none of them yields a value.
func (r *Runtime) ExtensionDir(ctx context.Context) (string, DirSource) {
	logger := logging.FromContext(ctx)

	lookups := []struct {
		source DirSource
		query  func() (string, error)
	}{
		{SourcePHPConfig, func() (string, error) { return r.q.Output(ctx, r.PHPConfig, "--extension-dir") }},
		{SourceINI, func() (string, error) { return r.eval(ctx, `echo ini_get("extension_dir");`) }},
		{SourceCompiled, func() (string, error) { return r.eval(ctx, "echo PHP_EXTENSION_DIR;") }},
	}

	for _, l := range lookups {
		dir, err := l.query()
		if err != nil {
			logger.Debug("extension dir query failed", "source", string(l.source), "error", err)
			continue
		}
		if dir != "" {
			return dir, l.source
		}
	}

	if r.DefaultExtensionDir != "" {
		return r.DefaultExtensionDir, SourceDefault
	}
	return "", ""
}

// phpString quotes s as a single-quoted PHP string literal.
func phpString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
