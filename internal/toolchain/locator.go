package toolchain

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/extbuild/internal/platform"
)

// ErrNotFound is returned by a Locator when a tool is not on PATH.
var ErrNotFound = errors.New("not found in PATH")

// Locator resolves a tool name to an executable path.
type Locator interface {
	// Locate returns the resolved path of name, or an error wrapping
	// ErrNotFound when the tool is not available.
	Locate(ctx context.Context, name string) (string, error)
}

// CommandLocator resolves tools by asking the platform's lookup program
// (`which` or `where`). If the lookup program itself is absent it falls back
// to exec.LookPath, which applies the same PATH rules.
type CommandLocator struct {
	// Program is the lookup command, for example "which".
	Program string
}

var _ Locator = (*CommandLocator)(nil)

// NewLocator returns the lookup mechanism native to p.
func NewLocator(p platform.Platform) *CommandLocator {
	if p == platform.Windows {
		return &CommandLocator{Program: "where"}
	}
	return &CommandLocator{Program: "which"}
}

// Locate implements Locator.
func (l *CommandLocator) Locate(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.Wrap(ErrNotFound, "empty tool name")
	}

	if _, err := exec.LookPath(l.Program); err != nil {
		path, lookErr := exec.LookPath(name)
		if lookErr != nil {
			return "", errors.Wrapf(ErrNotFound, "%s", name)
		}
		return path, nil
	}

	cmd := exec.CommandContext(ctx, l.Program, name)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// `where` prints "INFO: Could not find files" to stderr; ignore it.
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(ErrNotFound, "%s", name)
	}

	path := firstLine(stdout.Bytes())
	if path == "" {
		return "", errors.Wrapf(ErrNotFound, "%s", name)
	}
	return path, nil
}

func firstLine(b []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line
		}
	}
	return ""
}
