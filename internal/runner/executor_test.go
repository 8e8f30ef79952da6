package runner

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/extbuild/internal/platform"
)

func TestNewShellExecutor(t *testing.T) {
	if e := NewShellExecutor(platform.Windows); e.Shell != "cmd" || e.Flag != "/C" {
		t.Errorf("Windows executor = %+v", e)
	}
	if e := NewShellExecutor(platform.Linux); e.Shell != "sh" || e.Flag != "-c" {
		t.Errorf("Linux executor = %+v", e)
	}
}

func TestShellExecutor_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	e := NewShellExecutor(platform.Linux)

	code, out, err := e.Execute(t.Context(), "ls; echo oops >&2", dir)
	if err != nil || code != 0 {
		t.Fatalf("Execute() = %d, %v", code, err)
	}
	if !strings.Contains(string(out), "marker") || !strings.Contains(string(out), "oops") {
		t.Errorf("combined output = %q", out)
	}

	code, _, err = e.Execute(t.Context(), "exit 3", dir)
	if err != nil || code != 3 {
		t.Errorf("Execute(exit 3) = %d, %v", code, err)
	}
}

func TestShellExecutor_MissingShell(t *testing.T) {
	e := &ShellExecutor{Shell: "extbuild-no-such-shell", Flag: "-c"}
	if _, _, err := e.Execute(t.Context(), "true", t.TempDir()); err == nil {
		t.Error("Execute() with missing shell should return an error")
	}
}
