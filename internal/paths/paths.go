package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/extbuild/internal/platform"
)

// AppName is the directory name used under XDG base directories.
const AppName = "extbuild"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrNotDirectory indicates a path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// UserExtensionDirPerm is the mode for a created per-user extension directory.
const UserExtensionDirPerm os.FileMode = 0o755

// Env looks up an environment variable. os.LookupEnv satisfies it.
type Env func(key string) (string, bool)

// HomeVar returns the name of the home directory variable on p.
func HomeVar(p platform.Platform) string {
	if p == platform.Windows {
		return "USERPROFILE"
	}
	return "HOME"
}

// UserHome returns the value of the platform's home variable, or a
// writable default when it is unset or empty.
func UserHome(p platform.Platform, env Env) string {
	if env == nil {
		env = os.LookupEnv
	}
	if home, ok := env(HomeVar(p)); ok && home != "" {
		return home
	}
	if p == platform.Windows {
		return `C:\temp`
	}
	return "/tmp"
}

// UserExtensionDir returns the per-user fallback extension directory:
// <home>/.php/extensions, joined with the platform's separator.
func UserExtensionDir(p platform.Platform, env Env) string {
	return Join(p, UserHome(p, env), ".php", "extensions")
}

// Join joins elements with the separator of p rather than the host.
func Join(p platform.Platform, elem ...string) string {
	if p == platform.Windows {
		cleaned := make([]string, 0, len(elem))
		for i, e := range elem {
			if i > 0 {
				e = strings.Trim(e, `\/`)
			} else {
				e = strings.TrimRight(e, `\/`)
			}
			if e != "" {
				cleaned = append(cleaned, e)
			}
		}
		return strings.Join(cleaned, `\`)
	}
	return filepath.Join(elem...)
}

// EnsureDir creates the directory and any necessary parents with perm.
// It returns ErrNotDirectory when path exists as a file.
func EnsureDir(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.Wrap(ErrNotDirectory, path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "checking %s", path)
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return nil
}

// DirExists returns true if path exists and is a directory.
func DirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists returns true if path exists and is a regular file.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ConfigDir returns the XDG config directory for extbuild.
// On Linux: ~/.config/extbuild
// On macOS: ~/Library/Application Support/extbuild
// On Windows: %LOCALAPPDATA%\extbuild
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ResolvePackageRoot returns root as an absolute path, or the current
// working directory when root is empty.
func ResolvePackageRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolving working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, "resolving package root %q", root)
	}
	if !DirExists(abs) {
		return "", errors.Wrapf(ErrNotDirectory, "package root %s", abs)
	}
	return abs, nil
}
