package install

import (
	"path/filepath"
	"strings"

	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/paths"
	"github.com/thoreinstein/extbuild/internal/platform"
)

// ArtifactNotFoundError reports that the build produced no module at any
// expected path.
type ArtifactNotFoundError struct {
	// Expected lists every path that was checked, in order.
	Expected []string
}

// Error implements error. The last expected path is the one named, matching
// the final location that was checked.
func (e *ArtifactNotFoundError) Error() string {
	if len(e.Expected) == 0 {
		return "Built extension not found"
	}
	return "Built extension not found: " + e.Expected[len(e.Expected)-1]
}

// Unwrap lets errors.Is match exterrors.ErrArtifactNotFound.
func (e *ArtifactNotFoundError) Unwrap() error {
	return exterrors.ErrArtifactNotFound
}

// FileName returns the module file name for ext on p.
func FileName(p platform.Platform, ext string) string {
	if p == platform.Windows {
		return ext + ".dll"
	}
	return ext + ".so"
}

// ExpectedPaths returns where the build leaves the module, in lookup order.
// Windows release builds land in Release/ but some toolchains use modules/.
func ExpectedPaths(p platform.Platform, root, ext string) []string {
	name := FileName(p, ext)
	if p == platform.Windows {
		return []string{
			filepath.Join(root, "Release", name),
			filepath.Join(root, "modules", name),
		}
	}
	return []string{filepath.Join(root, "modules", name)}
}

// Locate returns the first expected path that holds a regular file.
func Locate(p platform.Platform, root, ext string) (string, error) {
	expected := ExpectedPaths(p, root, ext)
	for _, path := range expected {
		if paths.FileExists(path) {
			return path, nil
		}
	}
	return "", &ArtifactNotFoundError{Expected: expected}
}

// sipProtected reports whether dir is under a path macOS System Integrity
// Protection guards.
func sipProtected(dir string) bool {
	return strings.HasPrefix(dir, "/usr/lib")
}
