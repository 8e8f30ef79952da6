package platform

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Platform identifies a supported build host.
type Platform string

// Supported build platforms.
const (
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
	Windows Platform = "windows"
	Unknown Platform = "unknown"
)

// ErrInvalidPlatformName is returned by Parse for names outside the closed set.
var ErrInvalidPlatformName = errors.New("invalid platform name")

// All returns the supported platforms in display order. Unknown is not included.
func All() []Platform {
	return []Platform{MacOS, Linux, Windows}
}

// Names returns the string form of All.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = string(p)
	}
	return names
}

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// Supported reports whether a build plan exists for p.
func (p Platform) Supported() bool {
	switch p {
	case MacOS, Linux, Windows:
		return true
	default:
		return false
	}
}

// POSIX reports whether p uses a POSIX shell and toolchain.
func (p Platform) POSIX() bool {
	return p == MacOS || p == Linux
}

// DisplayName returns the human-readable platform name.
func (p Platform) DisplayName() string {
	switch p {
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	default:
		return "unknown platform"
	}
}

// Parse converts a user-supplied name into a Platform.
// "darwin" is accepted as an alias for macos.
func Parse(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "macos", "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	case "windows":
		return Windows, nil
	default:
		return Unknown, errors.Wrapf(ErrInvalidPlatformName, "%q (valid: %s)",
			name, strings.Join(Names(), ", "))
	}
}
