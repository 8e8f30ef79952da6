package platform

import (
	"runtime"
	"strings"
)

// Detect maps an OS family identifier to a Platform. Matching is
// case-insensitive. When the family is not recognised, osName is checked
// for a BSD marker and such hosts are treated as Linux.
func Detect(family, osName string) Platform {
	switch strings.ToLower(family) {
	case "darwin", "macos":
		return MacOS
	case "linux":
		return Linux
	case "windows":
		return Windows
	}

	if strings.Contains(strings.ToLower(osName), "bsd") {
		return Linux
	}

	return Unknown
}

// Current detects the platform of the running process.
func Current() Platform {
	return Detect(runtime.GOOS, runtime.GOOS)
}
