// Package paths provides cross-platform path resolution for extbuild.
//
// # Home Directory
//
// The per-user extension directory is derived from the platform's home
// variable, not from os.UserHomeDir, so the result follows what the user's
// shell sees:
//
//	| Platform     | Variable      | Default  |
//	|--------------|---------------|----------|
//	| macOS, Linux | HOME          | /tmp     |
//	| Windows      | USERPROFILE   | C:\temp  |
//
// # XDG Base Directory Compliance
//
// Configuration search paths wrap github.com/adrg/xdg, so extbuild.yaml is
// looked up under ~/.config/extbuild on Linux and the platform equivalent
// elsewhere.
package paths
