package toolchain

import "github.com/thoreinstein/extbuild/internal/platform"

// Requirement describes an external tool the build invokes.
type Requirement struct {
	// Name is the binary looked up on PATH.
	Name string `json:"name" yaml:"name"`

	// Purpose tells the user what the tool is for and how to get it.
	Purpose string `json:"purpose" yaml:"purpose"`
}

var requirements = map[platform.Platform][]Requirement{
	platform.MacOS: {
		{Name: "python3", Purpose: "Python"},
		{Name: "cargo", Purpose: "Cargo (Rust build tools)"},
		{Name: "phpize", Purpose: "PHP development tools (install with: brew install php)"},
		{Name: "php-config", Purpose: "PHP configuration tool"},
		{Name: "make", Purpose: "Build tools (install Xcode command line tools)"},
		{Name: "clang", Purpose: "C compiler (install Xcode command line tools)"},
	},
	platform.Linux: {
		{Name: "python3", Purpose: "Python"},
		{Name: "cargo", Purpose: "Cargo (Rust build tools)"},
		{Name: "phpize", Purpose: "PHP development package (install with: apt-get install php-dev or yum install php-devel)"},
		{Name: "php-config", Purpose: "PHP configuration tool"},
		{Name: "make", Purpose: "Build tools (install with: apt-get install build-essential)"},
		{Name: "gcc", Purpose: "C compiler"},
	},
	platform.Windows: {
		{Name: "phpize", Purpose: "PHP development tools"},
		{Name: "nmake", Purpose: "Microsoft build tools (Visual Studio required)"},
	},
}

// Requirements returns the ordered tool list for p. The returned slice is a
// copy. Unsupported platforms have no requirements.
func Requirements(p platform.Platform) []Requirement {
	reqs := requirements[p]
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	return out
}
