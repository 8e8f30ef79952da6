// Package platform maps the host operating system onto the closed set of
// build platforms extbuild knows how to drive.
//
// # Platforms
//
//   - [MacOS]: Xcode command line tools, Homebrew PHP, .so modules
//   - [Linux]: gcc and make; BSD hosts are treated as Linux because their
//     toolchains accept the same command set
//   - [Windows]: Visual Studio nmake, .dll modules
//   - [Unknown]: anything else; the build reports an unsupported platform
//
// # Detection
//
// [Detect] is pure and never fails:
//
//	platform.Detect("Darwin", "Darwin")     // MacOS
//	platform.Detect("unix", "FreeBSD")      // Linux
//	platform.Detect("plan9", "plan9")       // Unknown
//
// [Current] feeds runtime.GOOS to [Detect].
package platform
