// Package install places a built extension where PHP can load it.
//
// [Locate] finds the artifact the build produced. [Installer.Install] then
// tries an ordered list of [Strategy] values and stops at the first one
// that succeeds:
//
//  1. [DirectCopy] into PHP's extension directory
//  2. [ElevatedCopy] through sudo (Linux only)
//  3. [UserFallback] into ~/.php/extensions, created on demand
//
// A missing artifact fails with [*ArtifactNotFoundError] before any strategy
// runs. When every strategy fails the result is an [*InstallFailure] that
// lists each attempt. php.ini is never edited; the fallback placement is
// flagged so the caller can tell the user which extension_dir to set.
package install
