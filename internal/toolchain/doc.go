// Package toolchain verifies that the external build tools for a platform
// are resolvable before any build command runs.
//
// Each platform owns an ordered list of [Requirement]s. [Checker.Verify]
// walks the list in order and stops at the first tool the [Locator] cannot
// resolve, returning a [*MissingToolError]. It does not collect every missing
// tool; the first failure names the package the user should install next.
//
// Locators are per platform: POSIX hosts ask `which`, Windows asks `where`.
// Tests substitute the Locator with a fake from the mocks package.
//
// [Checker.Advisories] reports environment observations (for example a
// missing Xcode install on macOS) that never change the outcome of Verify.
package toolchain
