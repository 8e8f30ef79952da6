// Package doctor diagnoses whether the host can build and install the
// extension without running the build.
//
// Each [Check] inspects one thing (the platform, one required tool, the PHP
// runtime, the extension directory) and reports a [CheckResult] with a
// [Severity]. A [Runner] executes checks in registration order and
// aggregates them into a [DoctorReport]. [Standard] returns the checks the
// doctor command runs.
package doctor
