// Package build drives one build-and-install run of a native PHP extension.
//
// The [Orchestrator] moves through a fixed sequence of states:
//
//	Init -> Detecting -> CheckingTools -> Building -> Installing -> Done
//
// Any state after Init may move to Failed instead, which ends the run. Each
// step is delegated to a collaborator (platform detection, toolchain
// verification, the command pipeline, the installer) so tests can
// substitute fakes for every one of them.
package build
