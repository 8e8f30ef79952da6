// Package instructions renders the static text shown after a build: the
// post-installation checklist on success and a per-platform troubleshooting
// checklist on failure.
//
// Both blocks are pure functions of the platform and extension name. They
// never inspect the host.
package instructions
