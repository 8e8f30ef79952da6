//go:build !windows

package runner

import "os/exec"

func setCommandLine(*exec.Cmd, string, string, string) {}
