//go:build windows

package runner

import (
	"os/exec"
	"syscall"
)

// setCommandLine passes the command to cmd.exe verbatim. The default
// argument escaping would quote the whole command and cmd.exe does not
// unquote it.
func setCommandLine(cmd *exec.Cmd, shell, flag, command string) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: shell + " " + flag + " " + command}
}
