package runner

import (
	"strings"
)

// CommandSpec is one literal build command.
type CommandSpec struct {
	// Command is the command line passed to the shell.
	Command string `json:"command" yaml:"command"`

	// Dir, when set, pins the command to a directory. Relative values are
	// resolved against the run's working directory. Most specs leave it
	// empty and run in the working directory carried by the pipeline.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Commands builds specs from literal command lines.
func Commands(lines ...string) []CommandSpec {
	specs := make([]CommandSpec, len(lines))
	for i, line := range lines {
		specs[i] = CommandSpec{Command: line}
	}
	return specs
}

// Chdir reports whether s is a change-directory pseudo-step and returns its
// target. The target is the rest of the line verbatim: quotes are not
// interpreted. A leading cmd.exe "/d" switch is dropped.
func (s CommandSpec) Chdir() (string, bool) {
	fields := strings.Fields(s.Command)
	if len(fields) == 0 || fields[0] != "cd" {
		return "", false
	}
	if len(fields) == 1 {
		return "", true
	}
	target := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s.Command), "cd"))
	if len(fields) > 2 && strings.EqualFold(fields[1], "/d") {
		target = strings.TrimSpace(target[len(fields[1]):])
	}
	return target, true
}

// String returns the command line.
func (s CommandSpec) String() string {
	return s.Command
}

// CommandResult records the outcome of one executed spec.
type CommandResult struct {
	Spec     CommandSpec
	Dir      string
	ExitCode int
	Output   []byte
}

// Lines splits the combined output into lines without trailing newlines.
func (r CommandResult) Lines() []string {
	text := strings.TrimRight(strings.ReplaceAll(string(r.Output), "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Tail returns the last n lines of output.
func (r CommandResult) Tail(n int) []string {
	lines := r.Lines()
	if n <= 0 || len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}

// Progress returns up to n trailing lines that are not blank. It returns
// nil when n is not positive.
func (r CommandResult) Progress(n int) []string {
	if n <= 0 {
		return nil
	}
	var out []string
	for _, line := range r.Tail(n) {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
