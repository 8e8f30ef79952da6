package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal. Only writers exposing Fd, such as
// *os.File, can be terminals.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colour should be written to w.
//
// NO_COLOR (any value) and TERM=dumb disable colour. CLICOLOR_FORCE set to
// anything but "0" enables it even when w is not a terminal, which keeps
// colour in CI logs that render escapes.
func SupportsColor(w io.Writer) bool {
	return colorEnabled(os.LookupEnv, IsTTY(w))
}

func colorEnabled(lookup func(string) (string, bool), isTTY bool) bool {
	// https://no-color.org
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if term, _ := lookup("TERM"); term == "dumb" {
		return false
	}
	if force, ok := lookup("CLICOLOR_FORCE"); ok && force != "" && force != "0" {
		return true
	}
	return isTTY
}
