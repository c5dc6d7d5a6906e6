package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fdWriter is the part of *os.File needed for terminal detection.
// Any wrapper exposing the underlying descriptor qualifies.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w writes to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether log output to w should use ANSI color:
// w must be a terminal, NO_COLOR must be unset (https://no-color.org),
// and TERM must not be "dumb".
func SupportsColor(w io.Writer) bool {
	return colorAllowedByEnv() && IsTTY(w)
}

func colorAllowedByEnv() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
