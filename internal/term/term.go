// Package term answers the two questions the help printer and the logger
// ask about their output: is it a terminal, and how wide is it.
package term

import (
	"io"
	"os"
)

// fder is implemented by *os.File
type fder interface {
	Fd() uintptr
}

func fd(w io.Writer) (int, bool) {
	f, ok := w.(fder)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	n, ok := fd(w)
	if !ok {
		return false
	}
	return isTerminal(n)
}

// Width returns the column count of the terminal behind w, or fallback when w
// is not a terminal or the size cannot be read.
func Width(w io.Writer, fallback int) int {
	n, ok := fd(w)
	if !ok {
		return fallback
	}
	if cols := width(n); cols > 0 {
		return cols
	}
	return fallback
}

var _ fder = (*os.File)(nil)
