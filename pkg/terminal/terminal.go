package terminal

import (
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// Width returns the width of the terminal f or a default if f is not a
// terminal.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func IsTerminalFile(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
