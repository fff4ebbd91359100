package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if stdout is a terminal. Paging and
// interactive editing are skipped when output is redirected.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StdinIsTerminal returns true if stdin is a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
