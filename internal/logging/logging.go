package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger writes verbosity-gated diagnostic output for CLI commands.
type Logger struct {
	Verbose bool
	Debug   bool
}

// Infof logs progress detail. Shown with --verbose or --debug.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

// Debugf logs internal detail. Shown only with --debug.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

// Warnf logs a warning. Always shown.
func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

// Errorf logs an error. Always shown.
func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
}
