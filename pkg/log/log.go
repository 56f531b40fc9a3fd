// Package log provides logging utilities including colored console output
// and connection logging capabilities.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

// Logger writes colored messages to stderr. Verbose and debug output is
// suppressed unless the corresponding level is enabled.
type Logger struct {
	verbosity int
}

// New creates a Logger with the given verbosity level. Level 0 prints
// errors and info only, level 1 adds verbose messages, level 2 adds
// debug messages.
func New(verbosity int) *Logger {
	return &Logger{verbosity: verbosity}
}

// Verbosity returns the configured verbosity level.
func (l *Logger) Verbosity() int {
	if l == nil {
		return 0
	}
	return l.verbosity
}

// ErrorMsg prints an error message to stderr in red color.
func (l *Logger) ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func (l *Logger) InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// VerboseMsg prints a message to stderr in yellow color if verbosity is at least 1.
func (l *Logger) VerboseMsg(format string, a ...interface{}) {
	if l.Verbosity() < 1 {
		return
	}
	yellow(os.Stderr, "[*] "+format, a...)
}

// DebugMsg prints a message to stderr in yellow color if verbosity is at least 2.
func (l *Logger) DebugMsg(format string, a ...interface{}) {
	if l.Verbosity() < 2 {
		return
	}
	yellow(os.Stderr, "[-] "+format, a...)
}
