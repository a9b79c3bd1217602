// Package logging provides output formatting for ifguard.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// StderrLogger provides formatted output to stderr.
type StderrLogger struct {
	out   io.Writer
	debug bool
}

// NewStderrLogger creates a new StderrLogger. Debug output is suppressed
// unless debug is true.
func NewStderrLogger(debug bool) *StderrLogger {
	return &StderrLogger{
		out:   os.Stderr,
		debug: debug,
	}
}

// Debug logs a debug message (only if debug mode is enabled).
func (l *StderrLogger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[ifguard] DEBUG: %s\n", msg)
}

// FailureChain prints every layer of a wrapped error, outermost first.
// Only emitted in debug mode; the single-line ERROR rendering at the top
// level is always printed regardless.
func (l *StderrLogger) FailureChain(err error) {
	if !l.debug {
		return
	}
	depth := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(l.out, "[ifguard] DEBUG: %*s%s\n", depth*2, "", e.Error())
		depth++
	}
}
