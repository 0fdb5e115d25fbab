// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"sync"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Logger writes warnings and verbosity-gated trace lines to one stream.
// It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	dst     io.Writer
	Quiet   bool
	Verbose int
}

func NewLogger(dst io.Writer, verbose int) *Logger {
	return &Logger{dst: dst, Verbose: verbose}
}

func (l *Logger) Warnf(format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	Warnf(l.dst, l.Quiet, format, a...)
}

// Debugf prints when the verbosity is at least level.
func (l *Logger) Debugf(level int, format string, a ...any) {
	if l.Verbose < level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.dst, format+"\n", a...)
}

// Enabled reports whether Debugf at level would print.
func (l *Logger) Enabled(level int) bool { return l.Verbose >= level }
