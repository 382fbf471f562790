// Package log provides context-aware diagnostics logging for jig.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Logger writes diagnostics, normally to stderr.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	warn    *color.Color
}

// New creates a new logger. Warnings are colored only when out is a terminal.
func New(out io.Writer, verbose, quiet bool) *Logger {
	warn := color.New(color.FgYellow)
	if !isTerminal(out) {
		warn.DisableColor()
	}
	return &Logger{out: out, verbose: verbose, quiet: quiet, warn: warn}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, true)
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Debug writes msg followed by key=value pairs in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Warnf writes a "warning:" line unless quiet.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	l.warn.Fprintf(l.out, "warning: "+format+"\n", args...)
}

// IsVerbose reports whether debug output is enabled. Quiet wins over verbose.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
