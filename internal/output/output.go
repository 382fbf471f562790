// Package output provides context-aware output for jig.
// Stdout carries primary data (resolved settings, paths, templates).
// Stderr (via log package) carries diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// TOML encodes v (a struct or map) as a TOML document.
func (p *Printer) TOML(v any) error {
	if err := toml.NewEncoder(p.w).Encode(v); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
