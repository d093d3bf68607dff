// Package printer writes styled user-facing messages for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/mudmap/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to an output stream.
type Printer struct {
	out io.Writer
}

func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Section(title string) {
	p.Printf("%s", styles.HeaderStyle.Render(title))
}

func (p *Printer) Successf(format string, args ...any) {
	p.prefixed(styles.SuccessStyle.Render("✓"), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.prefixed(styles.MutedStyle.Render("•"), format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.prefixed(styles.WarningStyle.Render("!"), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.prefixed(styles.ErrorStyle.Render("✗"), format, args...)
}

func (p *Printer) prefixed(mark, format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
