// Package linter checks that Toffee sources parse cleanly and are
// canonically formatted.
package linter

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/toffee-lang/toffee"
)

type Linter struct {
	CheckSyntax bool
}

type LintOption func(*Linter)

// WithSyntaxCheck also reports parse errors, not just formatting drift.
func WithSyntaxCheck() LintOption {
	return func(l *Linter) {
		l.CheckSyntax = true
	}
}

// Lint parses the module behind r and reports whether it is canonically
// formatted.
func Lint(ctx context.Context, r io.Reader, opts ...LintOption) error {
	linter := Linter{}
	for _, opt := range opts {
		opt(&linter)
	}
	return linter.Lint(ctx, r)
}

func (l *Linter) Lint(ctx context.Context, r io.Reader) error {
	mod, err := toffee.Parse(ctx, r)
	if err != nil {
		return err
	}
	return l.LintModule(ctx, mod)
}

func (l *Linter) LintModule(ctx context.Context, mod *toffee.Module) error {
	var errs []error
	if l.CheckSyntax {
		errs = append(errs, toffee.Diagnostics(ctx, mod)...)
	}

	if mod.Format() != mod.Source() {
		errs = append(errs, ErrNotFormatted{Filename: mod.Name})
	}

	if len(errs) > 0 {
		return ErrLint{Filename: mod.Name, Errs: errs}
	}
	return nil
}

// LintFile lints a file on disk.
func LintFile(ctx context.Context, filename string, opts ...LintOption) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "unable to open module")
	}
	defer f.Close()
	return Lint(ctx, f, opts...)
}
