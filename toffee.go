// Package toffee is the front-end for the Toffee language: a lossless
// parser and a width-aware formatter sharing one concrete syntax tree.
package toffee

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/toffee-lang/toffee/diagnostic"
	"github.com/toffee-lang/toffee/format"
	"github.com/toffee-lang/toffee/parser"
	"github.com/toffee-lang/toffee/parser/cst"
	"github.com/toffee-lang/toffee/pkg/filebuffer"
)

// Module is a parsed source file together with its name.
type Module struct {
	Name  string
	Roots []cst.Node
}

// Source returns the module's exact source text.
func (m *Module) Source() string {
	return cst.Source(m.Roots)
}

// Format returns the module's canonically formatted source.
func (m *Module) Format() string {
	return format.Format(m.Roots)
}

// Parse reads and parses a single module. Parsing itself is total; the
// error covers I/O and invalid UTF-8 only. Syntax problems surface as
// Error nodes in the tree, see Diagnostics.
func Parse(ctx context.Context, r io.Reader) (*Module, error) {
	name := "<stdin>"
	if named, ok := r.(interface{ Name() string }); ok {
		name = named.Name()
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	source := buf.String()
	if !utf8.ValidString(source) {
		return nil, ErrInvalidUTF8
	}

	roots, err := parser.Parse(ctx, &parser.NamedReader{
		Reader: strings.NewReader(source),
		Value:  name,
	})
	if err != nil {
		return nil, err
	}
	return &Module{Name: name, Roots: roots}, nil
}

// ParseMultiple parses modules concurrently.
func ParseMultiple(ctx context.Context, rs []io.Reader) ([]*Module, error) {
	mods := make([]*Module, len(rs))

	var g errgroup.Group
	for i, r := range rs {
		i, r := i, r
		g.Go(func() error {
			mod, err := Parse(ctx, r)
			if err != nil {
				return err
			}

			mods[i] = mod
			return nil
		})
	}

	return mods, g.Wait()
}

// Diagnostics elevates the module's Error leaves to span errors in source
// order. The context's sources provide the positions and excerpts.
func Diagnostics(ctx context.Context, mod *Module) []error {
	fb := diagnostic.Sources(ctx).Get(mod.Name)
	if fb == nil {
		fb = filebuffer.New(mod.Name)
		fb.WriteString(mod.Source())
	}
	var diagnostics []error
	for _, parseError := range cst.Errors(mod.Roots) {
		span := parseError.Span()
		start := fb.PositionAt(int(span.Start))
		end := fb.PositionAt(int(span.End))
		diagnostics = append(diagnostics, diagnostic.WithError(
			&ParseError{Kind: parseError.Kind, Input: parseError.UnparsableInput},
			start, end,
			diagnostic.Spanf(diagnostic.Primary, start, end, "%s", parseError.Kind.Message()),
		))
	}
	return diagnostics
}
