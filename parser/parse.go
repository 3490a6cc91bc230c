package parser

import (
	"context"
	"io"
	"strings"

	"github.com/toffee-lang/toffee/diagnostic"
	"github.com/toffee-lang/toffee/parser/cst"
	"github.com/toffee-lang/toffee/pkg/filebuffer"
)

// ParseSource parses source into a concrete syntax tree. It is total: any
// input yields a tree, with unparsable parts preserved as Error nodes, and
// the concatenated yield of the roots reproduces source exactly. Spans and
// IDs are already attributed.
func ParseSource(source string) []cst.Node {
	rest, roots := parseBody(source, 0)
	if rest != "" {
		var trailingNewline cst.Node
		if len(rest) >= 2 {
			if after, nl, ok := newline(rest[len(rest)-2:]); ok && after == "" {
				rest = rest[:len(rest)-2]
				trailingNewline = nl
			}
		}
		if trailingNewline == nil {
			if _, nl, ok := newline(rest[len(rest)-1:]); ok {
				rest = rest[:len(rest)-1]
				trailingNewline = nl
			}
		}
		roots = append(roots, &cst.Error{
			UnparsableInput: rest,
			Kind:            cst.UnparsedRest,
		})
		if trailingNewline != nil {
			roots = append(roots, trailingNewline)
		}
	}
	cst.Attribute(roots)
	return roots
}

// Parse reads all of r and parses it. The reader's name (via a Name method,
// as on *os.File) keys the source into the context's diagnostic sources so
// errors can be reported with source excerpts later.
func Parse(ctx context.Context, r io.Reader) ([]cst.Node, error) {
	name := nameOfReader(r)

	var buf strings.Builder
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	source := buf.String()

	if sources := diagnostic.Sources(ctx); sources != nil {
		fb := filebuffer.New(name)
		fb.WriteString(source)
		sources.Set(name, fb)
	}

	return ParseSource(source), nil
}

// NamedReader gives a name to an arbitrary reader, e.g. stdin.
type NamedReader struct {
	io.Reader
	Value string
}

func (nr *NamedReader) Name() string {
	return nr.Value
}

func nameOfReader(r io.Reader) string {
	if named, ok := r.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "<stdin>"
}
