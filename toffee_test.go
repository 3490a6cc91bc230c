package toffee

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toffee-lang/toffee/diagnostic"
	"github.com/toffee-lang/toffee/pkg/filebuffer"
)

func TestParse(t *testing.T) {
	t.Parallel()
	mod, err := Parse(context.Background(), strings.NewReader("foo = 42\n"))
	require.NoError(t, err)
	require.Equal(t, "<stdin>", mod.Name)
	require.Equal(t, "foo = 42\n", mod.Source())
	require.Equal(t, "foo = 42\n", mod.Format())
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()
	_, err := Parse(context.Background(), strings.NewReader("foo\xff"))
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestParseMultiple(t *testing.T) {
	t.Parallel()
	mods, err := ParseMultiple(context.Background(), []io.Reader{
		strings.NewReader("foo\n"),
		strings.NewReader("bar\n"),
	})
	require.NoError(t, err)
	require.Len(t, mods, 2)
	require.Equal(t, "foo\n", mods[0].Source())
	require.Equal(t, "bar\n", mods[1].Source())
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()
	ctx := diagnostic.WithSources(context.Background(), filebuffer.NewSources())

	mod, err := Parse(ctx, strings.NewReader("(foo\n"))
	require.NoError(t, err)

	diagnostics := Diagnostics(ctx, mod)
	require.Len(t, diagnostics, 1)

	spanErr, ok := diagnostics[0].(*diagnostic.SpanError)
	require.True(t, ok)
	var parseErr *ParseError
	require.ErrorAs(t, spanErr, &parseErr)
	require.Equal(t, "parenthesis is not closed", parseErr.Error())
}
