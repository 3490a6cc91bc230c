package linter

import (
	"context"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
)

func TestLintFormattedModule(t *testing.T) {
	t.Parallel()
	source := dedent.Dedent(`
		foo = bar
		baz = foo | blub
	`)
	source = strings.TrimPrefix(source, "\n")
	err := Lint(context.Background(), strings.NewReader(source))
	require.NoError(t, err)
}

func TestLintUnformattedModule(t *testing.T) {
	t.Parallel()
	err := Lint(context.Background(), strings.NewReader("foo   =   bar"))
	require.Error(t, err)

	lintErr, ok := err.(ErrLint)
	require.True(t, ok)
	require.Len(t, lintErr.Errs, 1)
	require.IsType(t, ErrNotFormatted{}, lintErr.Errs[0])
	require.Contains(t, err.Error(), "not formatted canonically")
}

func TestLintSyntaxErrors(t *testing.T) {
	t.Parallel()
	err := Lint(context.Background(), strings.NewReader("(foo\n"), WithSyntaxCheck())
	require.Error(t, err)

	lintErr, ok := err.(ErrLint)
	require.True(t, ok)
	require.NotEmpty(t, lintErr.Errs)
}
