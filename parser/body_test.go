package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toffee-lang/toffee/parser/cst"
)

func TestBody(t *testing.T) {
	rest, body := parseBody("foo # comment", 0)
	requireNodes(t, []cst.Node{
		buildIdentifier("foo"),
		buildSpace(),
		buildComment(" comment"),
	}, body, "", rest)

	rest, body = parseBody("foo\nbar", 0)
	requireNodes(t, []cst.Node{
		buildIdentifier("foo"),
		buildNewline(),
		buildIdentifier("bar"),
	}, body, "", rest)
}

func TestLambda(t *testing.T) {
	_, _, ok := lambda("2", 0)
	require.False(t, ok)

	rest, node, ok := lambda("{ 2 }", 0)
	require.True(t, ok)
	requireNode(t, &cst.Lambda{
		OpeningCurlyBrace: withTrailingSpace(&cst.OpeningCurlyBrace{}),
		Body:              []cst.Node{buildSimpleInt(2, "2"), buildSpace()},
		ClosingCurlyBrace: &cst.ClosingCurlyBrace{},
	}, node, "", rest)

	// { a ->
	//   foo
	// }
	rest, node, ok = lambda("{ a ->\n  foo\n}", 0)
	require.True(t, ok)
	requireNode(t, &cst.Lambda{
		OpeningCurlyBrace: withTrailingSpace(&cst.OpeningCurlyBrace{}),
		Parameters:        []cst.Node{withTrailingSpace(buildIdentifier("a"))},
		Arrow:             withTrailingWhitespace(&cst.Arrow{}, buildNewline(), buildWhitespace("  ")),
		Body:              []cst.Node{buildIdentifier("foo"), buildNewline()},
		ClosingCurlyBrace: &cst.ClosingCurlyBrace{},
	}, node, "", rest)

	// {
	// foo
	rest, node, ok = lambda("{\nfoo", 0)
	require.True(t, ok)
	requireNode(t, &cst.Lambda{
		OpeningCurlyBrace: &cst.OpeningCurlyBrace{},
		ClosingCurlyBrace: buildError("", cst.CurlyBraceNotClosed),
	}, node, "\nfoo", rest)

	// {->
	// }
	rest, node, ok = lambda("{->\n}", 1)
	require.True(t, ok)
	requireNode(t, &cst.Lambda{
		OpeningCurlyBrace: &cst.OpeningCurlyBrace{},
		Arrow:             &cst.Arrow{},
		ClosingCurlyBrace: buildError("", cst.CurlyBraceNotClosed),
	}, node, "\n}", rest)

	// { foo
	//   bar
	// }
	rest, node, ok = lambda("{ foo\n  bar\n}", 0)
	require.True(t, ok)
	requireNode(t, &cst.Lambda{
		OpeningCurlyBrace: withTrailingSpace(&cst.OpeningCurlyBrace{}),
		Body: []cst.Node{
			buildIdentifier("foo"),
			buildNewline(),
			buildWhitespace("  "),
			buildIdentifier("bar"),
			buildNewline(),
		},
		ClosingCurlyBrace: &cst.ClosingCurlyBrace{},
	}, node, "", rest)

	// { foo # abc
	// }
	rest, node, ok = lambda("{ foo # abc\n}", 0)
	require.True(t, ok)
	requireNode(t, &cst.Lambda{
		OpeningCurlyBrace: withTrailingSpace(&cst.OpeningCurlyBrace{}),
		Body: []cst.Node{
			buildIdentifier("foo"),
			buildSpace(),
			buildComment(" abc"),
			buildNewline(),
		},
		ClosingCurlyBrace: &cst.ClosingCurlyBrace{},
	}, node, "", rest)
}
