package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toffee-lang/toffee/parser/cst"
)

func text2(opening []cst.Node, parts []cst.Node, closing cst.Node) cst.Node {
	return &cst.Text{
		Opening: &cst.OpeningText{
			OpeningSingleQuotes: opening,
			OpeningDoubleQuote:  &cst.DoubleQuote{},
		},
		Parts:   parts,
		Closing: closing,
	}
}

func closingText(singleQuotes ...cst.Node) cst.Node {
	return &cst.ClosingText{
		ClosingDoubleQuote:  &cst.DoubleQuote{},
		ClosingSingleQuotes: singleQuotes,
	}
}

func interpolation(opening []cst.Node, expression cst.Node, closing []cst.Node) cst.Node {
	return &cst.TextInterpolation{
		OpeningCurlyBraces: opening,
		Expression:         expression,
		ClosingCurlyBraces: closing,
	}
}

func TestText(t *testing.T) {
	_, _, ok := text("foo", 0)
	require.False(t, ok)

	rest, node, ok := text(`"foo" bar`, 0)
	require.True(t, ok)
	requireNode(t, buildSimpleText("foo"), node, " bar", rest)

	// "foo
	//   bar"2
	rest, node, ok = text("\"foo\n  bar\"2", 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{
			&cst.TextPart{Value: "foo"},
			buildNewline(),
			buildWhitespace("  "),
			&cst.TextPart{Value: "bar"},
		},
		closingText(),
	), node, "2", rest)

	//   "foo
	//   bar"
	rest, node, ok = text("\"foo\n  bar\"2", 1)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{&cst.TextPart{Value: "foo"}},
		buildError("", cst.TextNotSufficientlyIndented),
	), node, "\n  bar\"2", rest)

	rest, node, ok = text(`"foo`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{&cst.TextPart{Value: "foo"}},
		buildError("", cst.TextNotClosed),
	), node, "", rest)

	rest, node, ok = text(`''"foo"'bar"'' baz`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		[]cst.Node{&cst.SingleQuote{}, &cst.SingleQuote{}},
		[]cst.Node{&cst.TextPart{Value: `foo"'bar`}},
		closingText(&cst.SingleQuote{}, &cst.SingleQuote{}),
	), node, " baz", rest)

	rest, node, ok = text(`"foo {"bar"} baz"`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{
			&cst.TextPart{Value: "foo "},
			interpolation(
				[]cst.Node{&cst.OpeningCurlyBrace{}},
				buildSimpleText("bar"),
				[]cst.Node{&cst.ClosingCurlyBrace{}},
			),
			&cst.TextPart{Value: " baz"},
		},
		closingText(),
	), node, "", rest)

	rest, node, ok = text(`'"foo {"bar"} baz"'`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		[]cst.Node{&cst.SingleQuote{}},
		[]cst.Node{&cst.TextPart{Value: `foo {"bar"} baz`}},
		closingText(&cst.SingleQuote{}),
	), node, "", rest)

	rest, node, ok = text(`"foo {  "bar" } baz"`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{
			&cst.TextPart{Value: "foo "},
			interpolation(
				[]cst.Node{withTrailingWhitespace(&cst.OpeningCurlyBrace{}, buildWhitespace("  "))},
				withTrailingSpace(buildSimpleText("bar")),
				[]cst.Node{&cst.ClosingCurlyBrace{}},
			),
			&cst.TextPart{Value: " baz"},
		},
		closingText(),
	), node, "", rest)

	rest, node, ok = text(`"{{2}}"`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{
			&cst.TextPart{Value: "{"},
			interpolation(
				[]cst.Node{&cst.OpeningCurlyBrace{}},
				buildSimpleInt(2, "2"),
				[]cst.Node{&cst.ClosingCurlyBrace{}},
			),
			&cst.TextPart{Value: "}"},
		},
		closingText(),
	), node, "", rest)

	rest, node, ok = text(`"foo {} baz"`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{
			&cst.TextPart{Value: "foo "},
			interpolation(
				[]cst.Node{&cst.OpeningCurlyBrace{}},
				buildError("", cst.TextInterpolationMissesExpression),
				[]cst.Node{&cst.ClosingCurlyBrace{}},
			),
			&cst.TextPart{Value: " baz"},
		},
		closingText(),
	), node, "", rest)

	rest, node, ok = text(`"foo {"bar" baz"`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{
			&cst.TextPart{Value: "foo "},
			interpolation(
				[]cst.Node{&cst.OpeningCurlyBrace{}},
				&cst.Call{
					Receiver: withTrailingSpace(buildSimpleText("bar")),
					Arguments: []cst.Node{
						buildIdentifier("baz"),
						text2(nil, nil, buildError("", cst.TextNotClosed)),
					},
				},
				[]cst.Node{buildError("", cst.TextInterpolationNotClosed)},
			),
		},
		buildError("", cst.TextNotClosed),
	), node, "", rest)

	rest, node, ok = text(`"foo {"bar" "a"} baz"`, 0)
	require.True(t, ok)
	requireNode(t, text2(
		nil,
		[]cst.Node{
			&cst.TextPart{Value: "foo "},
			interpolation(
				[]cst.Node{&cst.OpeningCurlyBrace{}},
				&cst.Call{
					Receiver:  withTrailingSpace(buildSimpleText("bar")),
					Arguments: []cst.Node{buildSimpleText("a")},
				},
				[]cst.Node{&cst.ClosingCurlyBrace{}},
			),
			&cst.TextPart{Value: " baz"},
		},
		closingText(),
	), node, "", rest)
}
