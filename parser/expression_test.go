package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toffee-lang/toffee/parser/cst"
)

func TestExpression(t *testing.T) {
	rest, node, ok := parseExpression("foo", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, buildIdentifier("foo"), node, "", rest)

	rest, node, ok = parseExpression("(foo Bar)", 0, false, false, true)
	require.True(t, ok)
	requireNode(t, &cst.Parenthesized{
		OpeningParenthesis: &cst.OpeningParenthesis{},
		Inner: &cst.Call{
			Receiver:  withTrailingSpace(buildIdentifier("foo")),
			Arguments: []cst.Node{buildSymbol("Bar")},
		},
		ClosingParenthesis: &cst.ClosingParenthesis{},
	}, node, "", rest)

	// foo
	//   .bar
	rest, node, ok = parseExpression("foo\n  .bar", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.StructAccess{
		Struct: withTrailingWhitespace(buildIdentifier("foo"), buildNewline(), buildWhitespace("  ")),
		Dot:    &cst.Dot{},
		Key:    buildIdentifier("bar"),
	}, node, "", rest)

	// foo
	// .bar
	rest, node, ok = parseExpression("foo\n.bar", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, buildIdentifier("foo"), node, "\n.bar", rest)

	// foo
	// | bar
	rest, node, ok = parseExpression("foo\n| bar", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.BinaryBar{
		Left:  withTrailingWhitespace(buildIdentifier("foo"), buildNewline()),
		Bar:   withTrailingSpace(&cst.Bar{}),
		Right: buildIdentifier("bar"),
	}, node, "", rest)

	// foo
	// | bar baz
	rest, node, ok = parseExpression("foo\n| bar baz", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.BinaryBar{
		Left: withTrailingWhitespace(buildIdentifier("foo"), buildNewline()),
		Bar:  withTrailingSpace(&cst.Bar{}),
		Right: &cst.Call{
			Receiver:  withTrailingSpace(buildIdentifier("bar")),
			Arguments: []cst.Node{buildIdentifier("baz")},
		},
	}, node, "", rest)

	// foo %
	//   123 -> 123
	rest, node, ok = parseExpression("foo %\n  123 -> 123", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Match{
		Expression: withTrailingSpace(buildIdentifier("foo")),
		Percent:    withTrailingWhitespace(&cst.Percent{}, buildNewline(), buildWhitespace("  ")),
		Cases: []cst.Node{&cst.MatchCase{
			Pattern: withTrailingSpace(buildSimpleInt(123, "123")),
			Arrow:   withTrailingSpace(&cst.Arrow{}),
			Body:    []cst.Node{buildSimpleInt(123, "123")},
		}},
	}, node, "", rest)

	rest, node, ok = parseExpression("foo bar", 0, false, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Call{
		Receiver:  withTrailingSpace(buildIdentifier("foo")),
		Arguments: []cst.Node{buildIdentifier("bar")},
	}, node, "", rest)

	rest, node, ok = parseExpression("Foo 4 bar", 0, false, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Call{
		Receiver: withTrailingSpace(buildSymbol("Foo")),
		Arguments: []cst.Node{
			withTrailingSpace(buildSimpleInt(4, "4")),
			buildIdentifier("bar"),
		},
	}, node, "", rest)

	// foo
	//   bar
	//   baz
	// 2
	rest, node, ok = parseExpression("foo\n  bar\n  baz\n2", 0, false, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Call{
		Receiver: withTrailingWhitespace(buildIdentifier("foo"), buildNewline(), buildWhitespace("  ")),
		Arguments: []cst.Node{
			withTrailingWhitespace(buildIdentifier("bar"), buildNewline(), buildWhitespace("  ")),
			buildIdentifier("baz"),
		},
	}, node, "\n2", rest)

	// foo 1 2
	//   3
	//   4
	// bar
	rest, node, ok = parseExpression("foo 1 2\n  3\n  4\nbar", 0, false, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Call{
		Receiver: withTrailingSpace(buildIdentifier("foo")),
		Arguments: []cst.Node{
			withTrailingSpace(buildSimpleInt(1, "1")),
			withTrailingWhitespace(buildSimpleInt(2, "2"), buildNewline(), buildWhitespace("  ")),
			withTrailingWhitespace(buildSimpleInt(3, "3"), buildNewline(), buildWhitespace("  ")),
			buildSimpleInt(4, "4"),
		},
	}, node, "\nbar", rest)

	// foo
	//   bar | baz
	rest, node, ok = parseExpression("foo\n  bar | baz", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Call{
		Receiver: withTrailingWhitespace(buildIdentifier("foo"), buildNewline(), buildWhitespace("  ")),
		Arguments: []cst.Node{&cst.BinaryBar{
			Left:  withTrailingSpace(buildIdentifier("bar")),
			Bar:   withTrailingSpace(&cst.Bar{}),
			Right: buildIdentifier("baz"),
		}},
	}, node, "", rest)

	// foo T
	//
	//
	// bar = 5
	rest, node, ok = parseExpression("foo T\n\n\nbar = 5", 0, false, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Call{
		Receiver:  withTrailingSpace(buildIdentifier("foo")),
		Arguments: []cst.Node{buildSymbol("T")},
	}, node, "\n\n\nbar = 5", rest)

	rest, node, ok = parseExpression("foo = 42", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("foo")),
		AssignmentSign: withTrailingSpace(&cst.EqualsSign{}),
		Body:           []cst.Node{buildSimpleInt(42, "42")},
	}, node, "", rest)

	rest, node, ok = parseExpression("foo =\n  bar\n\nbaz", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("foo")),
		AssignmentSign: withTrailingWhitespace(&cst.EqualsSign{}, buildNewline(), buildWhitespace("  ")),
		Body:           []cst.Node{buildIdentifier("bar")},
	}, node, "\n\nbaz", rest)

	rest, node, ok = parseExpression("foo %", 0, false, false, true)
	require.True(t, ok)
	requireNode(t, &cst.Match{
		Expression: withTrailingSpace(buildIdentifier("foo")),
		Percent:    &cst.Percent{},
		Cases:      []cst.Node{buildError("", cst.MatchMissesCases)},
	}, node, "", rest)

	rest, node, ok = parseExpression("foo %\n", 0, false, false, true)
	require.True(t, ok)
	requireNode(t, &cst.Match{
		Expression: withTrailingSpace(buildIdentifier("foo")),
		Percent:    &cst.Percent{},
		Cases:      []cst.Node{buildError("", cst.MatchMissesCases)},
	}, node, "\n", rest)

	// foo %
	//   1 -> 2
	// Foo
	rest, node, ok = parseExpression("foo %\n  1 -> 2\nFoo", 0, false, false, true)
	require.True(t, ok)
	requireNode(t, &cst.Match{
		Expression: withTrailingSpace(buildIdentifier("foo")),
		Percent:    withTrailingWhitespace(&cst.Percent{}, buildNewline(), buildWhitespace("  ")),
		Cases: []cst.Node{&cst.MatchCase{
			Pattern: withTrailingSpace(buildSimpleInt(1, "1")),
			Arrow:   withTrailingSpace(&cst.Arrow{}),
			Body:    []cst.Node{buildSimpleInt(2, "2")},
		}},
	}, node, "\nFoo", rest)

	// foo bar =
	//   3
	// 2
	rest, node, ok = parseExpression("foo bar =\n  3\n2", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left: withTrailingSpace(&cst.Call{
			Receiver:  withTrailingSpace(buildIdentifier("foo")),
			Arguments: []cst.Node{buildIdentifier("bar")},
		}),
		AssignmentSign: withTrailingWhitespace(&cst.EqualsSign{}, buildNewline(), buildWhitespace("  ")),
		Body:           []cst.Node{buildSimpleInt(3, "3")},
	}, node, "\n2", rest)

	// main := { environment ->
	//   input
	// }
	rest, node, ok = parseExpression("main := { environment ->\n  input\n}", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("main")),
		AssignmentSign: withTrailingSpace(&cst.ColonEqualsSign{}),
		Body: []cst.Node{&cst.Lambda{
			OpeningCurlyBrace: withTrailingSpace(&cst.OpeningCurlyBrace{}),
			Parameters:        []cst.Node{withTrailingSpace(buildIdentifier("environment"))},
			Arrow:             withTrailingWhitespace(&cst.Arrow{}, buildNewline(), buildWhitespace("  ")),
			Body:              []cst.Node{buildIdentifier("input"), buildNewline()},
			ClosingCurlyBrace: &cst.ClosingCurlyBrace{},
		}},
	}, node, "", rest)

	// foo
	//   bar
	//   = 3
	rest, node, ok = parseExpression("foo\n  bar\n  = 3", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left: withTrailingWhitespace(
			&cst.Call{
				Receiver:  withTrailingWhitespace(buildIdentifier("foo"), buildNewline(), buildWhitespace("  ")),
				Arguments: []cst.Node{buildIdentifier("bar")},
			},
			buildNewline(), buildWhitespace("  "),
		),
		AssignmentSign: withTrailingSpace(&cst.EqualsSign{}),
		Body:           []cst.Node{buildSimpleInt(3, "3")},
	}, node, "", rest)

	rest, node, ok = parseExpression("foo =\n  ", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("foo")),
		AssignmentSign: &cst.EqualsSign{},
	}, node, "\n  ", rest)

	rest, node, ok = parseExpression("foo = # comment\n", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("foo")),
		AssignmentSign: withTrailingSpace(&cst.EqualsSign{}),
		Body:           []cst.Node{buildComment(" comment")},
	}, node, "\n", rest)

	rest, node, ok = parseExpression("foo = bar # comment\n", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("foo")),
		AssignmentSign: withTrailingSpace(&cst.EqualsSign{}),
		Body: []cst.Node{
			buildIdentifier("bar"),
			buildSpace(),
			buildComment(" comment"),
		},
	}, node, "\n", rest)

	// foo =
	//   # comment
	// 3
	rest, node, ok = parseExpression("foo =\n  # comment\n3", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("foo")),
		AssignmentSign: withTrailingWhitespace(&cst.EqualsSign{}, buildNewline(), buildWhitespace("  ")),
		Body:           []cst.Node{buildComment(" comment")},
	}, node, "\n3", rest)

	// foo =
	//   # comment
	//   5
	// 3
	rest, node, ok = parseExpression("foo =\n  # comment\n  5\n3", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left:           withTrailingSpace(buildIdentifier("foo")),
		AssignmentSign: withTrailingWhitespace(&cst.EqualsSign{}, buildNewline(), buildWhitespace("  ")),
		Body: []cst.Node{
			buildComment(" comment"),
			buildNewline(),
			buildWhitespace("  "),
			buildSimpleInt(5, "5"),
		},
	}, node, "\n3", rest)

	rest, node, ok = parseExpression("(foo, bar) = (1, 2)", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left: withTrailingSpace(&cst.List{
			OpeningParenthesis: &cst.OpeningParenthesis{},
			Items: []cst.Node{
				withTrailingSpace(&cst.ListItem{Value: buildIdentifier("foo"), Comma: &cst.Comma{}}),
				&cst.ListItem{Value: buildIdentifier("bar")},
			},
			ClosingParenthesis: &cst.ClosingParenthesis{},
		}),
		AssignmentSign: withTrailingSpace(&cst.EqualsSign{}),
		Body: []cst.Node{&cst.List{
			OpeningParenthesis: &cst.OpeningParenthesis{},
			Items: []cst.Node{
				withTrailingSpace(&cst.ListItem{Value: buildSimpleInt(1, "1"), Comma: &cst.Comma{}}),
				&cst.ListItem{Value: buildSimpleInt(2, "2")},
			},
			ClosingParenthesis: &cst.ClosingParenthesis{},
		}},
	}, node, "", rest)

	rest, node, ok = parseExpression("[Foo: foo] = bar", 0, true, true, true)
	require.True(t, ok)
	requireNode(t, &cst.Assignment{
		Left: withTrailingSpace(&cst.Struct{
			OpeningBracket: &cst.OpeningBracket{},
			Fields: []cst.Node{&cst.StructField{
				Key:   buildSymbol("Foo"),
				Colon: withTrailingSpace(&cst.Colon{}),
				Value: buildIdentifier("foo"),
			}},
			ClosingBracket: &cst.ClosingBracket{},
		}),
		AssignmentSign: withTrailingSpace(&cst.EqualsSign{}),
		Body:           []cst.Node{buildIdentifier("bar")},
	}, node, "", rest)
}
