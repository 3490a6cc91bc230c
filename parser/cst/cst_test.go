package cst

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttribute(t *testing.T) {
	t.Parallel()
	// foo = 42 followed by a comment.
	assignment := &Assignment{
		Left: &TrailingWhitespace{
			Child:      &Identifier{Value: "foo"},
			Whitespace: []Node{&Whitespace{Value: " "}},
		},
		AssignmentSign: &TrailingWhitespace{
			Child:      &EqualsSign{},
			Whitespace: []Node{&Whitespace{Value: " "}},
		},
		Body: []Node{
			&Int{Value: big.NewInt(42), Text: "42"},
			&Whitespace{Value: " "},
			&Comment{Octothorpe: &Octothorpe{}, Text: " answer"},
		},
	}
	roots := []Node{assignment, &Newline{Value: "\n"}}
	Attribute(roots)

	source := "foo = 42 # answer\n"
	require.Equal(t, source, Source(roots))
	require.Equal(t, Span{Start: 0, End: 17}, assignment.Span())
	require.Equal(t, Span{Start: 17, End: 18}, roots[1].Span())
	require.Equal(t, Span{Start: 6, End: 8}, assignment.Body[0].Span())
	require.Equal(t, Span{Start: 9, End: 17}, assignment.Body[2].Span())

	WalkAll(roots, func(node Node) bool {
		span := node.Span()
		require.Equal(t, source[span.Start:span.End], node.String())
		return true
	})
}

func TestPrecedence(t *testing.T) {
	t.Parallel()
	require.Equal(t, PrecedenceHigh, Precedence(&Identifier{Value: "foo"}))
	require.Equal(t, PrecedenceHigh, Precedence(&Symbol{Value: "Foo"}))
	require.Equal(t, PrecedenceHigh, Precedence(&Struct{}))
	require.Equal(t, PrecedenceHigh, Precedence(&Lambda{}))
	require.Equal(t, PrecedenceLow, Precedence(&Call{Receiver: &Identifier{Value: "foo"}}))
	require.Equal(t, PrecedenceLow, Precedence(&BinaryBar{}))
	require.Equal(t, PrecedenceLow, Precedence(&Match{}))
	require.Equal(t, PrecedenceNone, Precedence(&Comma{}))
	require.Equal(t, PrecedenceNone, Precedence(&Error{}))
	require.Equal(t, PrecedenceHigh, Precedence(&TrailingWhitespace{
		Child: &Identifier{Value: "foo"},
	}))
}

func TestHasComments(t *testing.T) {
	t.Parallel()
	require.False(t, HasComments(&Identifier{Value: "foo"}))
	require.True(t, HasComments(&TrailingWhitespace{
		Child: &Identifier{Value: "foo"},
		Whitespace: []Node{
			&Comment{Octothorpe: &Octothorpe{}, Text: " hi"},
		},
	}))
}

func TestIsMultiline(t *testing.T) {
	t.Parallel()
	require.False(t, IsMultiline(&Identifier{Value: "foo"}))
	require.True(t, IsMultiline(&TrailingWhitespace{
		Child:      &Identifier{Value: "foo"},
		Whitespace: []Node{&Newline{Value: "\n"}},
	}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	roots := []Node{
		&Parenthesized{
			OpeningParenthesis: &OpeningParenthesis{},
			Inner:              &Identifier{Value: "foo"},
			ClosingParenthesis: &Error{Kind: ParenthesisNotClosed},
		},
	}
	errors := Errors(roots)
	require.Len(t, errors, 1)
	require.Equal(t, ParenthesisNotClosed, errors[0].Kind)
}
