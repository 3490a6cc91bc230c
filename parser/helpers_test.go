package parser

import (
	"math/big"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/toffee-lang/toffee/parser/cst"
)

func requireNode(t *testing.T, expected, actual cst.Node, rest string, actualRest string) {
	t.Helper()
	require.Equal(t, rest, actualRest)
	require.Equal(t, expected, actual, "got:\n%s", repr.String(actual, repr.Indent("  ")))
}

func requireNodes(t *testing.T, expected, actual []cst.Node, rest string, actualRest string) {
	t.Helper()
	require.Equal(t, rest, actualRest)
	require.Equal(t, expected, actual, "got:\n%s", repr.String(actual, repr.Indent("  ")))
}

func buildComment(text string) cst.Node {
	return &cst.Comment{Octothorpe: &cst.Octothorpe{}, Text: text}
}

func buildIdentifier(value string) cst.Node {
	return &cst.Identifier{Value: value}
}

func buildSymbol(value string) cst.Node {
	return &cst.Symbol{Value: value}
}

func buildSimpleInt(value int64, text string) cst.Node {
	return &cst.Int{Value: big.NewInt(value), Text: text}
}

func buildSimpleText(value string) cst.Node {
	return &cst.Text{
		Opening: &cst.OpeningText{
			OpeningDoubleQuote: &cst.DoubleQuote{},
		},
		Parts: []cst.Node{&cst.TextPart{Value: value}},
		Closing: &cst.ClosingText{
			ClosingDoubleQuote: &cst.DoubleQuote{},
		},
	}
}

func buildSpace() cst.Node {
	return &cst.Whitespace{Value: " "}
}

func buildWhitespace(value string) cst.Node {
	return &cst.Whitespace{Value: value}
}

func buildNewline() cst.Node {
	return &cst.Newline{Value: "\n"}
}

func withTrailingSpace(node cst.Node) cst.Node {
	return withTrailingWhitespace(node, buildSpace())
}

func withTrailingWhitespace(node cst.Node, whitespace ...cst.Node) cst.Node {
	return &cst.TrailingWhitespace{Child: node, Whitespace: whitespace}
}

func buildError(input string, kind cst.ErrorKind) cst.Node {
	return &cst.Error{UnparsableInput: input, Kind: kind}
}
