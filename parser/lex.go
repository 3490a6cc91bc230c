// Package parser turns Toffee source text into a lossless concrete syntax
// tree. The parser is hand-written, recursive-descent, and indentation-first:
// indentation is more important than parentheses and brackets, so even when
// part of a definition cannot be parsed, the surrounding code still has a
// chance to be parsed properly.
//
// All parse functions take an input and return an input that may have
// advanced a little; they never backtrack over committed input. Instead of
// failing, they produce typed Error nodes and keep going.
package parser

import (
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toffee-lang/toffee/parser/cst"
)

const (
	meaningfulPunctuation = `=,.:|()[]{}->'"%#`
	supportedWhitespace   = " \r\n\t"
)

func literal(input, lit string) (string, bool) {
	if rest, ok := strings.CutPrefix(input, lit); ok {
		return rest, true
	}
	return input, false
}

func equalsSign(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "=")
	return rest, &cst.EqualsSign{}, ok
}

func comma(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, ",")
	return rest, &cst.Comma{}, ok
}

func dot(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, ".")
	return rest, &cst.Dot{}, ok
}

func colon(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, ":")
	return rest, &cst.Colon{}, ok
}

func colonEqualsSign(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, ":=")
	return rest, &cst.ColonEqualsSign{}, ok
}

func bar(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "|")
	return rest, &cst.Bar{}, ok
}

func openingBracket(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "[")
	return rest, &cst.OpeningBracket{}, ok
}

func closingBracket(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "]")
	return rest, &cst.ClosingBracket{}, ok
}

func openingParenthesis(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "(")
	return rest, &cst.OpeningParenthesis{}, ok
}

func closingParenthesis(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, ")")
	return rest, &cst.ClosingParenthesis{}, ok
}

func openingCurlyBrace(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "{")
	return rest, &cst.OpeningCurlyBrace{}, ok
}

func closingCurlyBrace(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "}")
	return rest, &cst.ClosingCurlyBrace{}, ok
}

func arrow(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "->")
	return rest, &cst.Arrow{}, ok
}

func singleQuote(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "'")
	return rest, &cst.SingleQuote{}, ok
}

func doubleQuote(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, `"`)
	return rest, &cst.DoubleQuote{}, ok
}

func percent(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "%")
	return rest, &cst.Percent{}, ok
}

func octothorpe(input string) (string, cst.Node, bool) {
	rest, ok := literal(input, "#")
	return rest, &cst.Octothorpe{}, ok
}

func newline(input string) (string, cst.Node, bool) {
	for _, nl := range []string{"\n", "\r\n"} {
		if rest, ok := literal(input, nl); ok {
			return rest, &cst.Newline{Value: nl}, true
		}
	}
	return input, nil, false
}

// parseMultiple applies parseSingle repeatedly. With exact set, it consumes
// greedily and then requires exactly count matches; otherwise it stops once
// count matches were consumed but still requires count in total. A count of
// -1 means "as many as there are".
func parseMultiple(
	input string,
	parseSingle func(string) (string, cst.Node, bool),
	count int,
	exact bool,
) (string, []cst.Node, bool) {
	var nodes []cst.Node
	for {
		if count >= 0 && !exact && len(nodes) >= count {
			break
		}
		rest, node, ok := parseSingle(input)
		if !ok {
			break
		}
		input = rest
		nodes = append(nodes, node)
	}
	if count >= 0 && len(nodes) != count {
		return input, nil, false
	}
	return input, nodes, true
}

// word consumes a bunch of characters that are not separated by whitespace
// or meaningful punctuation. Identifiers, symbols, and ints are words. Words
// may be invalid because they contain non-ASCII or non-alphanumeric
// characters; those become Error nodes in the callers.
func word(input string) (string, string, bool) {
	var b strings.Builder
	for len(input) > 0 {
		c, size := utf8.DecodeRuneInString(input)
		if unicode.IsSpace(c) || strings.ContainsRune(meaningfulPunctuation, c) {
			break
		}
		b.WriteRune(c)
		input = input[size:]
	}
	if b.Len() == 0 {
		return input, "", false
	}
	return input, b.String(), true
}

func isAsciiWordRune(c rune) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isAsciiWord(w string) bool {
	for _, c := range w {
		if !isAsciiWordRune(c) {
			return false
		}
	}
	return true
}

// builtinsIdentifier refers to the struct of all builtins.
const builtinsIdentifier = "✨"

func identifier(input string) (string, cst.Node, bool) {
	rest, w, ok := word(input)
	if !ok {
		return input, nil, false
	}
	if w == builtinsIdentifier {
		return rest, &cst.Identifier{Value: w}, true
	}
	first, _ := utf8.DecodeRuneInString(w)
	if !unicode.IsLower(first) && first != '_' {
		return input, nil, false
	}
	if isAsciiWord(w) {
		return rest, &cst.Identifier{Value: w}, true
	}
	return rest, &cst.Error{
		UnparsableInput: w,
		Kind:            cst.IdentifierContainsNonAlphanumericAscii,
	}, true
}

func symbol(input string) (string, cst.Node, bool) {
	rest, w, ok := word(input)
	if !ok {
		return input, nil, false
	}
	first, _ := utf8.DecodeRuneInString(w)
	if !unicode.IsUpper(first) {
		return input, nil, false
	}
	if isAsciiWord(w) {
		return rest, &cst.Symbol{Value: w}, true
	}
	return rest, &cst.Error{
		UnparsableInput: w,
		Kind:            cst.SymbolContainsNonAlphanumericAscii,
	}, true
}

func intLiteral(input string) (string, cst.Node, bool) {
	rest, w, ok := word(input)
	if !ok {
		return input, nil, false
	}
	if w[0] < '0' || w[0] > '9' {
		return input, nil, false
	}
	for _, c := range w {
		if c < '0' || c > '9' {
			return rest, &cst.Error{
				UnparsableInput: w,
				Kind:            cst.IntContainsNonDigits,
			}, true
		}
	}
	value, _ := new(big.Int).SetString(w, 10)
	return rest, &cst.Int{Value: value, Text: w}, true
}

// singleLineWhitespace consumes horizontal whitespace. Only plain spaces are
// supported; tabs are consumed but tagged as weird. Other whitespace
// characters are not consumed.
func singleLineWhitespace(input string) (string, cst.Node, bool) {
	var b strings.Builder
	hasError := false
	for len(input) > 0 {
		c, size := utf8.DecodeRuneInString(input)
		if c == ' ' {
			// Plain space.
		} else if strings.ContainsRune(supportedWhitespace, c) && c != '\n' && c != '\r' {
			hasError = true
		} else {
			break
		}
		b.WriteRune(c)
		input = input[size:]
	}
	whitespace := b.String()
	if hasError {
		return input, &cst.Error{
			UnparsableInput: whitespace,
			Kind:            cst.WeirdWhitespace,
		}, true
	}
	if whitespace != "" {
		return input, &cst.Whitespace{Value: whitespace}, true
	}
	return input, nil, false
}

func comment(input string) (string, cst.Node, bool) {
	input, octothorpe, ok := octothorpe(input)
	if !ok {
		return input, nil, false
	}
	var b strings.Builder
	for len(input) > 0 {
		c, size := utf8.DecodeRuneInString(input)
		if c == '\n' || c == '\r' {
			break
		}
		b.WriteRune(c)
		input = input[size:]
	}
	return input, &cst.Comment{Octothorpe: octothorpe, Text: b.String()}, true
}
