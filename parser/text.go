package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/toffee-lang/toffee/parser/cst"
)

func textInterpolation(input string, indentation, curlyBraceCount int) (string, cst.Node, bool) {
	input, openingCurlyBraces, ok := parseMultiple(input, openingCurlyBrace, curlyBraceCount, true)
	if !ok {
		return input, nil, false
	}

	input, whitespace := whitespacesAndNewlines(input, indentation+1, false)
	last := len(openingCurlyBraces) - 1
	openingCurlyBraces[last] = wrapInWhitespace(openingCurlyBraces[last], whitespace)

	rest, expression, ok := parseExpression(input, indentation+1, false, true, true)
	if !ok {
		expression = &cst.Error{Kind: cst.TextInterpolationMissesExpression}
		rest = input
	}
	input = rest

	input, whitespace = whitespacesAndNewlines(input, indentation+1, false)
	expression = wrapInWhitespace(expression, whitespace)

	rest, closingCurlyBraces, ok := parseMultiple(input, closingCurlyBrace, curlyBraceCount, false)
	if !ok {
		closingCurlyBraces = []cst.Node{
			&cst.Error{Kind: cst.TextInterpolationNotClosed},
		}
		rest = input
	}
	input = rest

	return input, &cst.TextInterpolation{
		OpeningCurlyBraces: openingCurlyBraces,
		Expression:         expression,
		ClosingCurlyBraces: closingCurlyBraces,
	}, true
}

// text parses a text literal. It is opened by a run of single quotes
// followed by a double quote; the closing must repeat the same number of
// single quotes, and interpolations use one more curly brace than that
// count. This admits raw texts and texts nested in interpolations.
func text(input string, indentation int) (string, cst.Node, bool) {
	input, openingSingleQuotes, ok := parseMultiple(input, singleQuote, -1, false)
	if !ok {
		return input, nil, false
	}
	input, openingDoubleQuote, ok := doubleQuote(input)
	if !ok {
		return input, nil, false
	}

	var line strings.Builder
	var parts []cst.Node
	pushLine := func() {
		if line.Len() > 0 {
			parts = append(parts, &cst.TextPart{Value: line.String()})
			line.Reset()
		}
	}

	var closing cst.Node
scan:
	for {
		if len(input) == 0 {
			pushLine()
			closing = &cst.Error{Kind: cst.TextNotClosed}
			break
		}
		c, size := utf8.DecodeRuneInString(input)
		switch c {
		case '"':
			rest := input[1:]
			rest, closingSingleQuotes, ok := parseMultiple(rest, singleQuote, len(openingSingleQuotes), false)
			if ok {
				input = rest
				pushLine()
				closing = &cst.ClosingText{
					ClosingDoubleQuote:  &cst.DoubleQuote{},
					ClosingSingleQuotes: closingSingleQuotes,
				}
				break scan
			}
			input = input[1:]
			line.WriteRune('"')
		case '{':
			rest, interpolation, ok := textInterpolation(input, indentation, len(openingSingleQuotes)+1)
			if ok {
				pushLine()
				input = rest
				parts = append(parts, interpolation)
			} else {
				input = input[1:]
				line.WriteRune('{')
			}
		case '\n':
			pushLine()
			rest, whitespace := whitespacesAndNewlines(input, indentation+1, false)
			input = rest
			parts = append(parts, whitespace...)
			if strings.HasPrefix(input, "\n") {
				closing = &cst.Error{Kind: cst.TextNotSufficientlyIndented}
				break scan
			}
		default:
			input = input[size:]
			line.WriteRune(c)
		}
	}

	return input, &cst.Text{
		Opening: &cst.OpeningText{
			OpeningSingleQuotes: openingSingleQuotes,
			OpeningDoubleQuote:  openingDoubleQuote,
		},
		Parts:   parts,
		Closing: closing,
	}, true
}
