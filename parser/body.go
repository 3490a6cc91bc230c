package parser

import (
	"github.com/toffee-lang/toffee/parser/cst"
)

// parseBody parses a sequence of expressions at the given indentation,
// accumulating expressions and the trivia between them into a flat list.
// When an expression can't be parsed, it recovers by consuming a single
// stray punctuation token so the enclosing construct can continue.
func parseBody(input string, indentation int) (string, []cst.Node) {
	var expressions []cst.Node

	expressionsInLastIteration := -1
	for expressionsInLastIteration < len(expressions) {
		expressionsInLastIteration = len(expressions)

		newInput, whitespace := whitespacesAndNewlines(input, indentation, true)
		input = newInput
		expressions = append(expressions, whitespace...)

		indentation := indentation
		if rest, unexpectedWhitespace, ok := singleLineWhitespace(input); ok {
			input = rest
			var value string
			switch node := unexpectedWhitespace.(type) {
			case *cst.Whitespace:
				value = node.Value
			case *cst.Error:
				value = node.UnparsableInput
			}
			indentation += whitespaceIndentationScore(value) / 2
			expressions = append(expressions, &cst.Error{
				UnparsableInput: value,
				Kind:            cst.TooMuchWhitespace,
			})
		}

		if rest, expression, ok := parseExpression(input, indentation, true, true, true); ok {
			input = rest
			whitespace, expression := splitOuterTrailingWhitespace(expression)
			expressions = append(expressions, expression)
			expressions = append(expressions, whitespace...)
		} else if rest, stray, ok := parseStrayPunctuation(newInput); ok {
			input = rest
			expressions = append(expressions, stray)
		}
	}
	return input, expressions
}

func parseStrayPunctuation(input string) (string, cst.Node, bool) {
	if rest, node, ok := colon(input); ok {
		return rest, node, true
	}
	if rest, node, ok := comma(input); ok {
		return rest, node, true
	}
	return parseClosingPunctuation(input)
}

func matchCase(input string, indentation int) (string, cst.Node, bool) {
	input, pattern, ok := parseExpression(input, indentation, false, true, true)
	if !ok {
		return input, nil, false
	}
	input, whitespace := whitespacesAndNewlines(input, indentation, true)
	pattern = wrapInWhitespace(pattern, whitespace)

	var arrowNode cst.Node
	if rest, node, ok := arrow(input); ok {
		rest, whitespace := whitespacesAndNewlines(rest, indentation, true)
		input = rest
		arrowNode = wrapInWhitespace(node, whitespace)
	} else {
		arrowNode = &cst.Error{Kind: cst.MatchCaseMissesArrow}
	}

	input, body := parseBody(input, indentation+1)
	if len(body) == 0 {
		body = append(body, &cst.Error{Kind: cst.MatchCaseMissesBody})
	}

	return input, &cst.MatchCase{
		Pattern: pattern,
		Arrow:   arrowNode,
		Body:    body,
	}, true
}

// lambda parses `{ params? -> body }`. Parameters are a sequence of
// primaries followed by an arrow; when no arrow is found, the parser rewinds
// to just after the brace and treats the contents as a body.
func lambda(input string, indentation int) (string, cst.Node, bool) {
	input, openingBrace, ok := openingCurlyBrace(input)
	if !ok {
		return input, nil, false
	}

	var parameters []cst.Node
	var arrowNode cst.Node
	{
		inputWithoutParams := input
		openingBraceWithoutParams := openingBrace

		for {
			i, whitespace := whitespacesAndNewlines(input, indentation+1, true)
			if len(parameters) > 0 {
				parameters[len(parameters)-1] = wrapInWhitespace(parameters[len(parameters)-1], whitespace)
			} else {
				openingBrace = wrapInWhitespace(openingBrace, whitespace)
			}

			input = i
			rest, parameter, ok := parseExpression(input, indentation+1, false, false, false)
			if !ok {
				break
			}
			input = rest
			parameters = append(parameters, parameter)
		}
		if rest, node, ok := arrow(input); ok {
			input = rest
			arrowNode = node
		} else {
			input = inputWithoutParams
			openingBrace = openingBraceWithoutParams
			parameters = nil
		}
	}

	input, whitespace := whitespacesAndNewlines(input, indentation+1, true)
	if arrowNode != nil {
		arrowNode = wrapInWhitespace(arrowNode, whitespace)
	} else {
		openingBrace = wrapInWhitespace(openingBrace, whitespace)
	}

	var body []cst.Node
	var whitespaceBeforeClosingBrace []cst.Node
	var closingBrace cst.Node
	{
		inputBeforeParsingExpression := input
		rest, expression, ok := parseExpression(input, indentation+1, true, true, true)
		var bodyExpression []cst.Node
		if ok {
			input = rest
			bodyExpression = []cst.Node{expression}
		}
		rest, ws := whitespacesAndNewlines(input, indentation+1, true)
		if newRest, brace, ok := closingCurlyBrace(rest); ok {
			input = newRest
			body = bodyExpression
			whitespaceBeforeClosingBrace = ws
			closingBrace = brace
		} else {
			// There is no closing brace after a single expression. Thus, we
			// now try to parse a body of multiple expressions. We didn't try
			// this first because then the body would also have consumed any
			// trailing closing curly brace in the same line. For example, for
			// the lambda `{ 2 }`, the body parser would have already consumed
			// the `}`. The body parser works great for multiline bodies,
			// though.
			rest, multiBody := parseBody(inputBeforeParsingExpression, indentation+1)
			inputAfterBody := rest
			rest, ws := whitespacesAndNewlines(rest, indentation, true)
			if newRest, brace, ok := closingCurlyBrace(rest); ok {
				input = newRest
				body = multiBody
				whitespaceBeforeClosingBrace = ws
				closingBrace = brace
			} else {
				input = inputAfterBody
				body = multiBody
				closingBrace = &cst.Error{Kind: cst.CurlyBraceNotClosed}
			}
		}
	}

	// Attach the whitespace that sits before the closing curly brace.
	if len(body) > 0 {
		body = append(body, whitespaceBeforeClosingBrace...)
	} else if arrowNode != nil {
		arrowNode = wrapInWhitespace(arrowNode, whitespaceBeforeClosingBrace)
	} else {
		openingBrace = wrapInWhitespace(openingBrace, whitespaceBeforeClosingBrace)
	}

	return input, &cst.Lambda{
		OpeningCurlyBrace: openingBrace,
		Parameters:        parameters,
		Arrow:             arrowNode,
		Body:              body,
		ClosingCurlyBrace: closingBrace,
	}, true
}
