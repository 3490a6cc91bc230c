package parser

import (
	"github.com/toffee-lang/toffee/parser/cst"
)

// parseExpression parses a single expression. The flags restrict which
// suffixes may extend it; callers use them to control how far to parse. They
// are parameters by design, not ambient state.
func parseExpression(
	input string,
	indentation int,
	allowAssignment, allowCall, allowBar bool,
) (string, cst.Node, bool) {
	rest, result, ok := parsePrimary(input, indentation)
	if !ok {
		return input, nil, false
	}
	input = rest

	for {
		didMakeProgress := false

		if rest, suffixed, ok := suffixStructAccess(input, result, indentation); ok {
			input, result = rest, suffixed
			didMakeProgress = true
		}

		if allowCall {
			if rest, suffixed, ok := suffixCall(input, result, indentation); ok {
				input, result = rest, suffixed
				didMakeProgress = true
			}
		}
		if allowBar {
			if rest, suffixed, ok := suffixBar(input, result, indentation); ok {
				input, result = rest, suffixed
				didMakeProgress = true
			}
			if rest, suffixed, ok := suffixMatch(input, result, indentation); ok {
				input, result = rest, suffixed
				didMakeProgress = true
			}
		}
		if allowAssignment {
			if rest, suffixed, ok := suffixAssignment(input, result, indentation); ok {
				input, result = rest, suffixed
				didMakeProgress = true
			}
		}

		if !didMakeProgress {
			break
		}
	}
	return input, result, true
}

func parsePrimary(input string, indentation int) (string, cst.Node, bool) {
	if rest, node, ok := intLiteral(input); ok {
		return rest, node, true
	}
	if rest, node, ok := text(input, indentation); ok {
		return rest, node, true
	}
	if rest, node, ok := symbol(input); ok {
		return rest, node, true
	}
	if rest, node, ok := list(input, indentation); ok {
		return rest, node, true
	}
	if rest, node, ok := parseStruct(input, indentation); ok {
		return rest, node, true
	}
	if rest, node, ok := parenthesized(input, indentation); ok {
		return rest, node, true
	}
	if rest, node, ok := lambda(input, indentation); ok {
		return rest, node, true
	}
	if rest, node, ok := identifier(input); ok {
		return rest, node, true
	}
	if rest, w, ok := word(input); ok {
		return rest, &cst.Error{
			UnparsableInput: w,
			Kind:            cst.UnexpectedCharacters,
		}, true
	}
	return input, nil, false
}

// suffixStructAccess parses `.key`. The dot may sit on a continuation line
// that is indented one level deeper.
func suffixStructAccess(input string, current cst.Node, indentation int) (string, cst.Node, bool) {
	input, whitespaceAfterStruct := whitespacesAndNewlines(input, indentation+1, true)

	input, dot, ok := dot(input)
	if !ok {
		return input, nil, false
	}
	newInput, whitespaceAfterDot := whitespacesAndNewlines(input, indentation+1, true)
	dot = wrapInWhitespace(dot, whitespaceAfterDot)

	input, key, ok := identifier(newInput)
	if !ok {
		return input, nil, false
	}

	return input, &cst.StructAccess{
		Struct: wrapInWhitespace(current, whitespaceAfterStruct),
		Dot:    dot,
		Key:    key,
	}, true
}

// suffixCall parses juxtaposed arguments. Within a single line, arguments
// may not themselves be calls or pipes; once a separator crosses a newline
// with a deeper indent, both are allowed.
func suffixCall(input string, current cst.Node, indentation int) (string, cst.Node, bool) {
	expressions := []cst.Node{current}

	hasMultilineWhitespace := false
	for {
		i, whitespace := whitespacesAndNewlines(input, indentation+1, true)
		hasMultilineWhitespace = hasMultilineWhitespace || cst.AnyMultiline(whitespace)
		argumentIndentation := indentation
		if hasMultilineWhitespace {
			argumentIndentation = indentation + 1
		}
		last := len(expressions) - 1
		expressions[last] = wrapInWhitespace(expressions[last], whitespace)

		rest, expr, ok := parseExpression(
			i,
			argumentIndentation,
			false,
			hasMultilineWhitespace,
			hasMultilineWhitespace,
		)
		if !ok {
			rest, expr, ok = parseClosingPunctuation(i)
			if !ok || !hasMultilineWhitespace {
				input = i
				break
			}
		}

		expressions = append(expressions, expr)
		input = rest
	}

	if len(expressions) < 2 {
		return input, nil, false
	}

	whitespace, expressions := splitOuterTrailingWhitespaceAll(expressions)
	call := &cst.Call{
		Receiver:  expressions[0],
		Arguments: expressions[1:],
	}
	return input, wrapInWhitespace(call, whitespace), true
}

// parseClosingPunctuation absorbs a stray closing token so that a multiline
// call can recover and its enclosing construct can continue.
func parseClosingPunctuation(input string) (string, cst.Node, bool) {
	if rest, node, ok := closingParenthesis(input); ok {
		return rest, node, true
	}
	if rest, node, ok := closingBracket(input); ok {
		return rest, node, true
	}
	if rest, node, ok := closingCurlyBrace(input); ok {
		return rest, node, true
	}
	if rest, node, ok := arrow(input); ok {
		return rest, node, true
	}
	return input, nil, false
}

// suffixBar parses the left-associative `|` pipeline. The right side is
// parsed with allowBar unset, so chains only grow through the suffix loop.
func suffixBar(input string, current cst.Node, indentation int) (string, cst.Node, bool) {
	input, whitespaceAfterReceiver := whitespacesAndNewlines(input, indentation, true)

	input, barNode, ok := bar(input)
	if !ok {
		return input, nil, false
	}
	input, whitespaceAfterBar := whitespacesAndNewlines(input, indentation+1, true)
	barNode = wrapInWhitespace(barNode, whitespaceAfterBar)

	rightIndentation := indentation
	if cst.IsMultiline(barNode) {
		rightIndentation = indentation + 1
	}
	rest, right, ok := parseExpression(input, rightIndentation, false, true, false)
	if !ok {
		right = &cst.Error{Kind: cst.BinaryBarMissesRight}
		rest = input
	}

	return rest, &cst.BinaryBar{
		Left:  wrapInWhitespace(current, whitespaceAfterReceiver),
		Bar:   barNode,
		Right: right,
	}, true
}

func suffixMatch(input string, current cst.Node, indentation int) (string, cst.Node, bool) {
	input, whitespaceAfterReceiver := whitespacesAndNewlines(input, indentation, true)
	input, percentNode, ok := percent(input)
	if !ok {
		return input, nil, false
	}
	input, whitespace := whitespacesAndNewlines(input, indentation+1, true)
	percentNode = wrapInWhitespace(percentNode, whitespace)

	var cases []cst.Node
	for {
		newInput, matchCase, ok := matchCase(input, indentation+1)
		if !ok {
			break
		}
		newInput, whitespace := whitespacesAndNewlines(newInput, indentation+1, true)
		input = newInput
		isWhitespaceMultiline := cst.AnyMultiline(whitespace)
		cases = append(cases, wrapInWhitespace(matchCase, whitespace))
		if !isWhitespaceMultiline {
			break
		}
	}
	if len(cases) == 0 {
		cases = append(cases, &cst.Error{Kind: cst.MatchMissesCases})
	}

	return input, &cst.Match{
		Expression: wrapInWhitespace(current, whitespaceAfterReceiver),
		Percent:    percentNode,
		Cases:      cases,
	}, true
}

func suffixAssignment(input string, left cst.Node, indentation int) (string, cst.Node, bool) {
	input, whitespaceAfterLeft := whitespacesAndNewlines(input, indentation, true)
	rest, assignmentSign, ok := colonEqualsSign(input)
	if !ok {
		rest, assignmentSign, ok = equalsSign(input)
	}
	if !ok {
		return input, nil, false
	}
	input = rest

	// By now, it's clear that we are in an assignment, so we can do more
	// expensive operations. We also save some state in case the assignment
	// is invalid (so we can stop parsing right after the assignment sign).
	left = wrapInWhitespace(left, whitespaceAfterLeft)
	justTheAssignmentSign := assignmentSign
	inputAfterAssignmentSign := input

	input, moreWhitespace := whitespacesAndNewlines(input, indentation+1, false)
	wrappedSign := wrapInWhitespace(assignmentSign, moreWhitespace)

	isMultiline := cst.IsMultiline(left) || cst.IsMultiline(wrappedSign)
	var bodyNodes []cst.Node
	if isMultiline {
		rest, body := parseBody(input, indentation+1)
		if len(body) == 0 {
			input = inputAfterAssignmentSign
			wrappedSign = justTheAssignmentSign
		} else {
			input = rest
			bodyNodes = body
		}
	} else {
		rest := input
		if newRest, expression, ok := parseExpression(rest, indentation, false, true, true); ok {
			rest = newRest
			bodyNodes = append(bodyNodes, expression)
			if newRest, whitespace, ok := singleLineWhitespace(rest); ok {
				rest = newRest
				bodyNodes = append(bodyNodes, whitespace)
			}
		}
		if newRest, commentNode, ok := comment(rest); ok {
			rest = newRest
			bodyNodes = append(bodyNodes, commentNode)
		}

		if len(bodyNodes) == 0 {
			input = inputAfterAssignmentSign
			wrappedSign = justTheAssignmentSign
		} else {
			input = rest
		}
	}

	var whitespace []cst.Node
	if len(bodyNodes) > 0 {
		whitespace, bodyNodes = splitOuterTrailingWhitespaceAll(bodyNodes)
	} else {
		whitespace, wrappedSign = splitOuterTrailingWhitespace(wrappedSign)
	}
	assignment := &cst.Assignment{
		Left:           left,
		AssignmentSign: wrappedSign,
		Body:           bodyNodes,
	}
	return input, wrapInWhitespace(assignment, whitespace), true
}
