package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/toffee-lang/toffee/parser/cst"
)

// whitespaceIndentationScore measures leading whitespace: a space counts
// one, a tab two. One indentation level corresponds to a score of two.
func whitespaceIndentationScore(whitespace string) int {
	score := 0
	for _, c := range whitespace {
		if c == '\t' {
			score += 2
		} else {
			score++
		}
	}
	return score
}

// wrapInWhitespace attaches trivia to a node. An existing wrapper absorbs
// further trivia instead of nesting. The input node is never mutated; suffix
// parsers retry with the same node after a failed attempt.
func wrapInWhitespace(node cst.Node, whitespace []cst.Node) cst.Node {
	if len(whitespace) == 0 {
		return node
	}
	if trailing, ok := node.(*cst.TrailingWhitespace); ok {
		merged := make([]cst.Node, 0, len(trailing.Whitespace)+len(whitespace))
		merged = append(merged, trailing.Whitespace...)
		merged = append(merged, whitespace...)
		return &cst.TrailingWhitespace{Child: trailing.Child, Whitespace: merged}
	}
	return &cst.TrailingWhitespace{Child: node, Whitespace: whitespace}
}

// splitOuterTrailingWhitespace unwraps a node's trailing trivia so that it
// can be reattached further out, e.g. around a whole call instead of its
// last argument.
func splitOuterTrailingWhitespace(node cst.Node) ([]cst.Node, cst.Node) {
	if trailing, ok := node.(*cst.TrailingWhitespace); ok {
		return trailing.Whitespace, trailing.Child
	}
	return nil, node
}

// splitOuterTrailingWhitespaceAll does the same for the last node in a
// sequence.
func splitOuterTrailingWhitespaceAll(nodes []cst.Node) ([]cst.Node, []cst.Node) {
	if len(nodes) == 0 {
		return nil, nodes
	}
	whitespace, last := splitOuterTrailingWhitespace(nodes[len(nodes)-1])
	nodes[len(nodes)-1] = last
	return whitespace, nodes
}

// leadingIndentation consumes whitespace until the expected indentation
// score is reached. It does not match when a newline occurs first or the
// line is not sufficiently indented.
func leadingIndentation(input string, indentation int) (string, cst.Node, bool) {
	var b strings.Builder
	hasWeirdWhitespace := false
	score := 0
	for score < 2*indentation {
		if len(input) == 0 {
			return input, nil, false
		}
		c, size := utf8.DecodeRuneInString(input)
		switch {
		case c == ' ':
		case c == '\n' || c == '\r':
			return input, nil, false
		case strings.ContainsRune(supportedWhitespace, c):
			hasWeirdWhitespace = true
		default:
			return input, nil, false
		}
		b.WriteRune(c)
		score += whitespaceIndentationScore(string(c))
		input = input[size:]
	}
	whitespace := b.String()
	if hasWeirdWhitespace {
		return input, &cst.Error{
			UnparsableInput: whitespace,
			Kind:            cst.WeirdWhitespaceInIndentation,
		}, true
	}
	return input, &cst.Whitespace{Value: whitespace}, true
}

// whitespacesAndNewlines consumes all leading whitespace (including
// newlines) and optionally comments that are still within the given
// indentation. It won't consume a newline followed by less-indented
// whitespace followed by non-whitespace stuff like an expression; that is
// how a construct notices that a following line no longer belongs to it.
func whitespacesAndNewlines(input string, indentation int, alsoComments bool) (string, []cst.Node) {
	var parts []cst.Node

	if rest, whitespace, ok := singleLineWhitespace(input); ok {
		input = rest
		parts = append(parts, whitespace)
	}

	newInput := input
	var newParts []cst.Node
	isSufficientlyIndented := true
	for {
		inputAtIterationStart := newInput

		if alsoComments && isSufficientlyIndented {
			if rest, comment, ok := comment(newInput); ok {
				newInput = rest
				newParts = append(newParts, comment)

				input = newInput
				parts = append(parts, newParts...)
				newParts = nil
			}
		}

		if rest, nl, ok := newline(newInput); ok {
			newInput = rest
			newParts = append(newParts, nl)
			isSufficientlyIndented = false
		}

		if rest, whitespace, ok := leadingIndentation(newInput, indentation); ok {
			newInput = rest
			newParts = append(newParts, whitespace)

			input = newInput
			parts = append(parts, newParts...)
			newParts = nil
			isSufficientlyIndented = true
		} else if rest, whitespace, ok := singleLineWhitespace(newInput); ok {
			newInput = rest
			newParts = append(newParts, whitespace)
		}

		if newInput == inputAtIterationStart {
			break
		}
	}

	filtered := parts[:0]
	for _, part := range parts {
		if whitespace, ok := part.(*cst.Whitespace); ok && whitespace.Value == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return input, filtered
}
