package parser

import (
	"strings"

	"github.com/toffee-lang/toffee/parser/cst"
)

// list parses a parenthesized, comma-separated list. At least one comma is
// required; `(foo)` is a Parenthesized, `(foo,)` a singleton List, and `(,)`
// the empty List.
func list(input string, indentation int) (string, cst.Node, bool) {
	input, opening, ok := openingParenthesis(input)
	if !ok {
		return input, nil, false
	}

	// Empty list `(,)`.
	{
		rest, leadingWhitespace := whitespacesAndNewlines(input, indentation+1, true)
		wrappedOpening := wrapInWhitespace(opening, leadingWhitespace)
		if rest, commaNode, ok := comma(rest); ok {
			rest, trailingWhitespace := whitespacesAndNewlines(rest, indentation+1, true)
			commaNode = wrapInWhitespace(commaNode, trailingWhitespace)
			if rest, closing, ok := closingParenthesis(rest); ok {
				return rest, &cst.List{
					OpeningParenthesis: wrappedOpening,
					Items:              []cst.Node{commaNode},
					ClosingParenthesis: closing,
				}, true
			}
		}
	}

	var items []cst.Node
	itemsIndentation := indentation
	hasAtLeastOneComma := false
	for {
		// Whitespace before the value.
		newInput, whitespace := whitespacesAndNewlines(input, indentation+1, true)
		if cst.AnyMultiline(whitespace) {
			itemsIndentation = indentation + 1
		}
		if len(items) == 0 {
			opening = wrapInWhitespace(opening, whitespace)
		} else {
			items[len(items)-1] = wrapInWhitespace(items[len(items)-1], whitespace)
		}
		input = newInput

		// Value.
		newInput, value, hasValue := parseExpression(newInput, itemsIndentation, false, true, true)
		if !hasValue {
			value = &cst.Error{Kind: cst.ListItemMissesValue}
		}

		// Whitespace between value and comma.
		newInput, whitespace = whitespacesAndNewlines(newInput, itemsIndentation+1, true)
		if cst.AnyMultiline(whitespace) {
			itemsIndentation = indentation + 1
		}
		value = wrapInWhitespace(value, whitespace)

		// Comma.
		newInput, commaNode, hasComma := comma(newInput)
		if !hasComma {
			commaNode = nil
		}

		if !hasValue && !hasComma {
			break
		}
		hasAtLeastOneComma = hasAtLeastOneComma || hasComma

		input = newInput
		items = append(items, &cst.ListItem{Value: value, Comma: commaNode})
	}
	if !hasAtLeastOneComma {
		return input, nil, false
	}

	newInput, whitespace := whitespacesAndNewlines(input, indentation, true)

	var closing cst.Node
	if rest, closingNode, ok := closingParenthesis(newInput); ok {
		if len(items) == 0 {
			opening = wrapInWhitespace(opening, whitespace)
		} else {
			items[len(items)-1] = wrapInWhitespace(items[len(items)-1], whitespace)
		}
		input = rest
		closing = closingNode
	} else {
		closing = &cst.Error{Kind: cst.ListNotClosed}
	}

	return input, &cst.List{
		OpeningParenthesis: opening,
		Items:              items,
		ClosingParenthesis: closing,
	}, true
}

// parseStruct parses a bracketed collection of fields, each of them either
// `key: value` or a shorthand naming only a value.
func parseStruct(input string, indentation int) (string, cst.Node, bool) {
	outerInput, opening, ok := openingBracket(input)
	if !ok {
		return input, nil, false
	}

	var fields []cst.Node
	fieldsIndentation := indentation
	for {
		input := outerInput

		// Whitespace before the key.
		input, whitespace := whitespacesAndNewlines(input, indentation+1, true)
		if cst.AnyMultiline(whitespace) {
			fieldsIndentation = indentation + 1
		}
		if len(fields) == 0 {
			opening = wrapInWhitespace(opening, whitespace)
		} else {
			fields[len(fields)-1] = wrapInWhitespace(fields[len(fields)-1], whitespace)
		}
		outerInput = input

		// The key if it's explicit, or the value when using a shorthand.
		input, keyOrValue, hasKeyOrValue := parseExpression(input, fieldsIndentation, false, true, true)

		// Whitespace between key/value and colon.
		input, keyOrValueWhitespace := whitespacesAndNewlines(input, fieldsIndentation+1, true)
		if cst.AnyMultiline(keyOrValueWhitespace) {
			fieldsIndentation = indentation + 1
		}

		// Colon, unless it starts a colon-equals sign.
		var colonNode cst.Node
		hasColon := false
		if !strings.HasPrefix(input, ":=") {
			if rest, node, ok := colon(input); ok {
				input = rest
				colonNode = node
				hasColon = true
			}
		}
		if !hasColon {
			colonNode = &cst.Error{Kind: cst.StructFieldMissesColon}
		}

		// Whitespace between colon and value.
		input, whitespace = whitespacesAndNewlines(input, fieldsIndentation+1, true)
		if cst.AnyMultiline(whitespace) {
			fieldsIndentation = indentation + 1
		}
		colonNode = wrapInWhitespace(colonNode, whitespace)

		// Value.
		input, value, hasValue := parseExpression(input, fieldsIndentation+1, false, true, true)
		if !hasValue {
			value = &cst.Error{Kind: cst.StructFieldMissesValue}
		}

		// Whitespace between value and comma.
		input, whitespace = whitespacesAndNewlines(input, fieldsIndentation+1, true)
		if cst.AnyMultiline(whitespace) {
			fieldsIndentation = indentation + 1
		}
		value = wrapInWhitespace(value, whitespace)

		// Comma.
		input, commaNode, hasComma := comma(input)
		if !hasComma {
			commaNode = nil
		}

		if !hasKeyOrValue && !hasValue && !hasComma {
			break
		}

		isUsingShorthand := hasKeyOrValue && !hasColon && !hasValue
		if !hasKeyOrValue {
			kind := cst.StructFieldMissesKey
			if isUsingShorthand {
				kind = cst.StructFieldMissesValue
			}
			keyOrValue = &cst.Error{Kind: kind}
		}
		keyOrValue = wrapInWhitespace(keyOrValue, keyOrValueWhitespace)

		outerInput = input
		var field *cst.StructField
		if isUsingShorthand {
			field = &cst.StructField{Value: keyOrValue, Comma: commaNode}
		} else {
			field = &cst.StructField{
				Key:   keyOrValue,
				Colon: colonNode,
				Value: value,
				Comma: commaNode,
			}
		}
		fields = append(fields, field)
	}
	input = outerInput

	newInput, whitespace := whitespacesAndNewlines(input, indentation, true)

	var closing cst.Node
	if rest, closingNode, ok := closingBracket(newInput); ok {
		if len(fields) == 0 {
			opening = wrapInWhitespace(opening, whitespace)
		} else {
			fields[len(fields)-1] = wrapInWhitespace(fields[len(fields)-1], whitespace)
		}
		input = rest
		closing = closingNode
	} else {
		closing = &cst.Error{Kind: cst.StructNotClosed}
	}

	return input, &cst.Struct{
		OpeningBracket: opening,
		Fields:         fields,
		ClosingBracket: closing,
	}, true
}

func parenthesized(input string, indentation int) (string, cst.Node, bool) {
	input, opening, ok := openingParenthesis(input)
	if !ok {
		return input, nil, false
	}

	input, whitespace := whitespacesAndNewlines(input, indentation+1, true)
	innerIndentation := indentation
	if cst.AnyMultiline(whitespace) {
		innerIndentation = indentation + 1
	}
	opening = wrapInWhitespace(opening, whitespace)

	rest, inner, ok := parseExpression(input, innerIndentation, false, true, true)
	if !ok {
		inner = &cst.Error{Kind: cst.OpeningParenthesisMissesExpression}
		rest = input
	}
	input = rest

	input, whitespace = whitespacesAndNewlines(input, indentation, true)
	inner = wrapInWhitespace(inner, whitespace)

	rest, closing, ok := closingParenthesis(input)
	if !ok {
		closing = &cst.Error{Kind: cst.ParenthesisNotClosed}
		rest = input
	}
	input = rest

	return input, &cst.Parenthesized{
		OpeningParenthesis: opening,
		Inner:              inner,
		ClosingParenthesis: closing,
	}, true
}
