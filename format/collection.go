package format

import (
	"github.com/toffee-lang/toffee/parser/cst"
)

// trailingCommaCondition decides whether an item keeps or gains a trailing
// comma: always (struct fields and all list items when multiline), or only
// when the item would no longer fit in the remaining room on one line.
type trailingCommaCondition struct {
	always       bool
	unlessFitsIn int
}

func alwaysTrailingComma() trailingCommaCondition {
	return trailingCommaCondition{always: true}
}

func unlessFitsIn(maxWidth int) trailingCommaCondition {
	return trailingCommaCondition{unlessFitsIn: maxWidth}
}

// formatCollection lays out lists (parenthesized) and structs (bracketed):
// single line without a trailing comma when everything fits, otherwise one
// item per line with trailing commas.
func formatCollection(
	edits *TextEdits,
	previousWidth Width,
	openingPunctuation cst.Node,
	items []cst.Node,
	closingPunctuation cst.Node,
	isCommaRequiredForSingleItem bool,
	info formattingInfo,
) FormattedCst {
	opening := formatCst(edits, previousWidth, openingPunctuation, info)
	closing := formatCst(edits, multiline(info.indentation.width()), closingPunctuation, info)

	minWidth := sumWidths(
		singleline(info.indentation.width()),
		opening.minWidth(info.indentation),
		closing.minWidth(info.indentation),
	)
	previousWidthForItems := multiline(info.indentation.withIndent().width())
	itemInfo := info.withIndent().withTrailingCommaCondition(alwaysTrailingComma())
	formattedItems := make([]FormattedCst, len(items))
	for index, item := range items {
		isSingleItem := len(items) == 1
		isLastItem := index == len(items)-1

		isCommaRequired := (isSingleItem && isCommaRequiredForSingleItem) ||
			!isLastItem || cst.HasComments(item)
		currentInfo := itemInfo
		if !isCommaRequired && minWidth.isSingleline() {
			// We're looking at the last item and everything might fit in one
			// line.
			maxWidth := MaxColumn - minWidth.cols
			currentInfo = itemInfo.withTrailingCommaCondition(unlessFitsIn(maxWidth))
		}
		formatted := formatCst(edits, previousWidthForItems, item, currentInfo)

		itemMinWidth := formatted.minWidth(currentInfo.indentation)
		if minWidth.isSingleline() && itemMinWidth.isSingleline() {
			itemCols := itemMinWidth.cols
			maxCols := MaxColumn
			if !isLastItem {
				// One more column for the space after the comma, and the
				// last item needs at least one column of room.
				itemCols++
				maxCols = MaxColumn - 1
			}
			minWidth = widthFromCols(minWidth.cols+itemCols, maxCols)
		} else {
			minWidth = multiline(unknownColumns)
		}

		formattedItems[index] = formatted
	}

	var openingTrailing, itemTrailing, lastItemTrailing trailingWhitespace
	if minWidth.isSingleline() {
		openingTrailing = intoNone()
		itemTrailing = intoSpace()
		lastItemTrailing = intoNone()
	} else {
		openingTrailing = intoIndentation(info.indentation.withIndent())
		itemTrailing = intoIndentation(info.indentation.withIndent())
		lastItemTrailing = intoIndentation(info.indentation)
	}

	width := opening.intoTrailing(edits, openingTrailing)
	for index, item := range formattedItems {
		trailing := itemTrailing
		if index == len(formattedItems)-1 {
			trailing = lastItemTrailing
		}
		width = width.add(item.intoTrailing(edits, trailing))
	}
	closingWidth, whitespace := closing.split()
	return newFormattedCst(width.add(closingWidth), whitespace)
}

// applyTrailingCommaCondition formats an item's comma (or inserts or
// deletes one) according to the condition the enclosing collection put into
// info.
func applyTrailingCommaCondition(
	edits *TextEdits,
	previousWidth Width,
	comma cst.Node,
	fallbackOffset uint32,
	info formattingInfo,
	minWidthExceptComma Width,
) (Width, *ExistingWhitespace) {
	var shouldHaveComma bool
	switch {
	case info.trailingCommaCondition == nil:
		shouldHaveComma = comma != nil
	case info.trailingCommaCondition.always:
		shouldHaveComma = true
	default:
		shouldHaveComma = !minWidthExceptComma.fitsIn(info.trailingCommaCondition.unlessFitsIn)
	}

	if shouldHaveComma {
		if comma != nil {
			formatted := formatCst(edits, previousWidth, comma, info)
			return widthSpace, formatted.whitespace
		}
		edits.Insert(fallbackOffset, ",")
		return widthSpace, emptyWhitespace(fallbackOffset)
	}
	if comma != nil {
		if cst.HasComments(comma) {
			// This last item can't stay on one line anyway, so the comma
			// stays as well.
			formatted := formatCst(edits, previousWidth, comma, info)
			return formatted.split()
		}
		edits.Delete(comma.Span())
		return Width{}, emptyWhitespace(comma.Span().End)
	}
	return Width{}, emptyWhitespace(fallbackOffset)
}
