package format

import (
	"strings"
	"unicode"

	"github.com/toffee-lang/toffee/parser/cst"
)

// formattingInfo is the context a construct is laid out in.
type formattingInfo struct {
	indentation            Indentation
	trailingCommaCondition *trailingCommaCondition
}

func (i formattingInfo) withIndent() formattingInfo {
	return formattingInfo{
		indentation: i.indentation.withIndent(),
		// Only applies to direct descendants.
		trailingCommaCondition: nil,
	}
}

func (i formattingInfo) withTrailingCommaCondition(condition trailingCommaCondition) formattingInfo {
	return formattingInfo{
		indentation:            i.indentation,
		trailingCommaCondition: &condition,
	}
}

// Edits formats the given trees and returns the edit log that rewrites
// their source into canonical form.
func Edits(roots []cst.Node) *TextEdits {
	edits := &TextEdits{}
	formatted := formatCsts(edits, Width{}, roots, 0, formattingInfo{})
	if formatted.width().isEmpty() && !formatted.whitespace.hasComments() {
		formatted.intoEmptyTrailing(edits)
	} else {
		formatted.intoTrailingWithIndentationDetailed(edits, 0, newlinesOne)
	}
	return edits
}

// Format formats the given trees and returns the rewritten source.
func Format(roots []cst.Node) string {
	return Edits(roots).Apply(cst.Source(roots))
}

func isTriviaNode(node cst.Node) bool {
	switch node := node.(type) {
	case *cst.Whitespace, *cst.Newline, *cst.Comment:
		return true
	case *cst.Error:
		return node.Kind == cst.TooMuchWhitespace
	}
	return false
}

// formatCsts lays out a flat expression sequence, e.g. a top level, a
// lambda body, or an assignment body. The trivia between expressions is
// normalized to at most two blank lines.
func formatCsts(
	edits *TextEdits,
	previousWidth Width,
	csts []cst.Node,
	fallbackOffset uint32,
	info formattingInfo,
) FormattedCst {
	offset := fallbackOffset
	var width Width
	formatted := newFormattedCst(Width{}, emptyWhitespace(fallbackOffset))
	for {
		firstExpression := 0
		for firstExpression < len(csts) && isTriviaNode(csts[firstExpression]) {
			firstExpression++
		}
		newWhitespace := newExistingWhitespace(offset, csts[:firstExpression])
		csts = csts[firstExpression:]
		newWhitespace.intoEmptyAndMoveCommentsTo(edits, formatted.whitespace)

		if len(csts) == 0 {
			break
		}
		expression := csts[0]
		csts = csts[1:]

		isAtStart := offset == fallbackOffset
		if isAtStart && !formatted.whitespace.hasComments() {
			width = width.add(formatted.intoEmptyTrailing(edits))
		} else {
			width = width.add(formatted.intoTrailingWithIndentationDetailed(
				edits, info.indentation, newlinesKeep,
			))
		}

		formatted = formatCst(edits, previousWidth.add(width), expression, info)
		offset = formatted.whitespace.endOffset()
	}

	return newFormattedCst(width.add(formatted.width()), formatted.whitespace)
}

// formatCst lays out a single node. The non-trivial cases work in three
// steps, though these are often not clearly separated:
//
//  1. Lay out the children, giving us each child's width and its
//     ExistingWhitespace. In many places (e.g. BinaryBar and Call), the
//     right side is laid out as if a line break were necessary since that's
//     the worst case.
//  2. Check whether we fit in one or multiple lines, based on
//     previousWidth, the child widths, and whether there are comments.
//  3. Tell each ExistingWhitespace whether it should be empty, become a
//     single space, or become a newline with indentation.
//
// previousWidth is the width already reserved on the current line by the
// enclosing context: when formatting the call within `foo | bar baz`, it
// says that two columns are taken by the bar and the space after it.
func formatCst(edits *TextEdits, previousWidth Width, node cst.Node, info formattingInfo) FormattedCst {
	var width Width
	switch node := node.(type) {
	case *cst.EqualsSign, *cst.Comma, *cst.Dot, *cst.Colon, *cst.Bar,
		*cst.OpeningParenthesis, *cst.ClosingParenthesis,
		*cst.OpeningBracket, *cst.ClosingBracket,
		*cst.OpeningCurlyBrace, *cst.ClosingCurlyBrace,
		*cst.SingleQuote, *cst.DoubleQuote, *cst.Percent, *cst.Octothorpe:
		width = singleline(1)
	case *cst.ColonEqualsSign, *cst.Arrow:
		width = singleline(2)
	case *cst.Whitespace, *cst.Newline:
		panic("whitespace and newlines are handled by ExistingWhitespace")
	case *cst.Comment:
		formattedOctothorpe := formatCst(edits, previousWidth, node.Octothorpe, info)

		trimmed := strings.TrimRightFunc(node.Text, unicode.IsSpace)
		edits.Change(cst.Span{Start: node.Octothorpe.Span().End, End: node.Span().End}, trimmed)

		width = formattedOctothorpe.intoEmptyTrailing(edits).add(stringWidth(trimmed))
	case *cst.TrailingWhitespace:
		whitespace := newExistingWhitespace(node.Child.Span().End, node.Whitespace)
		child := formatCst(edits, previousWidth, node.Child, info)
		childWidth := child.intoEmptyAndMoveCommentsTo(edits, whitespace)
		return newFormattedCst(childWidth, whitespace)
	case *cst.Identifier:
		width = stringWidth(node.Value)
	case *cst.Symbol:
		width = stringWidth(node.Value)
	case *cst.Int:
		width = stringWidth(node.Text)
	case *cst.OpeningText:
		// TODO: Format text
		for _, quote := range node.OpeningSingleQuotes {
			width = width.add(formatCst(edits, previousWidth.add(width), quote, info).minWidth(info.indentation))
		}
		width = width.add(formatCst(edits, previousWidth.add(width), node.OpeningDoubleQuote, info).minWidth(info.indentation))
	case *cst.ClosingText:
		// TODO: Format text
		width = formatCst(edits, previousWidth, node.ClosingDoubleQuote, info).minWidth(info.indentation)
		for _, quote := range node.ClosingSingleQuotes {
			width = width.add(formatCst(edits, previousWidth.add(width), quote, info).minWidth(info.indentation))
		}
	case *cst.Text:
		width = formatCst(edits, previousWidth, node.Opening, info).minWidth(info.indentation)
		for _, part := range node.Parts {
			width = width.add(formatCst(edits, previousWidth.add(width), part, info).minWidth(info.indentation))
		}
		width = width.add(formatCst(edits, previousWidth.add(width), node.Closing, info).minWidth(info.indentation))
	case *cst.TextPart:
		width = stringWidth(node.Value)
	case *cst.TextInterpolation:
		for _, brace := range node.OpeningCurlyBraces {
			width = width.add(formatCst(edits, previousWidth.add(width), brace, info).minWidth(info.indentation))
		}
		width = width.add(formatCst(edits, previousWidth.add(width), node.Expression, info).minWidth(info.indentation))
		for _, brace := range node.ClosingCurlyBraces {
			width = width.add(formatCst(edits, previousWidth.add(width), brace, info).minWidth(info.indentation))
		}
	case *cst.BinaryBar:
		return formatBinaryBar(edits, previousWidth, node, info)
	case *cst.Parenthesized:
		return formatParenthesized(edits, previousWidth, node, info)
	case *cst.Call:
		return formatCall(edits, previousWidth, node, info)
	case *cst.List:
		return formatCollection(edits, previousWidth, node.OpeningParenthesis, node.Items, node.ClosingParenthesis, true, info)
	case *cst.ListItem:
		valueEnd := node.Value.Span().End
		value := formatCst(edits, previousWidth, node.Value, info)

		commaWidth, whitespace := applyTrailingCommaCondition(
			edits,
			previousWidth.add(value.width()),
			node.Comma,
			valueEnd,
			info,
			value.minWidth(info.indentation),
		)

		return newFormattedCst(
			value.intoEmptyAndMoveCommentsTo(edits, whitespace).add(commaWidth),
			whitespace,
		)
	case *cst.Struct:
		return formatCollection(edits, previousWidth, node.OpeningBracket, node.Fields, node.ClosingBracket, false, info)
	case *cst.StructField:
		return formatStructField(edits, previousWidth, node, info)
	case *cst.StructAccess:
		return formatStructAccess(edits, previousWidth, node, info)
	case *cst.Match:
		return formatMatch(edits, previousWidth, node, info)
	case *cst.MatchCase:
		return formatMatchCase(edits, previousWidth, node, info)
	case *cst.Lambda:
		return formatLambda(edits, previousWidth, node, info)
	case *cst.Assignment:
		left := formatCst(edits, previousWidth, node.Left, info)
		leftWidth := left.intoTrailingWithSpace(edits)

		previousWidthForInner := multiline(info.indentation.withIndent().width())
		assignmentSign := formatCst(edits, previousWidthForInner, node.AssignmentSign, info.withIndent())

		body := formatCsts(edits, previousWidthForInner, node.Body, assignmentSign.whitespace.endOffset(), info.withIndent())
		bodyWidth := body.intoTrailingWithIndentationDetailed(edits, info.indentation.withIndent(), newlinesZero)

		isBodyInSameLine := leftWidth.lastLineFits(
			info.indentation,
			sumWidths(assignmentSign.minWidth(info.indentation), widthSpace, bodyWidth),
		)
		assignmentSignTrailing := intoIndentation(info.indentation.withIndent())
		if isBodyInSameLine {
			assignmentSignTrailing = intoSpace()
		}

		width = leftWidth.add(assignmentSign.intoTrailing(edits, assignmentSignTrailing)).add(bodyWidth)
	case *cst.Error:
		width = stringWidth(node.UnparsableInput)
	default:
		panic("unknown node")
	}
	return newFormattedCst(width, emptyWhitespace(node.Span().End))
}

func formatBinaryBar(edits *TextEdits, previousWidth Width, node *cst.BinaryBar, info formattingInfo) FormattedCst {
	left := formatCst(edits, previousWidth, node.Left, info)

	widthForRightSide := multiline(info.indentation.width())
	barWidth := formatCst(edits, widthForRightSide, node.Bar, info).
		intoSpaceAndMoveCommentsTo(edits, left.whitespace)

	right, parentheses := splitParenthesized(edits, node.Right)
	// Depending on the precedence of the right side and whether the opening
	// parenthesis carries a comment, we might be able to remove the
	// parentheses. We won't insert any by ourselves, though.
	var rightNeedsParentheses bool
	switch cst.Precedence(right) {
	case cst.PrecedenceHigh:
		rightNeedsParentheses = parentheses != nil && parentheses.opening.whitespace.hasComments()
	default:
		rightNeedsParentheses = parentheses != nil
	}
	previousWidthForRight := widthForRightSide.add(barWidth)
	infoForRight := info
	if rightNeedsParentheses {
		previousWidthForRight = previousWidthForRight.add(singleline(2))
		infoForRight = info.withIndent()
	}
	formattedRight := formatCst(edits, previousWidthForRight, right, infoForRight)

	var rightWidth Width
	var whitespace *ExistingWhitespace
	if parentheses != nil {
		if rightNeedsParentheses {
			openingParenthesisWidth := formatCst(edits, widthForRightSide.add(barWidth), parentheses.opening.child, info).
				intoEmptyTrailing(edits)
			closingParenthesisWidth := formatCst(edits, multiline(info.indentation.width()), parentheses.closing.child, info).
				intoEmptyTrailing(edits)
			var openingWhitespaceWidth, formattedRightWidth Width
			singlelineWidth := sumWidths(
				left.minWidth(info.indentation),
				widthSpace,
				barWidth,
				openingParenthesisWidth,
				formattedRight.minWidth(info.indentation.withIndent()),
				closingParenthesisWidth,
			)
			if !parentheses.opening.whitespace.hasComments() && singlelineWidth.fits(info.indentation) {
				openingWhitespaceWidth = parentheses.opening.whitespace.intoEmptyTrailing(edits)
				formattedRightWidth = formattedRight.intoEmptyTrailing(edits)
			} else {
				openingWhitespaceWidth = parentheses.opening.whitespace.intoTrailingWithIndentation(
					edits,
					sumWidths(singleline(1), widthSpace, singleline(1)),
					info.indentation.withIndent(),
					newlinesOne,
					true,
				)
				formattedRightWidth = formattedRight.intoTrailingWithIndentation(edits, info.indentation)
			}
			rightWidth = sumWidths(openingParenthesisWidth, openingWhitespaceWidth, formattedRightWidth, closingParenthesisWidth)
			whitespace = parentheses.closing.whitespace
		} else {
			edits.Delete(parentheses.opening.child.Span())
			parentheses.opening.whitespace.intoEmptyTrailing(edits)
			rightWidth = formattedRight.intoEmptyTrailing(edits)
			edits.Delete(parentheses.closing.child.Span())
			whitespace = parentheses.closing.whitespace
		}
	} else {
		rightWidth, whitespace = formattedRight.split()
	}

	leftTrailing := intoIndentation(info.indentation)
	if sumWidths(left.minWidth(info.indentation), widthSpace, barWidth, rightWidth).fits(info.indentation) {
		leftTrailing = intoSpace()
	}

	return newFormattedCst(
		left.intoTrailing(edits, leftTrailing).add(barWidth).add(rightWidth),
		whitespace,
	)
}

func formatParenthesized(edits *TextEdits, previousWidth Width, node *cst.Parenthesized, info formattingInfo) FormattedCst {
	// Whenever parentheses are necessary, they are handled by the parent.
	// Hence we try to remove them here.
	child, parentheses := splitParenthesized(edits, node)
	whitespace := parentheses.closing.whitespace

	if !parentheses.opening.whitespace.hasComments() {
		// We can remove the parentheses.
		edits.Delete(parentheses.opening.child.Span())
		parentheses.opening.whitespace.intoEmptyTrailing(edits)
		formattedChild := formatCst(edits, previousWidth, child, info)
		childWidth, childWhitespace := formattedChild.split()
		childWhitespace.intoEmptyAndMoveCommentsTo(edits, whitespace)
		edits.Delete(parentheses.closing.child.Span())
		return newFormattedCst(childWidth, whitespace)
	}

	openingParenthesisWidth := formatCst(edits, previousWidth, parentheses.opening.child, info).
		intoEmptyTrailing(edits)
	openingWhitespaceWidth := parentheses.opening.whitespace.intoTrailingWithIndentation(
		edits,
		singleline(1),
		info.indentation.withIndent(),
		newlinesOne,
		true,
	)
	childWidth := formatCst(
		edits,
		multiline(info.indentation.withIndent().width()),
		child,
		info.withIndent(),
	).intoTrailingWithIndentation(edits, info.indentation)
	closingParenthesisWidth := formatCst(edits, multiline(info.indentation.width()), parentheses.closing.child, info).
		intoEmptyTrailing(edits)
	return newFormattedCst(
		sumWidths(openingParenthesisWidth, openingWhitespaceWidth, childWidth, closingParenthesisWidth),
		whitespace,
	)
}

func formatCall(edits *TextEdits, previousWidth Width, node *cst.Call, info formattingInfo) FormattedCst {
	receiver := formatCst(edits, previousWidth, node.Receiver, info)
	if len(node.Arguments) == 0 {
		return receiver
	}

	previousWidthForArguments := multiline(info.indentation.withIndent().width())
	arguments := make([]argument, len(node.Arguments))
	for i, arg := range node.Arguments {
		arguments[i] = newArgument(edits, previousWidthForArguments, arg, info)
	}

	minWidth := receiver.minWidth(info.indentation)
	for _, arg := range arguments {
		minWidth = minWidth.add(widthSpace).add(arg.minSinglelineWidth)
	}
	var isSingleline bool
	var argumentInfo formattingInfo
	var trailing trailingWhitespace
	if previousWidth.lastLineFits(info.indentation, minWidth) {
		isSingleline = true
		argumentInfo = info
		trailing = intoSpace()
	} else {
		isSingleline = false
		argumentInfo = info.withIndent()
		trailing = intoIndentation(info.indentation.withIndent())
	}

	width := receiver.intoTrailing(edits, trailing)

	lastArgument := arguments[len(arguments)-1]
	for _, arg := range arguments[:len(arguments)-1] {
		formatted := arg.format(edits, previousWidth.add(width), argumentInfo, isSingleline)
		var argWidth Width
		if isSingleline {
			argWidth = formatted.intoTrailingWithSpace(edits)
		} else {
			argWidth = formatted.intoTrailingWithIndentation(edits, argumentInfo.indentation)
		}
		width = width.add(argWidth)
	}
	lastArgumentWidth, whitespace := lastArgument.
		format(edits, previousWidth.add(width), argumentInfo, isSingleline).
		split()

	return newFormattedCst(width.add(lastArgumentWidth), whitespace)
}

func formatStructField(edits *TextEdits, previousWidth Width, node *cst.StructField, info formattingInfo) FormattedCst {
	hasKey := node.Key != nil
	var keyWidth Width
	var colon FormattedCst
	if hasKey {
		key := formatCst(edits, previousWidth, node.Key, info.withIndent())
		colon = formatCst(edits, previousWidth.add(key.width()), node.Colon, info.withIndent())
		keyWidth = key.intoEmptyAndMoveCommentsTo(edits, colon.whitespace)
	}

	valueEnd := node.Value.Span().End
	previousWidthForValue := previousWidth
	if hasKey {
		previousWidthForValue = multiline(info.indentation.withIndent().width())
	}
	value := formatCst(edits, previousWidthForValue, node.Value, info.withIndent())

	var keyAndColonMinWidth Width
	if hasKey {
		keyAndColonMinWidth = keyWidth.add(colon.minWidth(info.indentation))
	}
	commaWidth, whitespace := applyTrailingCommaCondition(
		edits,
		previousWidthForValue.add(value.width()),
		node.Comma,
		valueEnd,
		info,
		keyAndColonMinWidth.add(value.minWidth(info.indentation)),
	)
	valueWidth := value.intoEmptyAndMoveCommentsTo(edits, whitespace)
	minWidth := sumWidths(keyAndColonMinWidth, valueWidth, commaWidth)

	var width Width
	if hasKey {
		colonTrailing := intoIndentation(info.indentation.withIndent())
		if minWidth.fits(info.indentation) {
			colonTrailing = intoSpace()
		}
		width = keyWidth.add(colon.intoTrailing(edits, colonTrailing))
	}
	return newFormattedCst(
		sumWidths(width, valueWidth, commaWidth),
		whitespace,
	)
}

func formatStructAccess(edits *TextEdits, previousWidth Width, node *cst.StructAccess, info formattingInfo) FormattedCst {
	structNode := formatCst(edits, previousWidth, node.Struct, info)

	previousWidthForDot := multiline(info.indentation.withIndent().width())
	dotWidth := formatCst(edits, previousWidthForDot, node.Dot, info.withIndent()).
		intoEmptyAndMoveCommentsTo(edits, structNode.whitespace)

	key := formatCst(edits, previousWidthForDot.add(dotWidth), node.Key, info.withIndent())

	minWidth := sumWidths(structNode.minWidth(info.indentation), dotWidth, key.minWidth(info.indentation))
	structTrailing := intoIndentation(info.indentation.withIndent())
	if minWidth.fits(info.indentation) {
		structTrailing = intoNone()
	}

	keyWidth, whitespace := key.split()
	return newFormattedCst(
		structNode.intoTrailing(edits, structTrailing).add(dotWidth).add(keyWidth),
		whitespace,
	)
}

func formatMatch(edits *TextEdits, previousWidth Width, node *cst.Match, info formattingInfo) FormattedCst {
	expression := formatCst(edits, previousWidth, node.Expression, info)

	previousWidthForIndented := multiline(info.indentation.withIndent().width())
	percent := formatCst(edits, previousWidthForIndented, node.Percent, info)
	expressionWidth := expression.intoSpaceAndMoveCommentsTo(edits, percent.whitespace)

	onlyHasEmptyErrorCase := false
	if len(node.Cases) == 1 {
		if err, ok := node.Cases[0].(*cst.Error); ok &&
			err.Kind == cst.MatchMissesCases && err.UnparsableInput == "" {
			onlyHasEmptyErrorCase = true
		}
	}
	if onlyHasEmptyErrorCase || len(node.Cases) == 0 {
		percentWidth, whitespace := percent.split()
		return newFormattedCst(expressionWidth.add(percentWidth), whitespace)
	}

	percentWidth := percent.intoTrailingWithIndentation(edits, info.indentation.withIndent())

	width := expressionWidth.add(percentWidth)
	for _, matchCase := range node.Cases[:len(node.Cases)-1] {
		width = width.add(
			formatCst(edits, previousWidthForIndented, matchCase, info.withIndent()).
				intoTrailingWithIndentation(edits, info.indentation.withIndent()),
		)
	}
	lastCaseWidth, whitespace := formatCst(
		edits, previousWidthForIndented, node.Cases[len(node.Cases)-1], info.withIndent(),
	).split()
	return newFormattedCst(width.add(lastCaseWidth), whitespace)
}

func formatMatchCase(edits *TextEdits, previousWidth Width, node *cst.MatchCase, info formattingInfo) FormattedCst {
	pattern := formatCst(edits, previousWidth, node.Pattern, info)

	previousWidthForArrow := multiline(info.indentation.withIndent().width())
	arrow := formatCst(edits, previousWidthForArrow, node.Arrow, info)
	patternWidth := pattern.intoSpaceAndMoveCommentsTo(edits, arrow.whitespace)

	bodyWidth, whitespace := formatCsts(
		edits,
		sumWidths(previousWidthForArrow, widthSpace, arrow.minWidth(info.indentation.withIndent())),
		node.Body,
		arrow.whitespace.endOffset(),
		info.withIndent(),
	).split()

	arrowTrailing := intoIndentation(info.indentation.withIndent())
	if patternWidth.lastLineFits(
		info.indentation,
		sumWidths(arrow.minWidth(info.indentation), widthSpace, bodyWidth),
	) {
		arrowTrailing = intoSpace()
	}

	return newFormattedCst(
		patternWidth.add(arrow.intoTrailing(edits, arrowTrailing)).add(bodyWidth),
		whitespace,
	)
}

func formatLambda(edits *TextEdits, previousWidth Width, node *cst.Lambda, info formattingInfo) FormattedCst {
	openingCurlyBrace := formatCst(edits, previousWidth, node.OpeningCurlyBrace, info)

	previousWidthForInner := multiline(info.indentation.withIndent().width())
	hasParametersAndArrow := node.Arrow != nil
	var parametersWidth Width
	var arrow FormattedCst
	if hasParametersAndArrow {
		parameters := make([]FormattedCst, len(node.Parameters))
		for i, parameter := range node.Parameters {
			parameters[i] = formatCst(edits, previousWidthForInner, parameter, info.withIndent())
		}
		arrow = formatCst(edits, previousWidthForInner, node.Arrow, info.withIndent())

		singlelineUntilArrow := openingCurlyBrace.minWidth(info.indentation).add(widthSpace)
		for _, parameter := range parameters {
			singlelineUntilArrow = singlelineUntilArrow.
				add(parameter.minWidth(info.indentation)).
				add(widthSpace)
		}
		singlelineUntilArrow = singlelineUntilArrow.add(arrow.minWidth(info.indentation))
		parametersTrailing := intoIndentation(info.indentation.withIndent())
		if singlelineUntilArrow.fits(info.indentation) {
			parametersTrailing = intoSpace()
		}

		for _, parameter := range parameters[:max(len(parameters)-1, 0)] {
			parametersWidth = parametersWidth.add(parameter.intoTrailing(edits, parametersTrailing))
		}
		if len(parameters) > 0 {
			lastParameter := parameters[len(parameters)-1]
			// The arrow's comment can flow to the next line.
			trailing := intoIndentation(info.indentation.withIndent())
			if parametersWidth.lastLineFits(
				info.indentation,
				sumWidths(lastParameter.minWidth(info.indentation), widthSpace, arrow.width()),
			) {
				trailing = intoSpace()
			}
			parametersWidth = parametersWidth.add(lastParameter.intoTrailing(edits, trailing))
		}
	}

	bodyFallbackOffset := openingCurlyBrace.whitespace.endOffset()
	if hasParametersAndArrow {
		bodyFallbackOffset = arrow.whitespace.endOffset()
	}
	body := formatCsts(edits, previousWidthForInner, node.Body, bodyFallbackOffset, info.withIndent())
	closingCurlyBraceWidth, whitespace := formatCst(
		edits, multiline(info.indentation.width()), node.ClosingCurlyBrace, info,
	).split()

	var parametersAndArrowMinWidth Width
	arrowHasComments := false
	if hasParametersAndArrow {
		parametersAndArrowMinWidth = parametersWidth.add(arrow.width())
		arrowHasComments = arrow.whitespace.hasComments()
	}
	bodyMinWidth := body.minWidth(info.indentation)
	widthUntilArrow := sumWidths(
		openingCurlyBrace.minWidth(info.indentation), widthSpace, parametersAndArrowMinWidth,
	)

	// Opening curly brace
	widthForFirstLine := widthUntilArrow
	if !hasParametersAndArrow {
		widthForFirstLine = sumWidths(widthUntilArrow, bodyMinWidth, widthSpace, closingCurlyBraceWidth)
	}
	var openingCurlyBraceTrailing trailingWhitespace
	switch {
	case previousWidth.lastLineFits(info.indentation, widthForFirstLine):
		openingCurlyBraceTrailing = intoSpace()
	case bodyMinWidth.isEmpty():
		openingCurlyBraceTrailing = intoIndentation(info.indentation)
	default:
		openingCurlyBraceTrailing = intoIndentation(info.indentation.withIndent())
	}

	// Body
	var spaceIfParameters Width
	if hasParametersAndArrow {
		spaceIfParameters = widthSpace
	}
	var spaceIfBodyNotEmpty Width
	if !bodyMinWidth.isEmpty() {
		spaceIfBodyNotEmpty = widthSpace
	}
	widthFromBody := sumWidths(bodyMinWidth, spaceIfBodyNotEmpty, closingCurlyBraceWidth)
	var bodyTrailing trailingWhitespace
	switch {
	case body.width().isEmpty():
		bodyTrailing = intoNone()
	case !arrowHasComments &&
		sumWidths(widthUntilArrow, spaceIfParameters, widthFromBody).fits(info.indentation):
		bodyTrailing = intoSpace()
	default:
		bodyTrailing = intoIndentation(info.indentation)
	}

	// Parameters and arrow
	var parametersAndArrowWidth Width
	if hasParametersAndArrow {
		arrowTrailing := intoIndentation(info.indentation.withIndent())
		if !arrow.whitespace.hasComments() &&
			widthUntilArrow.lastLineFits(info.indentation, spaceIfParameters.add(widthFromBody)) {
			arrowTrailing = intoSpace()
		}
		parametersAndArrowWidth = parametersWidth.add(arrow.intoTrailing(edits, arrowTrailing))
	}

	return newFormattedCst(
		sumWidths(
			openingCurlyBrace.intoTrailing(edits, openingCurlyBraceTrailing),
			parametersAndArrowWidth,
			body.intoTrailing(edits, bodyTrailing),
			closingCurlyBraceWidth,
		),
		whitespace,
	)
}

// argument is a call argument together with the bookkeeping needed to
// decide about its parentheses.
type argument struct {
	startOffset        uint32
	formatted          FormattedCst
	precedence         cst.PrecedenceCategory
	parentheses        *parentheses
	minSinglelineWidth Width
}

func newArgument(edits *TextEdits, previousWidth Width, node cst.Node, info formattingInfo) argument {
	child, parens := splitParenthesized(edits, node)
	startOffset := child.Span().Start
	precedence := cst.Precedence(child)

	var formatted FormattedCst
	var minSinglelineWidth Width
	if parens != nil && parens.opening.whitespace.hasComments() {
		formatted = formatCst(edits, previousWidth, child, info.withIndent().withIndent())
		minSinglelineWidth = multiline(unknownColumns)
	} else {
		formatted = formatCst(edits, previousWidth, child, info)
		minSinglelineWidth = formatted.minWidth(info.indentation.withIndent())
		parenthesesWidth := singleline(2)
		switch precedence {
		case cst.PrecedenceLow:
			minSinglelineWidth = minSinglelineWidth.add(parenthesesWidth)
		case cst.PrecedenceNone:
			if parens != nil {
				minSinglelineWidth = minSinglelineWidth.add(parenthesesWidth)
			}
		}
	}
	return argument{
		startOffset:        startOffset,
		formatted:          formatted,
		precedence:         precedence,
		parentheses:        parens,
		minSinglelineWidth: minSinglelineWidth,
	}
}

func (a argument) format(edits *TextEdits, previousWidth Width, info formattingInfo, isSingleline bool) FormattedCst {
	if a.parentheses != nil {
		// We already have parentheses …
		opening := a.parentheses.opening
		closing := a.parentheses.closing
		if isSingleline && a.precedence != cst.PrecedenceHigh ||
			opening.whitespace.hasComments() {
			// … and we actually need them.
			openingParenthesisWidth := formatCst(edits, previousWidth, opening.child, info).
				intoEmptyTrailing(edits)
			var widthBetweenParentheses Width
			if isSingleline && previousWidth.lastLineFits(info.indentation, a.minSinglelineWidth) {
				// The argument fits in one line.
				openingWhitespaceWidth := opening.whitespace.intoEmptyTrailing(edits)
				widthBetweenParentheses = openingWhitespaceWidth.add(a.formatted.intoEmptyTrailing(edits))
			} else {
				// The argument goes over multiple lines.
				openingWhitespaceWidth := opening.whitespace.intoTrailingWithIndentation(
					edits,
					singleline(1),
					info.indentation.withIndent(),
					newlinesOne,
					true,
				)
				widthBetweenParentheses = openingWhitespaceWidth.
					add(a.formatted.intoTrailingWithIndentation(edits, info.indentation))
			}
			widthBeforeClosingParenthesis := openingParenthesisWidth.add(widthBetweenParentheses)
			closingParenthesisWidth := formatCst(
				edits, previousWidth.add(widthBeforeClosingParenthesis), closing.child, info,
			).intoEmptyTrailing(edits)
			return newFormattedCst(
				widthBeforeClosingParenthesis.add(closingParenthesisWidth),
				closing.whitespace,
			)
		}
		// … but we don't need them.
		edits.Delete(opening.child.Span())
		opening.whitespace.intoEmptyTrailing(edits)
		edits.Delete(closing.child.Span())
		argumentWidth, argumentWhitespace := a.formatted.split()
		argumentWhitespace.intoEmptyAndMoveCommentsTo(edits, closing.whitespace)
		return newFormattedCst(argumentWidth, closing.whitespace)
	}

	// We don't have parentheses …
	if isSingleline && a.precedence == cst.PrecedenceLow {
		// … but we need them. This can only be the case if the whole call
		// fits on one line.
		edits.Insert(a.startOffset, "(")
		edits.Insert(a.formatted.whitespace.startOffset(), ")")
		argumentWidth, whitespace := a.formatted.split()
		return newFormattedCst(
			singleline(1).add(argumentWidth).add(singleline(1)),
			whitespace,
		)
	}
	// … and we don't need them.
	return a.formatted
}

type parentheses struct {
	opening UnformattedCst
	closing UnformattedCst
}

// splitParenthesized reduces multiple pairs of parentheses around an inner
// expression to at most one pair that keeps all comments.
func splitParenthesized(edits *TextEdits, node cst.Node) (cst.Node, *parentheses) {
	var parens *parentheses
	for {
		parenthesized, ok := node.(*cst.Parenthesized)
		if !ok {
			break
		}
		node = parenthesized.Inner

		newOpening := splitWhitespace(parenthesized.OpeningParenthesis)
		newClosing := splitWhitespace(parenthesized.ClosingParenthesis)
		if parens == nil {
			parens = &parentheses{opening: newOpening, closing: newClosing}
		} else {
			parens = &parentheses{
				opening: mergeParenthesis(edits, parens.opening, newOpening),
				closing: mergeParenthesis(edits, parens.closing, newClosing),
			}
		}
	}
	return node, parens
}

func mergeParenthesis(edits *TextEdits, outer, inner UnformattedCst) UnformattedCst {
	if outer.whitespace.hasComments() {
		edits.Delete(inner.child.Span())
		inner.whitespace.intoEmptyAndMoveCommentsTo(edits, outer.whitespace)
		return outer
	}
	edits.Delete(outer.child.Span())
	outer.whitespace.intoEmptyTrailing(edits)
	return inner
}

func splitWhitespace(node cst.Node) UnformattedCst {
	if trailing, ok := node.(*cst.TrailingWhitespace); ok {
		whitespace := newExistingWhitespace(trailing.Child.Span().End, trailing.Whitespace)
		inner := splitWhitespace(trailing.Child)
		inner.whitespace.moveToOuter(whitespace)
		return UnformattedCst{child: inner.child, whitespace: whitespace}
	}
	return UnformattedCst{child: node, whitespace: emptyWhitespace(node.Span().End)}
}
