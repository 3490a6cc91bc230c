package format

import (
	"github.com/toffee-lang/toffee/parser/cst"
)

// trailingWhitespace is a resolution request for a FormattedCst's trailing
// trivia: drop it, make it a single space, or break to a fresh line at some
// indentation.
type trailingWhitespace struct {
	indentation Indentation
	kind        trailingKind
}

type trailingKind int

const (
	trailingNone trailingKind = iota
	trailingSpace
	trailingIndentation
)

func intoNone() trailingWhitespace {
	return trailingWhitespace{kind: trailingNone}
}

func intoSpace() trailingWhitespace {
	return trailingWhitespace{kind: trailingSpace}
}

func intoIndentation(indentation Indentation) trailingWhitespace {
	return trailingWhitespace{kind: trailingIndentation, indentation: indentation}
}

// FormattedCst is a formatted child plus the not-yet-resolved whitespace
// that follows it. The parent decides how the whitespace resolves once it
// knows the layout.
type FormattedCst struct {
	childWidth Width
	whitespace *ExistingWhitespace
}

func newFormattedCst(childWidth Width, whitespace *ExistingWhitespace) FormattedCst {
	return FormattedCst{childWidth: childWidth, whitespace: whitespace}
}

func (f FormattedCst) width() Width {
	return f.childWidth
}

// minWidth is the narrowest width the child can be laid out in. Trailing
// comments force a line break, so the result is multiline in that case,
// ending at the given indentation.
func (f FormattedCst) minWidth(indentation Indentation) Width {
	if f.whitespace.hasComments() {
		return f.childWidth.add(multiline(indentation.width()))
	}
	return f.childWidth
}

func (f FormattedCst) split() (Width, *ExistingWhitespace) {
	return f.childWidth, f.whitespace
}

func (f FormattedCst) intoTrailing(edits *TextEdits, trailing trailingWhitespace) Width {
	switch trailing.kind {
	case trailingNone:
		return f.intoEmptyTrailing(edits)
	case trailingSpace:
		return f.intoTrailingWithSpace(edits)
	default:
		return f.intoTrailingWithIndentation(edits, trailing.indentation)
	}
}

func (f FormattedCst) intoEmptyTrailing(edits *TextEdits) Width {
	return f.childWidth.add(f.whitespace.intoEmptyTrailing(edits))
}

func (f FormattedCst) intoTrailingWithSpace(edits *TextEdits) Width {
	return f.childWidth.add(f.whitespace.intoSpace(edits))
}

func (f FormattedCst) intoTrailingWithIndentation(edits *TextEdits, indentation Indentation) Width {
	return f.intoTrailingWithIndentationDetailed(edits, indentation, newlinesOne)
}

func (f FormattedCst) intoTrailingWithIndentationDetailed(
	edits *TextEdits,
	indentation Indentation,
	newlines newlineCount,
) Width {
	return f.childWidth.add(f.whitespace.intoTrailingWithIndentation(
		edits, f.childWidth, indentation, newlines, true,
	))
}

func (f FormattedCst) intoEmptyAndMoveCommentsTo(edits *TextEdits, other *ExistingWhitespace) Width {
	return f.childWidth.add(f.whitespace.intoEmptyAndMoveCommentsTo(edits, other))
}

func (f FormattedCst) intoSpaceAndMoveCommentsTo(edits *TextEdits, other *ExistingWhitespace) Width {
	return f.childWidth.add(f.whitespace.intoSpaceAndMoveCommentsTo(edits, other))
}

// UnformattedCst is a child whose trailing whitespace was split off but not
// yet formatted, e.g. a parenthesis that may turn out to be redundant.
type UnformattedCst struct {
	child      cst.Node
	whitespace *ExistingWhitespace
}
