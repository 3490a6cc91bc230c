package format

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/toffee-lang/toffee/parser/cst"
)

// newlineCount says how many newlines a whitespace run should be resolved
// to: none, exactly one, or as many as the source had (clamped so that at
// most two blank lines remain).
type newlineCount int

const (
	newlinesZero newlineCount = iota
	newlinesOne
	newlinesKeep
)

const maxKeptNewlines = 3

// trailingComment is a comment carried by an ExistingWhitespace. Text is
// the octothorpe plus the right-trimmed comment text. newlinesBefore is
// zero when the comment sat on the same line as the preceding content.
type trailingComment struct {
	text           string
	newlinesBefore int
}

// ExistingWhitespace owns the trivia between a node and its right sibling
// and decides how to re-emit it: as nothing, a single space, or newlines
// plus indentation. Comments survive every resolution; collapsing
// constructs move them to a sibling instead of dropping them.
type ExistingWhitespace struct {
	span             cst.Span
	comments         []trailingComment
	trailingNewlines int
}

func emptyWhitespace(offset uint32) *ExistingWhitespace {
	return &ExistingWhitespace{span: cst.Span{Start: offset, End: offset}}
}

// newExistingWhitespace takes ownership of attributed trivia nodes starting
// at offset. Weird-whitespace error trivia counts as plain whitespace and
// is normalized away on resolution.
func newExistingWhitespace(offset uint32, trivia []cst.Node) *ExistingWhitespace {
	ws := emptyWhitespace(offset)
	newlines := 0
	for _, node := range trivia {
		ws.span.End = node.Span().End
		switch node := node.(type) {
		case *cst.Newline:
			newlines++
		case *cst.Comment:
			ws.comments = append(ws.comments, trailingComment{
				text:           "#" + strings.TrimRightFunc(node.Text, unicode.IsSpace),
				newlinesBefore: newlines,
			})
			newlines = 0
		}
	}
	ws.trailingNewlines = newlines
	return ws
}

func (ws *ExistingWhitespace) hasComments() bool {
	return len(ws.comments) > 0
}

func (ws *ExistingWhitespace) startOffset() uint32 {
	return ws.span.Start
}

func (ws *ExistingWhitespace) endOffset() uint32 {
	return ws.span.End
}

// mergeContentInto moves this whitespace's comments and newline count into
// other, keeping source order: whichever whitespace starts earlier in the
// buffer contributes its trivia first.
func (ws *ExistingWhitespace) mergeContentInto(other *ExistingWhitespace) {
	var first, second *ExistingWhitespace
	if ws.span.Start <= other.span.Start {
		first, second = ws, other
	} else {
		first, second = other, ws
	}

	comments := make([]trailingComment, 0, len(first.comments)+len(second.comments))
	comments = append(comments, first.comments...)
	comments = append(comments, second.comments...)
	trailingNewlines := second.trailingNewlines
	if len(second.comments) > 0 {
		comments[len(first.comments)].newlinesBefore += first.trailingNewlines
	} else {
		trailingNewlines += first.trailingNewlines
	}

	other.comments = comments
	other.trailingNewlines = trailingNewlines
	ws.comments = nil
	ws.trailingNewlines = 0
}

// moveToOuter merges this whitespace into the directly following one, e.g.
// when unwrapping nested TrailingWhitespace wrappers.
func (ws *ExistingWhitespace) moveToOuter(outer *ExistingWhitespace) {
	start := ws.span.Start
	ws.mergeContentInto(outer)
	outer.span.Start = start
}

// intoEmptyTrailing deletes the whitespace. Calling it with comments
// present would lose them, which is a bug in the caller.
func (ws *ExistingWhitespace) intoEmptyTrailing(edits *TextEdits) Width {
	if ws.hasComments() {
		panic("comments cannot be resolved into empty trailing whitespace")
	}
	edits.Delete(ws.span)
	return Width{}
}

// intoSpace replaces the whitespace with exactly one space.
func (ws *ExistingWhitespace) intoSpace(edits *TextEdits) Width {
	if ws.hasComments() {
		panic("comments cannot be resolved into a single space")
	}
	edits.Change(ws.span, " ")
	return widthSpace
}

// intoEmptyAndMoveCommentsTo deletes the whitespace but migrates its
// comments (and its newline count) to a sibling's trailing slot so they
// survive, e.g. when redundant parentheses are removed.
func (ws *ExistingWhitespace) intoEmptyAndMoveCommentsTo(edits *TextEdits, other *ExistingWhitespace) Width {
	ws.mergeContentInto(other)
	edits.Delete(ws.span)
	return Width{}
}

// intoSpaceAndMoveCommentsTo becomes a single space; comments migrate to
// the given sibling. The replaced newlines do not.
func (ws *ExistingWhitespace) intoSpaceAndMoveCommentsTo(edits *TextEdits, other *ExistingWhitespace) Width {
	ws.trailingNewlines = 0
	ws.mergeContentInto(other)
	edits.Change(ws.span, " ")
	return widthSpace
}

// intoTrailingWithIndentation re-emits the whitespace as newlines followed
// by indentation, keeping comments. A comment that sat on the same line as
// the preceding content stays there if previousWidth leaves room for it;
// otherwise it moves to its own line at the target indentation.
func (ws *ExistingWhitespace) intoTrailingWithIndentation(
	edits *TextEdits,
	previousWidth Width,
	indentation Indentation,
	newlines newlineCount,
	ensureSpaceBeforeComment bool,
) Width {
	var b strings.Builder
	col := previousWidth.lastLineCols(indentation)
	for index, comment := range ws.comments {
		commentWidth := uniseg.StringWidth(comment.text)
		// Only the first comment can share the line with the preceding
		// content; a comment extends to the end of its line.
		if index == 0 && comment.newlinesBefore == 0 &&
			col != unknownColumns && col+1+commentWidth <= MaxColumn {
			if ensureSpaceBeforeComment && col > indentation.width() {
				b.WriteString(" ")
				col++
			}
			b.WriteString(comment.text)
			col += commentWidth
		} else {
			b.WriteString(strings.Repeat("\n", clampNewlines(comment.newlinesBefore, newlines)))
			b.WriteString(indentation.String())
			b.WriteString(comment.text)
			col = indentation.width() + commentWidth
		}
	}

	switch newlines {
	case newlinesZero:
		// Nothing follows; the construct ends here.
	case newlinesOne:
		b.WriteString("\n")
		b.WriteString(indentation.String())
	case newlinesKeep:
		b.WriteString(strings.Repeat("\n", clampNewlines(ws.trailingNewlines, newlinesKeep)))
		b.WriteString(indentation.String())
	}

	rendered := b.String()
	edits.Change(ws.span, rendered)
	return stringWidth(rendered)
}

func clampNewlines(count int, newlines newlineCount) int {
	if newlines != newlinesKeep {
		return 1
	}
	if count < 1 {
		return 1
	}
	if count > maxKeptNewlines {
		return maxKeptNewlines
	}
	return count
}
