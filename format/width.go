// Package format reformats Toffee concrete syntax trees. It decides per
// construct whether to lay it out on one line or break across multiple
// indented lines and emits a minimal set of text edits that rewrite the
// input buffer into its canonical form, preserving all comments.
package format

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaxColumn is the page width the formatter lays text out within.
const MaxColumn = 100

// indentWidth is the number of spaces per indentation level.
const indentWidth = 2

// Indentation is a depth in indentation levels.
type Indentation int

func (i Indentation) width() int {
	return indentWidth * int(i)
}

func (i Indentation) withIndent() Indentation {
	return i + 1
}

func (i Indentation) String() string {
	return strings.Repeat(" ", i.width())
}

// Width describes laid-out text: either it stays on a single line and
// occupies a number of columns, or it spans multiple lines and only the
// column position after the final newline matters. A multiline width with a
// last-line count of unknownColumns stays unknown when single-line widths are
// added to it; only a following multiline width replaces it.
type Width struct {
	multiline bool
	cols      int
}

const unknownColumns = -1

func singleline(cols int) Width {
	return Width{cols: cols}
}

func multiline(lastLineCols int) Width {
	return Width{multiline: true, cols: lastLineCols}
}

var widthSpace = singleline(1)

func (w Width) isSingleline() bool {
	return !w.multiline
}

func (w Width) isEmpty() bool {
	return !w.multiline && w.cols == 0
}

// add combines two widths laid out after one another. The neutral element
// is singleline(0).
func (w Width) add(other Width) Width {
	if other.multiline {
		return other
	}
	if w.multiline {
		if w.cols == unknownColumns {
			return w
		}
		return multiline(w.cols + other.cols)
	}
	return singleline(w.cols + other.cols)
}

func sumWidths(widths ...Width) Width {
	var total Width
	for _, w := range widths {
		total = total.add(w)
	}
	return total
}

// lastLineCols returns the absolute column after laying out w at the given
// indentation, or unknownColumns.
func (w Width) lastLineCols(indentation Indentation) int {
	if w.multiline {
		return w.cols
	}
	return indentation.width() + w.cols
}

// fits reports whether w stays on a single line within MaxColumn at the
// given indentation.
func (w Width) fits(indentation Indentation) bool {
	return !w.multiline && indentation.width()+w.cols <= MaxColumn
}

func (w Width) fitsIn(maxWidth int) bool {
	return !w.multiline && w.cols <= maxWidth
}

// lastLineFits reports whether tail, appended to w's last line, still fits
// within MaxColumn.
func (w Width) lastLineFits(indentation Indentation, tail Width) bool {
	if tail.multiline {
		return false
	}
	last := w.lastLineCols(indentation)
	if last == unknownColumns {
		return false
	}
	return last+tail.cols <= MaxColumn
}

// widthFromCols bounds a single-line width: widths above max are multiline
// with an unknown last column.
func widthFromCols(cols, max int) Width {
	if cols <= max {
		return singleline(cols)
	}
	return multiline(unknownColumns)
}

// stringWidth measures text in display columns the way an editor shows it.
func stringWidth(s string) Width {
	index := strings.LastIndexByte(s, '\n')
	if index < 0 {
		return singleline(uniseg.StringWidth(s))
	}
	return multiline(uniseg.StringWidth(s[index+1:]))
}
