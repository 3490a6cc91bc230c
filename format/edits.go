package format

import (
	"sort"
	"strings"

	"github.com/toffee-lang/toffee/parser/cst"
)

// TextEdit replaces a byte range of the original source with new text. An
// insertion has an empty range, a deletion an empty replacement.
type TextEdit struct {
	Span        cst.Span
	Replacement string
}

// TextEdits is an append-only log of edits against the original source
// buffer. Edits are recorded in the order constructs are visited
// (depth-first, left to right) and applied in increasing start order.
type TextEdits struct {
	edits []TextEdit
}

func (e *TextEdits) Delete(span cst.Span) {
	e.Change(span, "")
}

func (e *TextEdits) Insert(offset uint32, text string) {
	e.Change(cst.Span{Start: offset, End: offset}, text)
}

func (e *TextEdits) Change(span cst.Span, text string) {
	if span.Start == span.End && text == "" {
		return
	}
	e.edits = append(e.edits, TextEdit{Span: span, Replacement: text})
}

// Edits returns the recorded edits in application order: increasing start
// offset, with insertions at an offset applying before a replacement that
// starts there. Insertions at the same offset keep their recording order.
func (e *TextEdits) Edits() []TextEdit {
	sorted := make([]TextEdit, len(e.edits))
	copy(sorted, e.edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		return a.Span.Len() == 0 && b.Span.Len() != 0
	})
	return sorted
}

// Apply rewrites source by applying all edits. An edit contained within an
// already-applied range is dropped; the earlier edit took responsibility
// for those bytes.
func (e *TextEdits) Apply(source string) string {
	var b strings.Builder
	pos := uint32(0)
	for _, edit := range e.Edits() {
		if edit.Span.Start < pos {
			continue
		}
		b.WriteString(source[pos:edit.Span.Start])
		b.WriteString(edit.Replacement)
		pos = edit.Span.End
	}
	b.WriteString(source[pos:])
	return b.String()
}
