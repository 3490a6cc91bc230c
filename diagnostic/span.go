package diagnostic

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/logrusorgru/aurora"
)

type Type int

const (
	Primary Type = iota
	Secondary
)

type Span struct {
	Message string
	Type    Type
	Start   lexer.Position
	End     lexer.Position
}

type Option func(*SpanError)

func Spanf(t Type, start, end lexer.Position, format string, a ...interface{}) Option {
	return func(se *SpanError) {
		se.Spans = append(se.Spans, Span{
			Message: fmt.Sprintf(format, a...),
			Type:    t,
			Start:   start,
			End:     end,
		})
	}
}

func WithError(err error, pos, end lexer.Position, opts ...Option) error {
	se := &SpanError{
		Err: err,
		Pos: pos,
		End: end,
	}
	for _, opt := range opts {
		opt(se)
	}
	return se
}

// SpanError is an error annotated with source spans.
type SpanError struct {
	Err      error
	Pos, End lexer.Position
	Spans    []Span
}

func (se *SpanError) Error() string {
	return fmt.Sprintf("%s %s", FormatPos(se.Pos), se.Err)
}

func (se *SpanError) Unwrap() error {
	return se.Err
}

// Pretty renders the error with source excerpts and underlined spans. The
// sources and color scheme are carried by the context.
func (se *SpanError) Pretty(ctx context.Context) string {
	var (
		sources = Sources(ctx)
		color   = Color(ctx)
	)

	spans := make([]Span, len(se.Spans))
	copy(spans, se.Spans)
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start.Line < spans[j].Start.Line
	})

	maxLn := 0
	for _, span := range spans {
		ln := fmt.Sprintf("%d", span.Start.Line)
		if len(ln) > maxLn {
			maxLn = len(ln)
		}
	}

	header := color.Sprintf(color.Underline("%s"), FormatPos(se.Pos))

	var sections []string
	fb := sources.Get(se.Pos.Filename)
	for _, span := range spans {
		var (
			underline string
			msgColor  func(interface{}) aurora.Value
		)
		switch span.Type {
		case Primary:
			underline = "^"
			msgColor = color.Red
		default:
			underline = "-"
			msgColor = color.Green
		}

		var lines []string
		lines = append(lines, color.Sprintf(color.Blue("%s │ "), strings.Repeat(" ", maxLn)))

		data := []byte{}
		if fb != nil {
			if line, err := fb.Line(span.Start.Line - 1); err == nil {
				data = line
			}
		}
		end := span.Start.Column - 1
		if end > len(data) {
			end = len(data)
		}
		padding := bytes.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return r
			}
			return ' '
		}, data[:end])

		count := span.End.Column - span.Start.Column
		if count < 1 {
			count = 1
		}

		ln := fmt.Sprintf("%d", span.Start.Line)
		prefix := color.Sprintf(color.Blue("%s%s │ "), ln, strings.Repeat(" ", maxLn-len(ln)))
		lines = append(lines, fmt.Sprintf("%s%s", prefix, data))
		lines = append(lines, fmt.Sprintf(
			"%s%s",
			color.Sprintf(color.Blue("%s │ "), strings.Repeat(" ", maxLn)),
			color.Sprintf(msgColor("%s%s %s"), padding, strings.Repeat(underline, count), span.Message),
		))

		sections = append(sections, strings.Join(lines, "\n"))
	}

	title := color.Sprintf(
		"%s: %s\n",
		color.Bold(color.Red("error")),
		color.Bold(se.Err),
	)
	return fmt.Sprintf("%s%s\n%s", title, header, strings.Join(sections, "\n"))
}

// FormatPos returns a position formatted as a string.
func FormatPos(pos lexer.Position) string {
	return fmt.Sprintf("%s:%d:%d:", pos.Filename, pos.Line, pos.Column)
}
