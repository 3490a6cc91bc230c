package cst

import "strings"

func join(nodes []Node) string {
	var b strings.Builder
	for _, node := range nodes {
		b.WriteString(node.String())
	}
	return b.String()
}

func (n *Whitespace) String() string { return n.Value }
func (n *Newline) String() string    { return n.Value }

func (n *Comment) String() string {
	return n.Octothorpe.String() + n.Text
}

func (n *EqualsSign) String() string         { return "=" }
func (n *ColonEqualsSign) String() string    { return ":=" }
func (n *Comma) String() string              { return "," }
func (n *Dot) String() string                { return "." }
func (n *Colon) String() string              { return ":" }
func (n *Bar) String() string                { return "|" }
func (n *Arrow) String() string              { return "->" }
func (n *Percent) String() string            { return "%" }
func (n *Octothorpe) String() string         { return "#" }
func (n *SingleQuote) String() string        { return "'" }
func (n *DoubleQuote) String() string        { return "\"" }
func (n *OpeningParenthesis) String() string { return "(" }
func (n *ClosingParenthesis) String() string { return ")" }
func (n *OpeningBracket) String() string     { return "[" }
func (n *ClosingBracket) String() string     { return "]" }
func (n *OpeningCurlyBrace) String() string  { return "{" }
func (n *ClosingCurlyBrace) String() string  { return "}" }

func (n *Identifier) String() string { return n.Value }
func (n *Symbol) String() string     { return n.Value }
func (n *Int) String() string        { return n.Text }
func (n *TextPart) String() string   { return n.Value }

func (n *TrailingWhitespace) String() string {
	return n.Child.String() + join(n.Whitespace)
}

func (n *OpeningText) String() string {
	return join(n.OpeningSingleQuotes) + n.OpeningDoubleQuote.String()
}

func (n *ClosingText) String() string {
	return n.ClosingDoubleQuote.String() + join(n.ClosingSingleQuotes)
}

func (n *Text) String() string {
	return n.Opening.String() + join(n.Parts) + n.Closing.String()
}

func (n *TextInterpolation) String() string {
	return join(n.OpeningCurlyBraces) + n.Expression.String() + join(n.ClosingCurlyBraces)
}

func (n *Parenthesized) String() string {
	return n.OpeningParenthesis.String() + n.Inner.String() + n.ClosingParenthesis.String()
}

func (n *List) String() string {
	return n.OpeningParenthesis.String() + join(n.Items) + n.ClosingParenthesis.String()
}

func (n *ListItem) String() string {
	return join(n.Children())
}

func (n *Struct) String() string {
	return n.OpeningBracket.String() + join(n.Fields) + n.ClosingBracket.String()
}

func (n *StructField) String() string {
	return join(n.Children())
}

func (n *StructAccess) String() string {
	return n.Struct.String() + n.Dot.String() + n.Key.String()
}

func (n *Call) String() string {
	return n.Receiver.String() + join(n.Arguments)
}

func (n *BinaryBar) String() string {
	return n.Left.String() + n.Bar.String() + n.Right.String()
}

func (n *Match) String() string {
	return n.Expression.String() + n.Percent.String() + join(n.Cases)
}

func (n *MatchCase) String() string {
	return n.Pattern.String() + n.Arrow.String() + join(n.Body)
}

func (n *Lambda) String() string {
	var b strings.Builder
	b.WriteString(n.OpeningCurlyBrace.String())
	b.WriteString(join(n.Parameters))
	if n.Arrow != nil {
		b.WriteString(n.Arrow.String())
	}
	b.WriteString(join(n.Body))
	b.WriteString(n.ClosingCurlyBrace.String())
	return b.String()
}

func (n *Assignment) String() string {
	return n.Left.String() + n.AssignmentSign.String() + join(n.Body)
}

func (n *Error) String() string { return n.UnparsableInput }

// Source concatenates the yields of the given roots. For a tree produced by
// the parser this reproduces the input exactly.
func Source(roots []Node) string {
	return join(roots)
}
