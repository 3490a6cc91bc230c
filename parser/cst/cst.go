package cst

import "math/big"

// Span is a half-open byte range [Start, End) into the original source.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

// ID identifies a node within its tree. IDs are assigned in depth-first
// order by Attribute and are stable for a given source text.
type ID uint32

// Node is implemented by every node in the concrete syntax tree. The tree is
// lossless: String returns the exact bytes the node was parsed from, and
// concatenating the roots' Strings reproduces the input.
type Node interface {
	// Stringer is implemented to yield the node's exact source text.
	String() string

	// Span returns the node's byte range in the original source. It is the
	// zero Span until Attribute has run on the tree.
	Span() Span

	// ID returns the node's identity assigned by Attribute.
	ID() ID

	// Children returns the node's direct children in source order. Trivia
	// children are included; leaves return nil.
	Children() []Node

	setSpan(Span)
	setID(ID)
}

// Base carries the metadata shared by all nodes.
type Base struct {
	span Span
	id   ID
}

func (b *Base) Span() Span      { return b.span }
func (b *Base) ID() ID          { return b.id }
func (b *Base) setSpan(s Span)  { b.span = s }
func (b *Base) setID(id ID)     { b.id = id }
func (b *Base) Children() []Node { return nil }

// Whitespace is a run of horizontal whitespace.
type Whitespace struct {
	Base
	Value string
}

// Newline is a single "\n" or "\r\n".
type Newline struct {
	Base
	Value string
}

// Comment is an octothorpe followed by the comment text up to the end of the
// line. The text excludes the newline.
type Comment struct {
	Base
	Octothorpe Node
	Text       string
}

func (n *Comment) Children() []Node { return []Node{n.Octothorpe} }

type EqualsSign struct{ Base }
type ColonEqualsSign struct{ Base }
type Comma struct{ Base }
type Dot struct{ Base }
type Colon struct{ Base }
type Bar struct{ Base }
type Arrow struct{ Base }
type Percent struct{ Base }
type Octothorpe struct{ Base }
type SingleQuote struct{ Base }
type DoubleQuote struct{ Base }
type OpeningParenthesis struct{ Base }
type ClosingParenthesis struct{ Base }
type OpeningBracket struct{ Base }
type ClosingBracket struct{ Base }
type OpeningCurlyBrace struct{ Base }
type ClosingCurlyBrace struct{ Base }

// Identifier is a word starting with a lowercase letter or underscore. The
// sparkle identifier referring to the builtins struct is also accepted.
type Identifier struct {
	Base
	Value string
}

// Symbol is a word starting with an uppercase letter.
type Symbol struct {
	Base
	Value string
}

// Int is a run of ASCII digits. Value holds the parsed number, Text the
// exact digits including leading zeros.
type Int struct {
	Base
	Value *big.Int
	Text  string
}

// TextPart is a literal fragment inside a Text.
type TextPart struct {
	Base
	Value string
}

// TrailingWhitespace wraps a node to attach the trivia that follows it.
type TrailingWhitespace struct {
	Base
	Child      Node
	Whitespace []Node
}

func (n *TrailingWhitespace) Children() []Node {
	return append([]Node{n.Child}, n.Whitespace...)
}

// OpeningText opens a text literal: zero or more single quotes followed by a
// double quote. The number of single quotes determines the closing sequence
// and the brace count of interpolations.
type OpeningText struct {
	Base
	OpeningSingleQuotes []Node
	OpeningDoubleQuote  Node
}

func (n *OpeningText) Children() []Node {
	return append(append([]Node{}, n.OpeningSingleQuotes...), n.OpeningDoubleQuote)
}

// ClosingText closes a text literal: a double quote followed by as many
// single quotes as the opening had.
type ClosingText struct {
	Base
	ClosingDoubleQuote  Node
	ClosingSingleQuotes []Node
}

func (n *ClosingText) Children() []Node {
	return append([]Node{n.ClosingDoubleQuote}, n.ClosingSingleQuotes...)
}

// Text is a text literal: opening quotes, parts (text parts, trivia, and
// interpolations), and closing quotes.
type Text struct {
	Base
	Opening Node
	Parts   []Node
	Closing Node
}

func (n *Text) Children() []Node {
	children := append([]Node{n.Opening}, n.Parts...)
	return append(children, n.Closing)
}

// TextInterpolation is an interpolated expression inside a Text. The brace
// count is one more than the text's single-quote count.
type TextInterpolation struct {
	Base
	OpeningCurlyBraces []Node
	Expression         Node
	ClosingCurlyBraces []Node
}

func (n *TextInterpolation) Children() []Node {
	children := append(append([]Node{}, n.OpeningCurlyBraces...), n.Expression)
	return append(children, n.ClosingCurlyBraces...)
}

// Parenthesized is a parenthesized expression.
type Parenthesized struct {
	Base
	OpeningParenthesis Node
	Inner              Node
	ClosingParenthesis Node
}

func (n *Parenthesized) Children() []Node {
	return []Node{n.OpeningParenthesis, n.Inner, n.ClosingParenthesis}
}

// List is a parenthesized, comma-separated list. The empty list is spelled
// `(,)` and holds the bare comma as its only item.
type List struct {
	Base
	OpeningParenthesis Node
	Items              []Node
	ClosingParenthesis Node
}

func (n *List) Children() []Node {
	children := append([]Node{n.OpeningParenthesis}, n.Items...)
	return append(children, n.ClosingParenthesis)
}

// ListItem is a list value with an optional trailing comma. A single-item
// list requires the comma to distinguish it from Parenthesized.
type ListItem struct {
	Base
	Value Node
	Comma Node
}

func (n *ListItem) Children() []Node {
	if n.Comma == nil {
		return []Node{n.Value}
	}
	return []Node{n.Value, n.Comma}
}

// Struct is a bracketed collection of fields.
type Struct struct {
	Base
	OpeningBracket Node
	Fields         []Node
	ClosingBracket Node
}

func (n *Struct) Children() []Node {
	children := append([]Node{n.OpeningBracket}, n.Fields...)
	return append(children, n.ClosingBracket)
}

// StructField is a single `key: value` entry. Key and Colon are nil for the
// shorthand form that only names a value.
type StructField struct {
	Base
	Key   Node
	Colon Node
	Value Node
	Comma Node
}

func (n *StructField) Children() []Node {
	var children []Node
	if n.Key != nil {
		children = append(children, n.Key, n.Colon)
	}
	children = append(children, n.Value)
	if n.Comma != nil {
		children = append(children, n.Comma)
	}
	return children
}

// StructAccess is `struct.key`.
type StructAccess struct {
	Base
	Struct Node
	Dot    Node
	Key    Node
}

func (n *StructAccess) Children() []Node {
	return []Node{n.Struct, n.Dot, n.Key}
}

// Call is a receiver followed by arguments, separated by whitespace.
type Call struct {
	Base
	Receiver  Node
	Arguments []Node
}

func (n *Call) Children() []Node {
	return append([]Node{n.Receiver}, n.Arguments...)
}

// BinaryBar is the left-associative `left | right` pipeline.
type BinaryBar struct {
	Base
	Left  Node
	Bar   Node
	Right Node
}

func (n *BinaryBar) Children() []Node {
	return []Node{n.Left, n.Bar, n.Right}
}

// Match is `expression % cases`.
type Match struct {
	Base
	Expression Node
	Percent    Node
	Cases      []Node
}

func (n *Match) Children() []Node {
	return append([]Node{n.Expression, n.Percent}, n.Cases...)
}

// MatchCase is `pattern -> body`.
type MatchCase struct {
	Base
	Pattern Node
	Arrow   Node
	Body    []Node
}

func (n *MatchCase) Children() []Node {
	return append([]Node{n.Pattern, n.Arrow}, n.Body...)
}

// Lambda is `{ parameters -> body }`. Arrow is nil when there is no
// parameter clause; Parameters is empty in that case, too.
type Lambda struct {
	Base
	OpeningCurlyBrace Node
	Parameters        []Node
	Arrow             Node
	Body              []Node
	ClosingCurlyBrace Node
}

func (n *Lambda) Children() []Node {
	children := []Node{n.OpeningCurlyBrace}
	children = append(children, n.Parameters...)
	if n.Arrow != nil {
		children = append(children, n.Arrow)
	}
	children = append(children, n.Body...)
	return append(children, n.ClosingCurlyBrace)
}

// Assignment is `left = body` or `left := body`. The left side is an
// identifier, a call-shaped function head, or a destructuring pattern; the
// distinction is left to downstream passes.
type Assignment struct {
	Base
	Left           Node
	AssignmentSign Node
	Body           []Node
}

func (n *Assignment) Children() []Node {
	return append([]Node{n.Left, n.AssignmentSign}, n.Body...)
}

// Error is a typed diagnostic leaf. UnparsableInput preserves the exact
// bytes that could not be parsed so the tree stays lossless; it is empty for
// errors that mark something missing.
type Error struct {
	Base
	UnparsableInput string
	Kind            ErrorKind
}

// ErrorKind enumerates the parser's recovery diagnostics.
type ErrorKind int

const (
	BinaryBarMissesRight ErrorKind = iota
	CurlyBraceNotClosed
	IdentifierContainsNonAlphanumericAscii
	IntContainsNonDigits
	ListItemMissesValue
	ListNotClosed
	MatchCaseMissesArrow
	MatchCaseMissesBody
	MatchMissesCases
	OpeningParenthesisMissesExpression
	ParenthesisNotClosed
	StructFieldMissesColon
	StructFieldMissesKey
	StructFieldMissesValue
	StructNotClosed
	SymbolContainsNonAlphanumericAscii
	TextInterpolationMissesExpression
	TextInterpolationNotClosed
	TextNotClosed
	TextNotSufficientlyIndented
	TooMuchWhitespace
	UnexpectedCharacters
	UnparsedRest
	WeirdWhitespace
	WeirdWhitespaceInIndentation
)

var errorKindNames = map[ErrorKind]string{
	BinaryBarMissesRight:                   "`|` misses its right side",
	CurlyBraceNotClosed:                    "curly brace is not closed",
	IdentifierContainsNonAlphanumericAscii: "identifier contains non-alphanumeric ASCII",
	IntContainsNonDigits:                   "int contains non-digits",
	ListItemMissesValue:                    "list item misses a value",
	ListNotClosed:                          "list is not closed",
	MatchCaseMissesArrow:                   "match case misses `->`",
	MatchCaseMissesBody:                    "match case misses a body",
	MatchMissesCases:                       "match misses cases",
	OpeningParenthesisMissesExpression:     "parenthesis misses an expression",
	ParenthesisNotClosed:                   "parenthesis is not closed",
	StructFieldMissesColon:                 "struct field misses `:`",
	StructFieldMissesKey:                   "struct field misses a key",
	StructFieldMissesValue:                 "struct field misses a value",
	StructNotClosed:                        "struct is not closed",
	SymbolContainsNonAlphanumericAscii:     "symbol contains non-alphanumeric ASCII",
	TextInterpolationMissesExpression:      "text interpolation misses an expression",
	TextInterpolationNotClosed:             "text interpolation is not closed",
	TextNotClosed:                          "text is not closed",
	TextNotSufficientlyIndented:            "text is not sufficiently indented",
	TooMuchWhitespace:                      "too much whitespace",
	UnexpectedCharacters:                   "unexpected characters",
	UnparsedRest:                           "rest of the input could not be parsed",
	WeirdWhitespace:                        "unsupported whitespace",
	WeirdWhitespaceInIndentation:           "unsupported whitespace in indentation",
}

func (k ErrorKind) Message() string {
	return errorKindNames[k]
}
