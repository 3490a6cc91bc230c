package toffee

import (
	"errors"
	"fmt"

	"github.com/toffee-lang/toffee/parser/cst"
)

// ErrInvalidUTF8 is returned by Parse for sources that are not valid
// UTF-8. The parser core itself only ever sees valid UTF-8.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// ParseError is a single syntax problem found while parsing. The tree
// around it is still valid; the parser recovered and kept going.
type ParseError struct {
	Kind  cst.ErrorKind
	Input string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return e.Kind.Message()
	}
	return fmt.Sprintf("%s: %q", e.Kind.Message(), e.Input)
}
