package linter

import (
	"fmt"
	"strings"
)

type ErrLint struct {
	Filename string
	Errs     []error
}

func (e ErrLint) Error() string {
	var errs []string
	for _, err := range e.Errs {
		errs = append(errs, err.Error())
	}
	return fmt.Sprintf("%s\nRun `toffee format --write %s` to rewrite the file", strings.Join(errs, "\n"), e.Filename)
}

type ErrNotFormatted struct {
	Filename string
}

func (e ErrNotFormatted) Error() string {
	return fmt.Sprintf("%s is not formatted canonically", e.Filename)
}
