package z80

import (
	"errors"

	"github.com/ezrec/z80asm/translate"
)

var f = translate.From

var (
	ErrNoConvergence = errors.New(f("label values did not converge"))
)

type ErrEncodingUnknown string

func (err ErrEncodingUnknown) Error() string {
	return f("character encoding '%v' unknown", string(err))
}

type ErrEncodingUnsupported string

func (err ErrEncodingUnsupported) Error() string {
	return f("character encoding '%v' unsupported", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
