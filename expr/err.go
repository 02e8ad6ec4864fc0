package expr

import (
	"errors"

	"github.com/ezrec/z80asm/translate"
)

var f = translate.From

var (
	ErrNoExpression = errors.New(f("no expression"))
)

// ErrInvalidToken is returned when the parser reaches an invalid token.
type ErrInvalidToken string

func (err ErrInvalidToken) Error() string {
	return f("invalid token '%v'", string(err))
}

// ErrTrailingText is returned by Parse when text remains after the expression.
type ErrTrailingText string

func (err ErrTrailingText) Error() string {
	return f("unexpected '%v' after expression", string(err))
}
