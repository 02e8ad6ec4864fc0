package expr

import (
	"fmt"
	"strconv"
)

// Value is the result of evaluating an expression.
type Value interface {
	value()
	String() string
}

// UnsignedInt is an unsigned 64-bit integer value.
type UnsignedInt uint64

// SignedInt is a signed 64-bit integer value.
type SignedInt int64

// Float is a floating point value.
type Float float64

// String is a text value.
type String string

// Undetermined is the value of an expression that cannot be evaluated yet,
// typically because it refers to a symbol not yet defined on this pass.
type Undetermined struct{}

// Function is a value that can be called from an expression.
type Function struct {
	Name string
	Call func(args []Value) (Value, error)
}

func (UnsignedInt) value()  {}
func (SignedInt) value()    {}
func (Float) value()        {}
func (String) value()       {}
func (Undetermined) value() {}
func (*Function) value()    {}

func (v UnsignedInt) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

func (v SignedInt) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v String) String() string {
	return strconv.Quote(string(v))
}

func (Undetermined) String() string {
	return "?"
}

func (fn *Function) String() string {
	return fmt.Sprintf("%v()", fn.Name)
}

// IsUndetermined returns true if v is missing or Undetermined.
func IsUndetermined(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Undetermined)
	return ok
}
