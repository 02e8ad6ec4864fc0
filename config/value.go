package config

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/z80asm/expr"
)

// FromStarlark converts a Starlark value to an expression value. Booleans
// become 0 or 1.
func FromStarlark(name string, value starlark.Value) (result expr.Value, err error) {
	switch value := value.(type) {
	case starlark.Int:
		if u, ok := value.Uint64(); ok {
			result = expr.UnsignedInt(u)
		} else if i, ok := value.Int64(); ok {
			result = expr.SignedInt(i)
		} else {
			err = ErrRange(name)
		}
	case starlark.Float:
		result = expr.Float(value)
	case starlark.String:
		result = expr.String(value)
	case starlark.Bool:
		result = expr.UnsignedInt(0)
		if value {
			result = expr.UnsignedInt(1)
		}
	case starlark.NoneType:
		result = expr.Undetermined{}
	case starlark.Callable:
		result = Function(name, value)
	default:
		err = &ErrValue{Name: name, Type: value.Type()}
	}

	return
}

// ToStarlark converts an expression value to a Starlark value.
func ToStarlark(name string, value expr.Value) (result starlark.Value, err error) {
	switch value := value.(type) {
	case expr.UnsignedInt:
		result = starlark.MakeUint64(uint64(value))
	case expr.SignedInt:
		result = starlark.MakeInt64(int64(value))
	case expr.Float:
		result = starlark.Float(value)
	case expr.String:
		result = starlark.String(value)
	case expr.Undetermined:
		result = starlark.None
	default:
		err = &ErrValue{Name: name, Type: value.String()}
	}

	return
}

// Function wraps a Starlark callable as an expression function. Each call
// runs on its own thread. A call with an undetermined argument is not made,
// and its result is undetermined.
func Function(name string, fn starlark.Callable) *expr.Function {
	return &expr.Function{
		Name: name,
		Call: func(args []expr.Value) (result expr.Value, err error) {
			tuple := make(starlark.Tuple, len(args))
			for n, arg := range args {
				if expr.IsUndetermined(arg) {
					result = expr.Undetermined{}
					return
				}
				tuple[n], err = ToStarlark(name, arg)
				if err != nil {
					return
				}
			}

			thread := &starlark.Thread{Name: name}
			rc, err := starlark.Call(thread, fn, tuple, nil)
			if err != nil {
				return
			}

			result, err = FromStarlark(name, rc)
			return
		},
	}
}
