package expr

import (
	"math"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/ezrec/z80asm/diag"
)

// SymbolLookup returns the current value of a symbol, and false if it is
// not defined.
type SymbolLookup func(name string) (Value, bool)

// Env is the environment an expression is evaluated in.
type Env struct {
	Lookup   SymbolLookup      // If nil, every symbol is silently undetermined.
	PC       uint64            // Value of the `*` terminal.
	Encoding encoding.Encoding // Encoding of strings used as integers.
	Report   diag.Reporter     // Receives evaluation diagnostics. May be nil.
}

// Evaluate computes the value of e. Symbols are looked up left to right,
// once per reference actually evaluated.
func Evaluate(e Expr, env *Env) Value {
	if env == nil {
		env = &Env{}
	}
	return env.eval(e)
}

func (env *Env) report(m diag.Message) {
	if env.Report != nil {
		env.Report(m)
	}
}

func (env *Env) lookup(name string) Value {
	if env.Lookup == nil {
		return Undetermined{}
	}

	value, ok := env.Lookup(name)
	if !ok {
		env.report(diag.UndefinedSymbol(name))
		return Undetermined{}
	}
	if value == nil {
		return Undetermined{}
	}

	return value
}

func (env *Env) eval(e Expr) Value {
	switch e := e.(type) {
	case *Literal:
		return e.Value
	case *Identifier:
		return env.lookup(e.Name)
	case *ProgramCounter:
		return UnsignedInt(env.PC)
	case *Grouping:
		return env.eval(e.Inner)
	case *Member:
		name, ok := memberName(e)
		if !ok {
			return Undetermined{}
		}
		return env.lookup(name)
	case *Unary:
		return env.unary(e.Op, env.eval(e.Operand))
	case *Binary:
		return env.binary(e)
	case *Conditional:
		cond, known := env.truth(env.eval(e.Cond))
		if !known {
			return Undetermined{}
		}
		if cond {
			return env.eval(e.Then)
		}
		return env.eval(e.Else)
	case *Call:
		return env.call(e)
	case *Index:
		return env.index(e)
	}

	return Undetermined{}
}

// memberName returns the dotted symbol name of a chain of member accesses.
func memberName(e Expr) (name string, ok bool) {
	switch e := e.(type) {
	case *Identifier:
		return e.Name, true
	case *Member:
		var target, member string
		target, ok = memberName(e.Target)
		if !ok {
			return
		}
		member, ok = memberName(e.Member)
		if !ok {
			return
		}
		name = target + "." + member
	}

	return
}

// truth returns the truth of v, and whether it could be determined.
func (env *Env) truth(v Value) (truth bool, known bool) {
	known = true
	switch v := v.(type) {
	case UnsignedInt:
		truth = v != 0
	case SignedInt:
		truth = v != 0
	case Float:
		truth = v != 0
	case String:
		truth = len(v) != 0
	case *Function:
		truth = true
	default:
		known = false
	}

	return
}

func boolean(b bool) Value {
	if b {
		return UnsignedInt(1)
	}
	return UnsignedInt(0)
}

// numeric converts strings to integers, and reports functions.
func (env *Env) numeric(v Value) Value {
	switch v := v.(type) {
	case String:
		return UnsignedInt(StringToInt(string(v), env.Encoding, 8, env.Report))
	case *Function:
		env.report(diag.FunctionNotInteger())
		return Undetermined{}
	case nil:
		return Undetermined{}
	}
	return v
}

func (env *Env) unary(op UnaryOp, v Value) Value {
	if op == UNARY_NOT {
		truth, known := env.truth(v)
		if !known {
			return Undetermined{}
		}
		return boolean(!truth)
	}

	switch v := env.numeric(v).(type) {
	case UnsignedInt:
		switch op {
		case UNARY_NEGATE:
			return SignedInt(-int64(v))
		case UNARY_COMPLEMENT:
			return ^v
		}
		return v
	case SignedInt:
		switch op {
		case UNARY_NEGATE:
			return -v
		case UNARY_COMPLEMENT:
			return ^v
		}
		return v
	case Float:
		switch op {
		case UNARY_NEGATE:
			return -v
		case UNARY_COMPLEMENT:
			return SignedInt(^int64(v))
		}
		return v
	}

	return Undetermined{}
}

func (env *Env) binary(e *Binary) Value {
	switch e.Op {
	case OP_LOGICAL_AND, OP_LOGICAL_OR:
		left, known := env.truth(env.eval(e.Left))
		if !known {
			return Undetermined{}
		}
		if left == (e.Op == OP_LOGICAL_OR) {
			return boolean(left)
		}
		right, known := env.truth(env.eval(e.Right))
		if !known {
			return Undetermined{}
		}
		return boolean(right)
	}

	left := env.eval(e.Left)
	right := env.eval(e.Right)
	if IsUndetermined(left) || IsUndetermined(right) {
		return Undetermined{}
	}

	ls, lok := left.(String)
	rs, rok := right.(String)
	if lok && rok {
		switch e.Op {
		case OP_ADD:
			return ls + rs
		case OP_EQ, OP_STRICT_EQ:
			return boolean(ls == rs)
		case OP_NE, OP_STRICT_NE:
			return boolean(ls != rs)
		case OP_LT:
			return boolean(strings.Compare(string(ls), string(rs)) < 0)
		case OP_LE:
			return boolean(strings.Compare(string(ls), string(rs)) <= 0)
		case OP_GT:
			return boolean(strings.Compare(string(ls), string(rs)) > 0)
		case OP_GE:
			return boolean(strings.Compare(string(ls), string(rs)) >= 0)
		}
	}

	if lok != rok {
		switch e.Op {
		case OP_STRICT_EQ:
			return boolean(false)
		case OP_STRICT_NE:
			return boolean(true)
		}
	}

	left = env.numeric(left)
	right = env.numeric(right)
	if IsUndetermined(left) || IsUndetermined(right) {
		return Undetermined{}
	}

	_, lf := left.(Float)
	_, rf := right.(Float)
	_, lsi := left.(SignedInt)
	_, rsi := right.(SignedInt)

	switch {
	case lf || rf:
		return env.floats(e.Op, asFloat(left), asFloat(right), lf == rf)
	case lsi || rsi:
		return env.signed(e.Op, asSigned(left), asSigned(right), lsi == rsi)
	}

	return env.unsigned(e.Op, uint64(left.(UnsignedInt)), uint64(right.(UnsignedInt)))
}

func asFloat(v Value) float64 {
	switch v := v.(type) {
	case UnsignedInt:
		return float64(v)
	case SignedInt:
		return float64(v)
	case Float:
		return float64(v)
	}
	return 0
}

func asSigned(v Value) int64 {
	switch v := v.(type) {
	case UnsignedInt:
		return int64(v)
	case SignedInt:
		return int64(v)
	case Float:
		return int64(v)
	}
	return 0
}

func (env *Env) unsigned(op BinaryOp, a, b uint64) Value {
	switch op {
	case OP_MUL:
		return UnsignedInt(a * b)
	case OP_DIV:
		if b == 0 {
			env.report(diag.DivisionByZero())
			return Undetermined{}
		}
		return UnsignedInt(a / b)
	case OP_MOD:
		if b == 0 {
			env.report(diag.DivisionByZero())
			return Undetermined{}
		}
		return UnsignedInt(a % b)
	case OP_ADD:
		return UnsignedInt(a + b)
	case OP_SUB:
		return UnsignedInt(a - b)
	case OP_SHL:
		return UnsignedInt(a << b)
	case OP_SHR:
		return UnsignedInt(a >> b)
	case OP_LT:
		return boolean(a < b)
	case OP_LE:
		return boolean(a <= b)
	case OP_GT:
		return boolean(a > b)
	case OP_GE:
		return boolean(a >= b)
	case OP_EQ, OP_STRICT_EQ:
		return boolean(a == b)
	case OP_NE, OP_STRICT_NE:
		return boolean(a != b)
	case OP_AND:
		return UnsignedInt(a & b)
	case OP_XOR:
		return UnsignedInt(a ^ b)
	case OP_OR:
		return UnsignedInt(a | b)
	}

	return Undetermined{}
}

// signed computes op on signed integers. sameKind is false when one of the
// operands was unsigned.
func (env *Env) signed(op BinaryOp, a, b int64, sameKind bool) Value {
	switch op {
	case OP_MUL:
		return SignedInt(a * b)
	case OP_DIV:
		if b == 0 {
			env.report(diag.DivisionByZero())
			return Undetermined{}
		}
		return SignedInt(a / b)
	case OP_MOD:
		if b == 0 {
			env.report(diag.DivisionByZero())
			return Undetermined{}
		}
		return SignedInt(a % b)
	case OP_ADD:
		return SignedInt(a + b)
	case OP_SUB:
		return SignedInt(a - b)
	case OP_SHL:
		return SignedInt(a << uint64(b))
	case OP_SHR:
		return SignedInt(a >> uint64(b))
	case OP_LT:
		return boolean(a < b)
	case OP_LE:
		return boolean(a <= b)
	case OP_GT:
		return boolean(a > b)
	case OP_GE:
		return boolean(a >= b)
	case OP_EQ:
		return boolean(a == b)
	case OP_STRICT_EQ:
		return boolean(sameKind && a == b)
	case OP_NE:
		return boolean(a != b)
	case OP_STRICT_NE:
		return boolean(!sameKind || a != b)
	case OP_AND:
		return SignedInt(a & b)
	case OP_XOR:
		return SignedInt(a ^ b)
	case OP_OR:
		return SignedInt(a | b)
	}

	return Undetermined{}
}

// floats computes op on floating point values. Bitwise operations truncate
// to signed integers.
func (env *Env) floats(op BinaryOp, a, b float64, sameKind bool) Value {
	switch op {
	case OP_MUL:
		return Float(a * b)
	case OP_DIV:
		if b == 0 {
			env.report(diag.DivisionByZero())
			return Undetermined{}
		}
		return Float(a / b)
	case OP_MOD:
		if b == 0 {
			env.report(diag.DivisionByZero())
			return Undetermined{}
		}
		return Float(math.Mod(a, b))
	case OP_ADD:
		return Float(a + b)
	case OP_SUB:
		return Float(a - b)
	case OP_LT:
		return boolean(a < b)
	case OP_LE:
		return boolean(a <= b)
	case OP_GT:
		return boolean(a > b)
	case OP_GE:
		return boolean(a >= b)
	case OP_EQ:
		return boolean(a == b)
	case OP_STRICT_EQ:
		return boolean(sameKind && a == b)
	case OP_NE:
		return boolean(a != b)
	case OP_STRICT_NE:
		return boolean(!sameKind || a != b)
	}

	return env.signed(op, int64(a), int64(b), sameKind)
}

func (env *Env) call(e *Call) Value {
	callee := env.eval(e.Callee)
	if IsUndetermined(callee) {
		return Undetermined{}
	}

	fn, ok := callee.(*Function)
	if !ok || fn.Call == nil {
		env.report(diag.NotAFunction())
		return Undetermined{}
	}

	args := make([]Value, len(e.Args))
	for n, arg := range e.Args {
		args[n] = env.eval(arg)
	}

	result, err := fn.Call(args)
	if err != nil {
		env.report(diag.FunctionFailed(fn.Name, err))
		return Undetermined{}
	}
	if result == nil {
		return Undetermined{}
	}

	return result
}

func (env *Env) index(e *Index) Value {
	target := env.eval(e.Target)
	index := env.numeric(env.eval(e.Index))
	if IsUndetermined(target) || IsUndetermined(index) {
		return Undetermined{}
	}

	text, ok := target.(String)
	if !ok {
		env.report(diag.NotIndexable())
		return Undetermined{}
	}

	n := asSigned(index)
	if n < 0 || n >= int64(len(text)) {
		env.report(diag.ValueOutOfRange(n))
		return Undetermined{}
	}

	return text[n : n+1]
}
