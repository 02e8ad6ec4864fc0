package expr

import (
	"fmt"
	"strings"
)

// Expr is a node of a parsed expression tree. Trees are immutable once built.
type Expr interface {
	expr()
	String() string
}

// UnaryOp is a prefix operator.
type UnaryOp int

//go:generate go tool stringer -linecomment -type=UnaryOp
const (
	UNARY_NOT        = UnaryOp(0) // !
	UNARY_PLUS       = UnaryOp(1) // +
	UNARY_NEGATE     = UnaryOp(2) // -
	UNARY_COMPLEMENT = UnaryOp(3) // ~
)

// BinaryOp is an infix operator.
type BinaryOp int

//go:generate go tool stringer -linecomment -type=BinaryOp
const (
	OP_MUL         = BinaryOp(0)  // *
	OP_DIV         = BinaryOp(1)  // /
	OP_MOD         = BinaryOp(2)  // %
	OP_ADD         = BinaryOp(3)  // +
	OP_SUB         = BinaryOp(4)  // -
	OP_SHL         = BinaryOp(5)  // <<
	OP_SHR         = BinaryOp(6)  // >>
	OP_LT          = BinaryOp(7)  // <
	OP_LE          = BinaryOp(8)  // <=
	OP_GT          = BinaryOp(9)  // >
	OP_GE          = BinaryOp(10) // >=
	OP_EQ          = BinaryOp(11) // =
	OP_STRICT_EQ   = BinaryOp(12) // ==
	OP_NE          = BinaryOp(13) // <>
	OP_STRICT_NE   = BinaryOp(14) // !=
	OP_AND         = BinaryOp(15) // &
	OP_XOR         = BinaryOp(16) // ^
	OP_OR          = BinaryOp(17) // |
	OP_LOGICAL_AND = BinaryOp(18) // &&
	OP_LOGICAL_OR  = BinaryOp(19) // ||
)

// Priority returns the binding priority of the operator. Lower binds tighter.
func (op BinaryOp) Priority() int {
	switch op {
	case OP_MUL, OP_DIV, OP_MOD:
		return 1
	case OP_ADD, OP_SUB:
		return 2
	case OP_SHL, OP_SHR:
		return 3
	case OP_LT, OP_LE, OP_GT, OP_GE:
		return 4
	case OP_EQ, OP_STRICT_EQ, OP_NE, OP_STRICT_NE:
		return 5
	case OP_AND:
		return 6
	case OP_XOR:
		return 7
	case OP_OR:
		return 8
	case OP_LOGICAL_AND:
		return 9
	default:
		return 10
	}
}

var unaryOps = map[string]UnaryOp{
	"!": UNARY_NOT,
	"+": UNARY_PLUS,
	"-": UNARY_NEGATE,
	"~": UNARY_COMPLEMENT,
}

var binaryOps = map[string]BinaryOp{}

func init() {
	for op := OP_MUL; op <= OP_LOGICAL_OR; op++ {
		binaryOps[op.String()] = op
	}
}

// Literal is a constant value.
type Literal struct {
	Value Value
}

// Identifier is a reference to a symbol.
type Identifier struct {
	Name string
}

// Unary is a prefix operation.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary is an infix operation.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expr
}

// Conditional is the ternary `cond ? then : else` operation.
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Call is a function call.
type Call struct {
	Callee Expr
	Args   []Expr
}

// Index is an indexer, `target[index]`.
type Index struct {
	Target Expr
	Index  Expr
}

// Member is a member access, `target.member`. A leading period has an
// Identifier with an empty name as its target.
type Member struct {
	Target Expr
	Member Expr
}

// ProgramCounter is the `*` terminal.
type ProgramCounter struct{}

func (*Literal) expr()        {}
func (*Identifier) expr()     {}
func (*Unary) expr()          {}
func (*Binary) expr()         {}
func (*Grouping) expr()       {}
func (*Conditional) expr()    {}
func (*Call) expr()           {}
func (*Index) expr()          {}
func (*Member) expr()         {}
func (*ProgramCounter) expr() {}

func (e *Literal) String() string {
	return e.Value.String()
}

func (e *Identifier) String() string {
	return e.Name
}

func (e *Unary) String() string {
	return fmt.Sprintf("%v%v", e.Op, e.Operand)
}

func (e *Binary) String() string {
	return fmt.Sprintf("{%v %v %v}", e.Left, e.Op, e.Right)
}

func (e *Grouping) String() string {
	return fmt.Sprintf("(%v)", e.Inner)
}

func (e *Conditional) String() string {
	return fmt.Sprintf("{%v ? %v : %v}", e.Cond, e.Then, e.Else)
}

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for n, arg := range e.Args {
		args[n] = arg.String()
	}
	return fmt.Sprintf("%v(%v)", e.Callee, strings.Join(args, ", "))
}

func (e *Index) String() string {
	return fmt.Sprintf("%v[%v]", e.Target, e.Index)
}

func (e *Member) String() string {
	return fmt.Sprintf("%v.%v", e.Target, e.Member)
}

func (*ProgramCounter) String() string {
	return "*"
}
