package z80

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

// EffectiveAddress is a classified operand.
type EffectiveAddress struct {
	Mode         AddressingMode
	Immediate    expr.Value // Set for MODE_IMMEDIATE and MODE_IMMEDIATE_INDIRECT.
	Displacement int8       // Set for the indexed modes.
}

var directRegisters = map[string]AddressingMode{
	"B":   MODE_B,
	"C":   MODE_C,
	"D":   MODE_D,
	"E":   MODE_E,
	"H":   MODE_H,
	"L":   MODE_L,
	"A":   MODE_A,
	"BC":  MODE_BC,
	"DE":  MODE_DE,
	"HL":  MODE_HL,
	"SP":  MODE_SP,
	"IX":  MODE_IX,
	"IY":  MODE_IY,
	"AF":  MODE_AF,
	"AF'": MODE_AF_ALT,
	"I":   MODE_I,
	"R":   MODE_R,
}

var indirectRegisters = map[string]AddressingMode{
	"HL": MODE_HL_INDIRECT,
	"BC": MODE_BC_INDIRECT,
	"DE": MODE_DE_INDIRECT,
	"SP": MODE_SP_INDIRECT,
	"IX": MODE_IX_INDIRECT,
	"IY": MODE_IY_INDIRECT,
	"C":  MODE_C_INDIRECT,
}

var indexedRegisters = map[string]AddressingMode{
	"IX": MODE_IX_INDEXED,
	"IY": MODE_IY_INDEXED,
}

func register(e expr.Expr, table map[string]AddressingMode) (mode AddressingMode, ok bool) {
	id, ok := e.(*expr.Identifier)
	if !ok {
		return
	}
	mode, ok = table[strings.ToUpper(id.Name)]
	return
}

// ResolveEffectiveAddress classifies the operand text. Syntax errors are
// sent to permanent, and evaluation diagnostics to env.Report. A syntax
// error leaves the mode as MODE_NONE.
func ResolveEffectiveAddress(operand string, env *expr.Env, permanent diag.Reporter) (ea EffectiveAddress) {
	e, err := expr.Parse(operand, permanent)
	if err != nil {
		var invalid expr.ErrInvalidToken
		var trailing expr.ErrTrailingText
		switch {
		case errors.As(err, &invalid):
			permanent(diag.InvalidToken(string(invalid)))
		case errors.As(err, &trailing):
			permanent(diag.TrailingText(string(trailing)))
		default:
			permanent(diag.SyntaxError())
		}
		return
	}

	if mode, ok := register(e, directRegisters); ok {
		ea.Mode = mode
		return
	}

	group, ok := e.(*expr.Grouping)
	if !ok {
		ea.Mode = MODE_IMMEDIATE
		ea.Immediate = expr.Evaluate(e, env)
		return
	}

	if mode, ok := register(group.Inner, indirectRegisters); ok {
		ea.Mode = mode
		return
	}

	if bin, ok := group.Inner.(*expr.Binary); ok && (bin.Op == expr.OP_ADD || bin.Op == expr.OP_SUB) {
		if mode, ok := register(bin.Left, indexedRegisters); ok {
			ea.Mode = mode
			ea.Displacement = displacement(expr.Evaluate(bin.Right, env), bin.Op == expr.OP_SUB, env.Encoding, env.Report)
			return
		}
	}

	ea.Mode = MODE_IMMEDIATE_INDIRECT
	ea.Immediate = expr.Evaluate(group.Inner, env)
	return
}

type displacementVisitor struct {
	negate   bool
	encoding encoding.Encoding
	report   diag.Reporter
}

func (dv displacementVisitor) Unsigned(value uint64) int8 {
	if dv.negate {
		value = -value
	}
	d := int64(int16(value))
	if d < -0x80 || d > 0x7f {
		if dv.report != nil {
			dv.report(diag.ValueOutOfRange(d))
		}
	}
	return int8(d)
}

func (dv displacementVisitor) String(text string) int8 {
	value := expr.StringToInt(text, dv.encoding, 1, dv.report)
	if dv.negate {
		value = -value
	}
	return int8(value)
}

func (dv displacementVisitor) Undetermined() int8 {
	return 0
}

// displacement converts an index register offset to a signed byte.
func displacement(v expr.Value, negate bool, enc encoding.Encoding, report diag.Reporter) int8 {
	return expr.VisitInteger[int8](v, displacementVisitor{negate: negate, encoding: enc, report: report}, report)
}
