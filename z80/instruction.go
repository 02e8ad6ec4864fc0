package z80

import (
	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

// instruction is the state of encoding one instruction. It lives for a
// single call of an encoder.
type instruction struct {
	step Step
	env  expr.Env
}

func newInstruction(step Step) *instruction {
	return &instruction{
		step: step,
		env: expr.Env{
			Lookup:   step.Lookup,
			PC:       step.ProgramCounter(),
			Encoding: step.Encoding(),
			Report:   diag.Tentative(step),
		},
	}
}

func (in *instruction) operands() int {
	return in.step.NumOperands()
}

// arity checks that between min and max operands were given. With too few,
// a placeholder byte is emitted and false is returned. With too many, the
// extra operands are ignored.
func (in *instruction) arity(min, max int) bool {
	n := in.step.NumOperands()
	switch {
	case n < min:
		in.step.AddMessage(diag.WrongArity())
		in.emit(0)
		return false
	case n > max:
		in.step.AddMessage(diag.WrongArity())
	}
	return true
}

// ea resolves operand n.
func (in *instruction) ea(n int) EffectiveAddress {
	return ResolveEffectiveAddress(in.step.Operand(n), &in.env, diag.Permanent(in.step))
}

func (in *instruction) emit(data ...byte) {
	for _, b := range data {
		in.step.AppendByte(b)
	}
}

// emitWord emits a 16-bit value, low byte first.
func (in *instruction) emitWord(word uint16) {
	in.emit(byte(word), byte(word>>8))
}

func (in *instruction) toByte(v expr.Value) byte {
	return ToByte(v, in.env.Encoding, in.step.AddTentativeMessage)
}

func (in *instruction) toWord(v expr.Value) uint16 {
	return ToWord(v, in.env.Encoding, in.step.AddTentativeMessage)
}

func (in *instruction) toQword(v expr.Value) uint64 {
	return ToQword(v, in.env.Encoding, in.step.AddTentativeMessage)
}

// notAllowed reports an operand combination the instruction has no
// encoding for, and emits a placeholder byte.
func (in *instruction) notAllowed() {
	in.step.AddMessage(diag.AddressingModeNotAllowed())
	in.emit(0)
}

// target returns the immediate value of operand n. Other modes are reported,
// and stand for an undetermined value so the instruction keeps its length.
func (in *instruction) target(n int) expr.Value {
	ea := in.ea(n)
	if ea.Mode != MODE_IMMEDIATE {
		in.step.AddMessage(diag.AddressingModeNotAllowed())
		return expr.Undetermined{}
	}
	return ea.Immediate
}

// condition parses operand n as a condition code. Invalid conditions are
// reported and encode as COND_NZ.
func (in *instruction) condition(n int, relative bool) Condition {
	text := in.step.Operand(n)
	cond, ok := ParseCondition(text)
	if !ok || (relative && !cond.IsRelative()) {
		in.step.AddMessage(diag.InvalidCondition(text))
		return COND_NZ
	}
	return cond
}

// indexed emits an index register prefix, an opcode and the displacement.
func (in *instruction) indexed(ea EffectiveAddress, op byte) {
	in.emit(ea.Mode.Value(), op, byte(ea.Displacement))
}
