package z80

import (
	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

func encodeJp(in *instruction) {
	if !in.arity(1, 2) {
		return
	}

	if in.operands() >= 2 {
		cond := in.condition(0, false)
		target := in.target(1)
		in.emit(0xc2 | byte(cond)<<3)
		in.emitWord(in.toWord(target))
		return
	}

	target := in.ea(0)
	switch target.Mode {
	case MODE_IMMEDIATE:
		in.emit(0xc3)
		in.emitWord(in.toWord(target.Immediate))
	case MODE_HL_INDIRECT:
		in.emit(0xe9)
	case MODE_IX_INDIRECT, MODE_IY_INDIRECT:
		in.emit(target.Mode.Value(), 0xe9)
	default:
		in.notAllowed()
	}
}

func encodeCall(in *instruction) {
	if !in.arity(1, 2) {
		return
	}

	op := byte(0xcd)
	n := 0
	if in.operands() >= 2 {
		op = 0xc4 | byte(in.condition(0, false))<<3
		n = 1
	}

	target := in.target(n)
	in.emit(op)
	in.emitWord(in.toWord(target))
}

// relative emits the displacement of a relative branch to target from the
// instruction at the program counter.
func (in *instruction) relative(target expr.Value) {
	if expr.IsUndetermined(target) {
		in.emit(0)
		return
	}

	offset := int64(in.toQword(target) - in.env.PC - 2)
	if offset < -0x80 || offset > 0x7f {
		in.step.AddTentativeMessage(diag.BranchOutOfRange())
	}
	in.emit(byte(offset))
}

func encodeJr(in *instruction) {
	if !in.arity(1, 2) {
		return
	}

	op := byte(0x18)
	n := 0
	if in.operands() >= 2 {
		op = 0x20 | byte(in.condition(0, true))<<3
		n = 1
	}

	target := in.target(n)
	in.emit(op)
	in.relative(target)
}

func encodeDjnz(in *instruction) {
	if !in.arity(1, 1) {
		return
	}

	target := in.target(0)
	in.emit(0x10)
	in.relative(target)
}

func encodeRet(in *instruction) {
	if !in.arity(0, 1) {
		return
	}

	if in.operands() == 0 {
		in.emit(0xc9)
		return
	}

	in.emit(0xc0 | byte(in.condition(0, false))<<3)
}

func encodeRst(in *instruction) {
	if !in.arity(1, 1) {
		return
	}

	address := in.toQword(in.target(0))
	if address&^0x38 != 0 {
		in.step.AddTentativeMessage(diag.InvalidRestartTarget(address))
	}
	in.emit(0xc7 | byte(address&0x38))
}
