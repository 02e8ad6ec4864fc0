package z80

import (
	"github.com/ezrec/z80asm/diag"
)

func encodeIm(in *instruction) {
	if !in.arity(1, 1) {
		return
	}

	mode := in.ea(0)
	if mode.Mode != MODE_IMMEDIATE {
		in.notAllowed()
		return
	}

	in.emit(PREFIX_ED)
	switch in.toQword(mode.Immediate) {
	case 0:
		in.emit(0x46)
	case 1:
		in.emit(0x56)
	case 2:
		in.emit(0x5e)
	default:
		in.step.AddTentativeMessage(diag.InvalidImmediateMode())
		in.emit(0x46)
	}
}

func encodeEx(in *instruction) {
	if !in.arity(2, 2) {
		return
	}

	left := in.ea(0)
	right := in.ea(1)
	switch {
	case left.Mode == MODE_DE && right.Mode == MODE_HL:
		in.emit(0xeb)
	case left.Mode == MODE_AF && right.Mode == MODE_AF_ALT:
		in.emit(0x08)
	case left.Mode == MODE_SP_INDIRECT && right.Mode == MODE_HL:
		in.emit(0xe3)
	case left.Mode == MODE_SP_INDIRECT && right.Mode.IsIndex():
		in.emit(right.Mode.Value(), 0xe3)
	default:
		in.notAllowed()
	}
}

// io encodes IN and OUT, given the register and port operands.
func (in *instruction) io(reg, port EffectiveAddress, fixed byte, variable byte) {
	switch {
	case reg.Mode == MODE_A && port.Mode == MODE_IMMEDIATE_INDIRECT:
		in.emit(fixed, in.toByte(port.Immediate))
	case reg.Mode.IsCommon() && port.Mode == MODE_C_INDIRECT:
		in.emit(PREFIX_ED, variable|reg.Mode.Value()<<3)
		if reg.Mode == MODE_HL_INDIRECT {
			in.step.AddMessage(diag.AddressingModeNotAllowed())
		}
	default:
		in.notAllowed()
	}
}

func encodeIn(in *instruction) {
	if !in.arity(2, 2) {
		return
	}

	reg := in.ea(0)
	port := in.ea(1)
	in.io(reg, port, 0xdb, 0x40)
}

func encodeOut(in *instruction) {
	if !in.arity(2, 2) {
		return
	}

	port := in.ea(0)
	reg := in.ea(1)
	in.io(reg, port, 0xd3, 0x41)
}

// encodeStack returns the encoder of PUSH or POP.
func encodeStack(op byte) encoder {
	return func(in *instruction) {
		if !in.arity(1, 1) {
			return
		}

		ea := in.ea(0)
		if pair, ok := pairAF(ea.Mode); ok {
			in.emit(op | pair<<4)
			return
		}
		if ea.Mode.IsIndex() {
			in.emit(ea.Mode.Value(), op|0x20)
			return
		}
		in.notAllowed()
	}
}
