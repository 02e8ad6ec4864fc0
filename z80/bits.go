package z80

import (
	"github.com/ezrec/z80asm/diag"
)

// encodeBit returns the encoder of BIT, RES or SET.
func encodeBit(op byte) encoder {
	return func(in *instruction) {
		if !in.arity(2, 2) {
			return
		}

		num := in.ea(0)
		ea := in.ea(1)
		if num.Mode != MODE_IMMEDIATE {
			in.notAllowed()
			return
		}

		bit := in.toQword(num.Immediate)
		if bit > 7 {
			in.step.AddTentativeMessage(diag.ValueOutOfRange(int64(bit)))
		}
		code := op | byte(bit&7)<<3

		switch {
		case ea.Mode.IsCommon():
			in.emit(PREFIX_CB, code|ea.Mode.Value())
		case ea.Mode.IsIndexed():
			in.emit(ea.Mode.Value(), PREFIX_CB, byte(ea.Displacement), code|0x06)
		default:
			in.notAllowed()
		}
	}
}

// encodeShift returns the encoder of a rotate or shift instruction.
func encodeShift(op byte) encoder {
	return func(in *instruction) {
		if !in.arity(1, 1) {
			return
		}

		ea := in.ea(0)
		switch {
		case ea.Mode.IsCommon():
			in.emit(PREFIX_CB, op|ea.Mode.Value())
		case ea.Mode.IsIndexed():
			in.emit(ea.Mode.Value(), PREFIX_CB, byte(ea.Displacement), op|0x06)
		default:
			in.notAllowed()
		}
	}
}
