package z80

var aluOpcode = map[string]byte{
	"ADD": 0x80,
	"ADC": 0x88,
	"SUB": 0x90,
	"SBC": 0x98,
	"AND": 0xa0,
	"XOR": 0xa8,
	"OR":  0xb0,
	"CP":  0xb8,
}

// alu emits an 8-bit arithmetic or logic operation on the accumulator.
func (in *instruction) alu(op byte, ea EffectiveAddress) {
	switch {
	case ea.Mode.IsCommon():
		in.emit(op | ea.Mode.Value())
	case ea.Mode.IsIndexed():
		in.indexed(ea, op|0x06)
	case ea.Mode == MODE_IMMEDIATE:
		in.emit(op|0x46, in.toByte(ea.Immediate))
	default:
		in.notAllowed()
	}
}

// encodeAlu returns the encoder of a single operand ALU instruction.
func encodeAlu(op byte) encoder {
	return func(in *instruction) {
		if !in.arity(1, 1) {
			return
		}
		in.alu(op, in.ea(0))
	}
}

func encodeAdd(in *instruction) {
	if !in.arity(2, 2) {
		return
	}

	dst := in.ea(0)
	src := in.ea(1)
	switch {
	case dst.Mode == MODE_A:
		in.alu(aluOpcode["ADD"], src)
	case dst.Mode == MODE_HL:
		pair, ok := pairSP(src.Mode)
		if !ok {
			in.notAllowed()
			return
		}
		in.emit(0x09 | pair<<4)
	case dst.Mode.IsIndex():
		pair, ok := pairIndex(src.Mode, dst.Mode)
		if !ok {
			in.notAllowed()
			return
		}
		in.emit(dst.Mode.Value(), 0x09|pair<<4)
	default:
		in.notAllowed()
	}
}

// encodeCarry returns the encoder of ADC or SBC, which also have a 16-bit
// form on HL.
func encodeCarry(op byte, opHL byte) encoder {
	return func(in *instruction) {
		if !in.arity(2, 2) {
			return
		}

		dst := in.ea(0)
		src := in.ea(1)
		switch dst.Mode {
		case MODE_A:
			in.alu(op, src)
		case MODE_HL:
			pair, ok := pairSP(src.Mode)
			if !ok {
				in.notAllowed()
				return
			}
			in.emit(PREFIX_ED, opHL|pair<<4)
		default:
			in.notAllowed()
		}
	}
}
