package z80

import (
	"github.com/ezrec/z80asm/diag"
)

func encodeLd(in *instruction) {
	if !in.arity(2, 2) {
		return
	}

	dst := in.ea(0)
	src := in.ea(1)

	switch {
	case dst.Mode.IsCommon() && src.Mode.IsCommon():
		// LD (HL),(HL) would be HALT.
		in.emit(0x40 | dst.Mode.Value()<<3 | src.Mode.Value())
		if dst.Mode == MODE_HL_INDIRECT && src.Mode == MODE_HL_INDIRECT {
			in.step.AddMessage(diag.AddressingModeNotAllowed())
		}
	case dst.Mode.IsCommon() && src.Mode.IsIndexed():
		in.indexed(src, 0x46|dst.Mode.Value()<<3)
		if dst.Mode == MODE_HL_INDIRECT {
			in.step.AddMessage(diag.AddressingModeNotAllowed())
		}
	case dst.Mode.IsCommon() && src.Mode == MODE_IMMEDIATE:
		in.emit(0x06|dst.Mode.Value()<<3, in.toByte(src.Immediate))
	case dst.Mode.IsIndexed() && src.Mode.IsCommon():
		in.indexed(dst, 0x70|src.Mode.Value())
		if src.Mode == MODE_HL_INDIRECT {
			in.step.AddMessage(diag.AddressingModeNotAllowed())
		}
	case dst.Mode.IsIndexed() && src.Mode == MODE_IMMEDIATE:
		in.indexed(dst, 0x36)
		in.emit(in.toByte(src.Immediate))
	case dst.Mode == MODE_A:
		in.ldFromMemory(src)
	case src.Mode == MODE_A:
		in.ldToMemory(dst)
	default:
		in.ld16(dst, src)
	}
}

// ldFromMemory encodes the special loads into the accumulator.
func (in *instruction) ldFromMemory(src EffectiveAddress) {
	switch src.Mode {
	case MODE_BC_INDIRECT:
		in.emit(0x0a)
	case MODE_DE_INDIRECT:
		in.emit(0x1a)
	case MODE_IMMEDIATE_INDIRECT:
		in.emit(0x3a)
		in.emitWord(in.toWord(src.Immediate))
	case MODE_I:
		in.emit(PREFIX_ED, 0x57)
	case MODE_R:
		in.emit(PREFIX_ED, 0x5f)
	default:
		in.notAllowed()
	}
}

// ldToMemory encodes the special stores from the accumulator.
func (in *instruction) ldToMemory(dst EffectiveAddress) {
	switch dst.Mode {
	case MODE_BC_INDIRECT:
		in.emit(0x02)
	case MODE_DE_INDIRECT:
		in.emit(0x12)
	case MODE_IMMEDIATE_INDIRECT:
		in.emit(0x32)
		in.emitWord(in.toWord(dst.Immediate))
	case MODE_I:
		in.emit(PREFIX_ED, 0x47)
	case MODE_R:
		in.emit(PREFIX_ED, 0x4f)
	default:
		in.notAllowed()
	}
}

// ld16 encodes the 16-bit loads.
func (in *instruction) ld16(dst, src EffectiveAddress) {
	dstPair, dstIsPair := pairSP(dst.Mode)
	srcPair, srcIsPair := pairSP(src.Mode)

	switch {
	case dstIsPair && src.Mode == MODE_IMMEDIATE:
		in.emit(0x01 | dstPair<<4)
		in.emitWord(in.toWord(src.Immediate))
	case dst.Mode.IsIndex() && src.Mode == MODE_IMMEDIATE:
		in.emit(dst.Mode.Value(), 0x21)
		in.emitWord(in.toWord(src.Immediate))
	case dst.Mode == MODE_HL && src.Mode == MODE_IMMEDIATE_INDIRECT:
		in.emit(0x2a)
		in.emitWord(in.toWord(src.Immediate))
	case dstIsPair && src.Mode == MODE_IMMEDIATE_INDIRECT:
		in.emit(PREFIX_ED, 0x4b|dstPair<<4)
		in.emitWord(in.toWord(src.Immediate))
	case dst.Mode.IsIndex() && src.Mode == MODE_IMMEDIATE_INDIRECT:
		in.emit(dst.Mode.Value(), 0x2a)
		in.emitWord(in.toWord(src.Immediate))
	case dst.Mode == MODE_IMMEDIATE_INDIRECT && src.Mode == MODE_HL:
		in.emit(0x22)
		in.emitWord(in.toWord(dst.Immediate))
	case dst.Mode == MODE_IMMEDIATE_INDIRECT && srcIsPair:
		in.emit(PREFIX_ED, 0x43|srcPair<<4)
		in.emitWord(in.toWord(dst.Immediate))
	case dst.Mode == MODE_IMMEDIATE_INDIRECT && src.Mode.IsIndex():
		in.emit(src.Mode.Value(), 0x22)
		in.emitWord(in.toWord(dst.Immediate))
	case dst.Mode == MODE_SP && src.Mode == MODE_HL:
		in.emit(0xf9)
	case dst.Mode == MODE_SP && src.Mode.IsIndex():
		in.emit(src.Mode.Value(), 0xf9)
	default:
		in.notAllowed()
	}
}
