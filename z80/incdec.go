package z80

// encodeIncDec returns the encoder of INC or DEC, given the 8-bit and
// 16-bit opcode bases.
func encodeIncDec(op8 byte, op16 byte) encoder {
	return func(in *instruction) {
		if !in.arity(1, 1) {
			return
		}

		ea := in.ea(0)
		if pair, ok := pairSP(ea.Mode); ok {
			in.emit(op16 | pair<<4)
			return
		}

		switch {
		case ea.Mode.IsCommon():
			in.emit(op8 | ea.Mode.Value()<<3)
		case ea.Mode.IsIndexed():
			in.indexed(ea, op8|0x30)
		case ea.Mode.IsIndex():
			in.emit(ea.Mode.Value(), op16|0x20)
		default:
			in.notAllowed()
		}
	}
}
