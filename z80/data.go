package z80

import (
	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

// encodeDb emits bytes. String operands emit every encoded character.
func encodeDb(in *instruction) {
	if !in.arity(1, 255) {
		return
	}

	for n := range in.operands() {
		ea := in.ea(n)
		if ea.Mode != MODE_IMMEDIATE {
			in.notAllowed()
			continue
		}
		if text, ok := ea.Immediate.(expr.String); ok && len(text) > 0 {
			in.emit(expr.Encode(string(text), in.env.Encoding)...)
			continue
		}
		in.emit(in.toByte(ea.Immediate))
	}
}

// encodeDw emits 16-bit words, low byte first.
func encodeDw(in *instruction) {
	if !in.arity(1, 255) {
		return
	}

	for n := range in.operands() {
		in.emitWord(in.toWord(in.target(n)))
	}
}

// encodeDd emits 32-bit words, low byte first.
func encodeDd(in *instruction) {
	if !in.arity(1, 255) {
		return
	}

	for n := range in.operands() {
		dword := ToDword(in.target(n), in.env.Encoding, diag.Tentative(in.step))
		in.emitWord(uint16(dword))
		in.emitWord(uint16(dword >> 16))
	}
}

// encodeDs emits a block of a repeated fill byte, zero by default.
func encodeDs(in *instruction) {
	if !in.arity(1, 2) {
		return
	}

	size := in.ea(0)
	if size.Mode != MODE_IMMEDIATE {
		in.notAllowed()
		return
	}

	var fill byte
	if in.operands() >= 2 {
		value := in.ea(1)
		if value.Mode != MODE_IMMEDIATE {
			in.notAllowed()
			return
		}
		fill = in.toByte(value.Immediate)
	}

	count := in.toWord(size.Immediate)
	for range count {
		in.emit(fill)
	}
}
