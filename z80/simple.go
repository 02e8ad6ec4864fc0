package z80

var simpleOpcode = map[string]byte{
	"CCF":  0x3f,
	"CPL":  0x2f,
	"DAA":  0x27,
	"DI":   0xf3,
	"EI":   0xfb,
	"EXX":  0xd9,
	"HALT": 0x76,
	"NOP":  0x00,
	"RLA":  0x17,
	"RLCA": 0x07,
	"RRA":  0x1f,
	"RRCA": 0x0f,
	"SCF":  0x37,
}

// ED prefixed instructions without operands.
var extendedOpcode = map[string]byte{
	"CPD":  0xa9,
	"CPDR": 0xb9,
	"CPI":  0xa1,
	"CPIR": 0xb1,
	"IND":  0xaa,
	"INDR": 0xba,
	"INI":  0xa2,
	"INIR": 0xb2,
	"LDD":  0xa8,
	"LDDR": 0xb8,
	"LDI":  0xa0,
	"LDIR": 0xb0,
	"NEG":  0x44,
	"OTDR": 0xbb,
	"OTIR": 0xb3,
	"OUTD": 0xab,
	"OUTI": 0xa3,
	"RETI": 0x4d,
	"RETN": 0x45,
	"RLD":  0x6f,
	"RRD":  0x67,
}

func encodeSimple(opcode ...byte) encoder {
	return func(in *instruction) {
		in.arity(0, 0)
		in.emit(opcode...)
	}
}
