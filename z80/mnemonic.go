package z80

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/z80asm/diag"
)

// encoder encodes one instruction.
type encoder func(in *instruction)

var mnemonics = map[string]encoder{
	"ADD":  encodeAdd,
	"ADC":  encodeCarry(aluOpcode["ADC"], 0x4a),
	"SBC":  encodeCarry(aluOpcode["SBC"], 0x42),
	"SUB":  encodeAlu(aluOpcode["SUB"]),
	"AND":  encodeAlu(aluOpcode["AND"]),
	"XOR":  encodeAlu(aluOpcode["XOR"]),
	"OR":   encodeAlu(aluOpcode["OR"]),
	"CP":   encodeAlu(aluOpcode["CP"]),
	"INC":  encodeIncDec(0x04, 0x03),
	"DEC":  encodeIncDec(0x05, 0x0b),
	"BIT":  encodeBit(0x40),
	"RES":  encodeBit(0x80),
	"SET":  encodeBit(0xc0),
	"RLC":  encodeShift(0x00),
	"RRC":  encodeShift(0x08),
	"RL":   encodeShift(0x10),
	"RR":   encodeShift(0x18),
	"SLA":  encodeShift(0x20),
	"SRA":  encodeShift(0x28),
	"SRL":  encodeShift(0x38),
	"LD":   encodeLd,
	"JP":   encodeJp,
	"CALL": encodeCall,
	"JR":   encodeJr,
	"DJNZ": encodeDjnz,
	"RET":  encodeRet,
	"RST":  encodeRst,
	"IM":   encodeIm,
	"EX":   encodeEx,
	"IN":   encodeIn,
	"OUT":  encodeOut,
	"PUSH": encodeStack(0xc5),
	"POP":  encodeStack(0xc1),
	"DB":   encodeDb,
	"DEFB": encodeDb,
	"DW":   encodeDw,
	"DEFW": encodeDw,
	"DD":   encodeDd,
	"DEFD": encodeDd,
	"DS":   encodeDs,
	"DEFS": encodeDs,
}

func init() {
	for name, op := range simpleOpcode {
		mnemonics[name] = encodeSimple(op)
	}
	for name, op := range extendedOpcode {
		mnemonics[name] = encodeSimple(PREFIX_ED, op)
	}
}

// Mnemonics returns the built-in mnemonics in sorted order.
func Mnemonics() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(mnemonics)))
}

// IsMnemonic returns true if name is a built-in mnemonic, ignoring case.
func IsMnemonic(name string) (ok bool) {
	_, ok = mnemonics[strings.ToUpper(name)]
	return
}

// Dispatch encodes one source line. The labels of the line are defined at
// the program counter first, even if the mnemonic is unknown. A leading
// `!` on the mnemonic skips user defined mnemonics.
func Dispatch(step Step, mnemonic string) {
	for n := range step.NumLabels() {
		step.DefineLabel(step.Label(n), step.ProgramCounter())
	}

	builtin := strings.HasPrefix(mnemonic, "!")
	name := strings.ToUpper(strings.TrimPrefix(mnemonic, "!"))
	if len(name) == 0 {
		if builtin {
			step.AddMessage(diag.UnknownMnemonic(mnemonic))
		}
		return
	}

	if !builtin {
		user, ok := step.(UserStep)
		if ok && user.ExpandMnemonic(name) {
			return
		}
	}

	encode, ok := mnemonics[name]
	if !ok {
		step.AddMessage(diag.UnknownMnemonic(mnemonic))
		return
	}

	encode(newInstruction(step))
}
