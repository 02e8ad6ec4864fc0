package z80

// AddressingMode is how an operand is accessed.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_NONE               = AddressingMode(0)  // none
	MODE_B                  = AddressingMode(1)  // B
	MODE_C                  = AddressingMode(2)  // C
	MODE_D                  = AddressingMode(3)  // D
	MODE_E                  = AddressingMode(4)  // E
	MODE_H                  = AddressingMode(5)  // H
	MODE_L                  = AddressingMode(6)  // L
	MODE_HL_INDIRECT        = AddressingMode(7)  // (HL)
	MODE_A                  = AddressingMode(8)  // A
	MODE_BC                 = AddressingMode(9)  // BC
	MODE_DE                 = AddressingMode(10) // DE
	MODE_HL                 = AddressingMode(11) // HL
	MODE_SP                 = AddressingMode(12) // SP
	MODE_IX                 = AddressingMode(13) // IX
	MODE_IY                 = AddressingMode(14) // IY
	MODE_AF                 = AddressingMode(15) // AF
	MODE_AF_ALT             = AddressingMode(16) // AF'
	MODE_I                  = AddressingMode(17) // I
	MODE_R                  = AddressingMode(18) // R
	MODE_BC_INDIRECT        = AddressingMode(19) // (BC)
	MODE_DE_INDIRECT        = AddressingMode(20) // (DE)
	MODE_SP_INDIRECT        = AddressingMode(21) // (SP)
	MODE_IX_INDIRECT        = AddressingMode(22) // (IX)
	MODE_IY_INDIRECT        = AddressingMode(23) // (IY)
	MODE_C_INDIRECT         = AddressingMode(24) // (C)
	MODE_IX_INDEXED         = AddressingMode(25) // (IX+d)
	MODE_IY_INDEXED         = AddressingMode(26) // (IY+d)
	MODE_IMMEDIATE          = AddressingMode(27) // n
	MODE_IMMEDIATE_INDIRECT = AddressingMode(28) // (n)
)

const (
	PREFIX_IX = byte(0xdd)
	PREFIX_IY = byte(0xfd)
	PREFIX_ED = byte(0xed)
	PREFIX_CB = byte(0xcb)
)

// Value returns the opcode field of the mode: the 3-bit register code of
// the common modes, or the index register prefix of the IX and IY modes.
func (m AddressingMode) Value() byte {
	switch m {
	case MODE_B:
		return 0
	case MODE_C:
		return 1
	case MODE_D:
		return 2
	case MODE_E:
		return 3
	case MODE_H:
		return 4
	case MODE_L:
		return 5
	case MODE_HL_INDIRECT:
		return 6
	case MODE_A:
		return 7
	case MODE_IX, MODE_IX_INDIRECT, MODE_IX_INDEXED:
		return PREFIX_IX
	case MODE_IY, MODE_IY_INDIRECT, MODE_IY_INDEXED:
		return PREFIX_IY
	}
	return 0
}

// IsCommon returns true for the eight registers with a 3-bit code.
func (m AddressingMode) IsCommon() bool {
	return m >= MODE_B && m <= MODE_A
}

// IsIndex returns true for the bare index registers.
func (m AddressingMode) IsIndex() bool {
	return m == MODE_IX || m == MODE_IY
}

// IsIndexed returns true for memory addressed through an index register.
func (m AddressingMode) IsIndexed() bool {
	switch m {
	case MODE_IX_INDIRECT, MODE_IY_INDIRECT, MODE_IX_INDEXED, MODE_IY_INDEXED:
		return true
	}
	return false
}

// pairSP returns the 2-bit code of BC, DE, HL and SP.
func pairSP(m AddressingMode) (code byte, ok bool) {
	ok = true
	switch m {
	case MODE_BC:
		code = 0
	case MODE_DE:
		code = 1
	case MODE_HL:
		code = 2
	case MODE_SP:
		code = 3
	default:
		ok = false
	}
	return
}

// pairAF returns the 2-bit code of BC, DE, HL and AF.
func pairAF(m AddressingMode) (code byte, ok bool) {
	if m == MODE_AF {
		return 3, true
	}
	if m == MODE_SP {
		return
	}
	return pairSP(m)
}

// pairIndex returns the 2-bit code of BC, DE, SP and the index register itself.
func pairIndex(m AddressingMode, index AddressingMode) (code byte, ok bool) {
	switch m {
	case MODE_HL:
		return
	case index:
		return 2, true
	}
	return pairSP(m)
}
