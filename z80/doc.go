// Package z80 implements the instruction encoder and assembler for the Z80.
//
// Each source line is handed to Dispatch as a Step, which resolves the
// operands to effective addresses and appends the encoded bytes. Messages
// that can only change once every label is known are tentative, and are
// kept from the final pass only.
//
// The Assembler runs passes until the labels converge, and supports
// anonymous `+` and `-` labels, the EQU and ORG directives, and user
// defined mnemonics.
package z80
