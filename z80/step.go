package z80

import (
	"golang.org/x/text/encoding"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

// Step is one source line in one assembly pass, as seen by the encoders.
// It is provided by the pass driver.
type Step interface {
	ProgramCounter() uint64
	NumLabels() int
	Label(i int) string
	NumOperands() int
	Operand(i int) string
	Encoding() encoding.Encoding
	Lookup(name string) (expr.Value, bool)
	AppendByte(b byte)
	diag.Sink
	DefineLabel(name string, value uint64)
}

// UserStep is a Step that can expand user defined mnemonics.
type UserStep interface {
	Step
	// ExpandMnemonic expands name, and returns false if it is not user defined.
	ExpandMnemonic(name string) bool
}
