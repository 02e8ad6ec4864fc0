package z80

import (
	"golang.org/x/text/encoding"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

// rangeVisitor converts a value to an integer of size bytes, warning if it
// is outside both the signed and the unsigned range of that size.
type rangeVisitor struct {
	size     int
	encoding encoding.Encoding
	report   diag.Reporter
}

func (rv rangeVisitor) Unsigned(value uint64) uint64 {
	if rv.size >= 8 {
		return value
	}

	bits := uint(rv.size * 8)
	low := -int64(1) << (bits - 1)
	high := int64(1)<<bits - 1
	signed := int64(value)
	if signed < low || signed > high {
		if rv.report != nil {
			rv.report(diag.ValueOutOfRange(signed))
		}
	}

	return value & (uint64(1)<<bits - 1)
}

func (rv rangeVisitor) String(text string) uint64 {
	return expr.StringToInt(text, rv.encoding, rv.size, rv.report)
}

func (rv rangeVisitor) Undetermined() uint64 {
	return 0
}

func convert(v expr.Value, size int, enc encoding.Encoding, report diag.Reporter) uint64 {
	return expr.VisitInteger[uint64](v, rangeVisitor{size: size, encoding: enc, report: report}, report)
}

// ToByte converts v to a byte. Values outside -0x80..0xff are truncated
// with a warning.
func ToByte(v expr.Value, enc encoding.Encoding, report diag.Reporter) byte {
	return byte(convert(v, 1, enc, report))
}

// ToWord converts v to a 16-bit word. Values outside -0x8000..0xffff are
// truncated with a warning.
func ToWord(v expr.Value, enc encoding.Encoding, report diag.Reporter) uint16 {
	return uint16(convert(v, 2, enc, report))
}

// ToDword converts v to a 32-bit word.
func ToDword(v expr.Value, enc encoding.Encoding, report diag.Reporter) uint32 {
	return uint32(convert(v, 4, enc, report))
}

// ToQword converts v to a 64-bit word. No range is checked.
func ToQword(v expr.Value, enc encoding.Encoding, report diag.Reporter) uint64 {
	return convert(v, 8, enc, report)
}
