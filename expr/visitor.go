package expr

import (
	"math"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/ezrec/z80asm/diag"
)

// DefaultEncoding is the character encoding used when none is configured.
var DefaultEncoding encoding.Encoding = unicode.UTF8

// IntegerVisitor receives the integer interpretation of a Value.
type IntegerVisitor[T any] interface {
	Unsigned(value uint64) T
	String(text string) T
	Undetermined() T
}

// VisitInteger dispatches v to the visitor as an integer. Signed values are
// passed as their two's complement bits, floats are truncated with a warning
// when not integral, and functions are reported and treated as undetermined.
func VisitInteger[T any](v Value, visitor IntegerVisitor[T], report diag.Reporter) T {
	switch v := v.(type) {
	case UnsignedInt:
		return visitor.Unsigned(uint64(v))
	case SignedInt:
		return visitor.Unsigned(uint64(v))
	case Float:
		if float64(v) != math.Trunc(float64(v)) && report != nil {
			report(diag.LossyConversion(float64(v)))
		}
		return visitor.Unsigned(uint64(int64(v)))
	case String:
		return visitor.String(string(v))
	case *Function:
		if report != nil {
			report(diag.FunctionNotInteger())
		}
	}

	return visitor.Undetermined()
}

// Encode converts text to bytes in the character encoding enc.
// Characters the encoding cannot represent are replaced.
func Encode(text string, enc encoding.Encoding) []byte {
	if enc == nil {
		enc = DefaultEncoding
	}

	data, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return []byte(text)
	}

	return data
}

// StringToInt packs the encoded bytes of text, most significant first, into
// an integer of size bytes. Longer strings keep their last size bytes.
func StringToInt(text string, enc encoding.Encoding, size int, report diag.Reporter) (value uint64) {
	data := Encode(text, enc)
	if len(data) > size {
		if report != nil {
			report(diag.StringTooLong(text))
		}
		data = data[len(data)-size:]
	}

	for _, b := range data {
		value = (value << 8) | uint64(b)
	}

	return
}
