package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/charmap"

	"github.com/ezrec/z80asm/diag"
)

// symbols is a symbol table that records every lookup.
type symbols struct {
	values  map[string]Value
	lookups []string
	msgs    []diag.Message
}

func (s *symbols) lookup(name string) (v Value, ok bool) {
	s.lookups = append(s.lookups, name)
	v, ok = s.values[name]
	return
}

func (s *symbols) env(pc uint64) *Env {
	return &Env{
		Lookup: s.lookup,
		PC:     pc,
		Report: func(m diag.Message) { s.msgs = append(s.msgs, m) },
	}
}

func eval(t *testing.T, text string, env *Env) Value {
	e, err := Parse(text, nil)
	require.NoError(t, err, text)
	return Evaluate(e, env)
}

func TestEvaluateLookupOrder(t *testing.T) {
	assert := assert.New(t)

	syms := &symbols{values: map[string]Value{
		"foo": UnsignedInt(100),
		"bar": UnsignedInt(20),
	}}

	assert.Equal(UnsignedInt(123), eval(t, "foo+bar+3", syms.env(0)))
	assert.Equal([]string{"foo", "bar"}, syms.lookups)
	assert.Empty(syms.msgs)

	// Evaluating twice gives the same answer.
	syms.lookups = nil
	assert.Equal(UnsignedInt(123), eval(t, "foo+bar+3", syms.env(0)))
	assert.Equal([]string{"foo", "bar"}, syms.lookups)
}

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Value{
		"-1":                  SignedInt(-1),
		"-0FFFFFFFFFFFFFFFFh": SignedInt(1),
		"0FFFFFFFFFFFFFFFFh":  UnsignedInt(math.MaxUint64),
		"5-10":                UnsignedInt(math.MaxUint64 - 4),
		"7/2":                 UnsignedInt(3),
		"7%4":                 UnsignedInt(3),
		"-7/2":                SignedInt(-3),
		"7.0/2":               Float(3.5),
		"1.5*2":               Float(3),
		"1<<4|1":              UnsignedInt(17),
		"0F0h>>4&3":           UnsignedInt(3),
		"6^3":                 UnsignedInt(5),
		"'A'+1":               UnsignedInt(0x42),
		"'AB'":                String("AB"),
		"'ab'+'cd'":           String("abcd"),
		"'a'<'b'":             UnsignedInt(1),
		"'a'='a'":             UnsignedInt(1),
		"'a'=='a'":            UnsignedInt(1),
		"'a'==97":             UnsignedInt(0),
		"'a'=97":              UnsignedInt(1),
		"3>2":                 UnsignedInt(1),
		"3<=2":                UnsignedInt(0),
		"-1<1":                UnsignedInt(1),
		"1=1.0":               UnsignedInt(1),
		"1==1.0":              UnsignedInt(0),
		"1!=1.0":              UnsignedInt(1),
		"1<>1.0":              UnsignedInt(0),
		"~0":                  UnsignedInt(math.MaxUint64),
		"~-1":                 SignedInt(0),
		"!0":                  UnsignedInt(1),
		"!'x'":                UnsignedInt(0),
		"+5":                  UnsignedInt(5),
		"1&&2":                UnsignedInt(1),
		"0||0":                UnsignedInt(0),
		"1?2:3":               UnsignedInt(2),
		"0?2:3":               UnsignedInt(3),
		"'abc'[1]":            String("b"),
		"*+2":                 UnsignedInt(0x102),
	}

	for text, expected := range table {
		syms := &symbols{}
		assert.Equal(expected, eval(t, text, syms.env(0x100)), text)
		assert.Empty(syms.msgs, text)
	}
}

func TestEvaluateShortCircuit(t *testing.T) {
	assert := assert.New(t)

	syms := &symbols{values: map[string]Value{"x": UnsignedInt(1)}}

	assert.Equal(UnsignedInt(0), eval(t, "0 && nothere", syms.env(0)))
	assert.Equal(UnsignedInt(1), eval(t, "x || nothere", syms.env(0)))
	assert.Equal(UnsignedInt(2), eval(t, "x ? 2 : nothere", syms.env(0)))
	assert.Equal([]string{"x", "x"}, syms.lookups)
	assert.Empty(syms.msgs)
}

func TestEvaluateUndetermined(t *testing.T) {
	assert := assert.New(t)

	// Without a lookup, symbols are silently undetermined.
	assert.Equal(Undetermined{}, eval(t, "x+1", &Env{}))
	assert.Equal(Undetermined{}, eval(t, "x", nil))

	syms := &symbols{values: map[string]Value{"known": UnsignedInt(1)}}
	assert.Equal(Undetermined{}, eval(t, "missing+known", syms.env(0)))
	assert.Equal([]string{"missing", "known"}, syms.lookups)
	if assert.Equal(1, len(syms.msgs)) {
		assert.Equal(diag.KIND_UNDEFINED_SYMBOL, syms.msgs[0].Kind)
	}

	syms.msgs = nil
	assert.Equal(Undetermined{}, eval(t, "missing ? 1 : 2", syms.env(0)))
	assert.Equal(Undetermined{}, eval(t, "-missing", syms.env(0)))
	assert.Equal(Undetermined{}, eval(t, "!missing", syms.env(0)))
	assert.Equal(3, len(syms.msgs))
}

func TestEvaluateDiagnostics(t *testing.T) {
	assert := assert.New(t)

	table := map[string]diag.Kind{
		"1/0":      diag.KIND_DIVISION_BY_ZERO,
		"1%0":      diag.KIND_DIVISION_BY_ZERO,
		"-1/0":     diag.KIND_DIVISION_BY_ZERO,
		"1.0/0":    diag.KIND_DIVISION_BY_ZERO,
		"'abc'[5]": diag.KIND_VALUE_OUT_OF_RANGE,
		"5[0]":     diag.KIND_NOT_INDEXABLE,
		"five(1)":  diag.KIND_NOT_A_FUNCTION,
		"fail()":   diag.KIND_FUNCTION_FAILED,
		"double+1": diag.KIND_FUNCTION_NOT_INTEGER,
	}

	for text, kind := range table {
		syms := &symbols{values: map[string]Value{
			"five":   UnsignedInt(5),
			"double": double,
			"fail": &Function{Name: "fail", Call: func(args []Value) (Value, error) {
				return nil, errors.New("failed")
			}},
		}}
		assert.Equal(Undetermined{}, eval(t, text, syms.env(0)), text)
		if assert.Equal(1, len(syms.msgs), text) {
			assert.Equal(kind, syms.msgs[0].Kind, text)
		}
	}
}

var double = &Function{Name: "double", Call: func(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, errors.New("one argument")
	}
	v, ok := args[0].(UnsignedInt)
	if !ok {
		return Undetermined{}, nil
	}
	return v * 2, nil
}}

func TestEvaluateFunction(t *testing.T) {
	assert := assert.New(t)

	syms := &symbols{values: map[string]Value{"double": double, "x": UnsignedInt(4)}}

	assert.Equal(UnsignedInt(42), eval(t, "double(21)", syms.env(0)))
	assert.Equal(UnsignedInt(18), eval(t, "double(x)+double(1/2)+10", syms.env(0)))
	assert.Empty(syms.msgs)

	// Undetermined callees are not an error of their own.
	assert.Equal(Undetermined{}, eval(t, "f(1)", &Env{}))
}

func TestEvaluateMember(t *testing.T) {
	assert := assert.New(t)

	syms := &symbols{values: map[string]Value{
		".local": UnsignedInt(7),
		"a.b":    UnsignedInt(8),
	}}

	assert.Equal(UnsignedInt(7), eval(t, ".local", syms.env(0)))
	assert.Equal(UnsignedInt(8), eval(t, "a.b", syms.env(0)))
	assert.Equal([]string{".local", "a.b"}, syms.lookups)

	assert.Equal(Undetermined{}, eval(t, "(a).b", syms.env(0)))
}

func TestStringToInt(t *testing.T) {
	assert := assert.New(t)

	var msgs []diag.Message
	report := func(m diag.Message) { msgs = append(msgs, m) }

	assert.Equal(uint64(0x41), StringToInt("A", nil, 1, report))
	assert.Equal(uint64(0x4142), StringToInt("AB", nil, 2, report))
	assert.Equal(uint64(0x41), StringToInt("A", nil, 2, report))
	assert.Equal(uint64(0), StringToInt("", nil, 2, report))
	assert.Empty(msgs)

	assert.Equal(uint64(0x4243), StringToInt("ABC", nil, 2, report))
	if assert.Equal(1, len(msgs)) {
		assert.Equal(diag.KIND_STRING_TOO_LONG, msgs[0].Kind)
	}

	msgs = nil
	assert.Equal(uint64(0xc3a9), StringToInt("é", nil, 2, report))
	assert.Equal(uint64(0xe9), StringToInt("é", charmap.ISO8859_1, 2, report))
	assert.Empty(msgs)
}

type describe struct{}

func (describe) Unsigned(value uint64) string { return "u" + UnsignedInt(value).String() }
func (describe) String(text string) string    { return "s" + text }
func (describe) Undetermined() string         { return "?" }

func TestVisitInteger(t *testing.T) {
	assert := assert.New(t)

	var msgs []diag.Message
	report := func(m diag.Message) { msgs = append(msgs, m) }

	assert.Equal("u5", VisitInteger[string](UnsignedInt(5), describe{}, report))
	assert.Equal("u18446744073709551615", VisitInteger[string](SignedInt(-1), describe{}, report))
	assert.Equal("u3", VisitInteger[string](Float(3), describe{}, report))
	assert.Equal("sAB", VisitInteger[string](String("AB"), describe{}, report))
	assert.Equal("?", VisitInteger[string](Undetermined{}, describe{}, report))
	assert.Equal("?", VisitInteger[string](nil, describe{}, report))
	assert.Empty(msgs)

	assert.Equal("u3", VisitInteger[string](Float(3.75), describe{}, report))
	assert.Equal("?", VisitInteger[string](double, describe{}, report))
	if assert.Equal(2, len(msgs)) {
		assert.Equal(diag.KIND_LOSSY_CONVERSION, msgs[0].Kind)
		assert.Equal(diag.KIND_FUNCTION_NOT_INTEGER, msgs[1].Kind)
	}
}
