package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

func TestConvert(t *testing.T) {
	assert := assert.New(t)

	var msgs []diag.Message
	report := func(m diag.Message) { msgs = append(msgs, m) }

	type conversion struct {
		value expr.Value
		byte  byte
		word  uint16
		kinds []diag.Kind
	}

	out := []diag.Kind{diag.KIND_VALUE_OUT_OF_RANGE}

	table := []conversion{
		{expr.UnsignedInt(0), 0, 0, nil},
		{expr.UnsignedInt(0x7f), 0x7f, 0x7f, nil},
		{expr.UnsignedInt(0xff), 0xff, 0xff, nil},
		{expr.SignedInt(-1), 0xff, 0xffff, nil},
		{expr.SignedInt(-0x80), 0x80, 0xff80, nil},
		{expr.Undetermined{}, 0, 0, nil},
		{expr.String("A"), 0x41, 0x41, nil},
		{expr.Float(2), 2, 2, nil},
	}

	for _, entry := range table {
		msgs = nil
		assert.Equal(entry.byte, ToByte(entry.value, nil, report), entry.value)
		assert.Equal(entry.word, ToWord(entry.value, nil, report), entry.value)
		assert.Equal(entry.kinds, kinds(msgs), entry.value)
	}

	msgs = nil
	assert.Equal(byte(0x00), ToByte(expr.UnsignedInt(0x100), nil, report))
	assert.Equal(out, kinds(msgs))

	msgs = nil
	assert.Equal(byte(0x7f), ToByte(expr.SignedInt(-0x81), nil, report))
	assert.Equal(out, kinds(msgs))

	msgs = nil
	assert.Equal(uint16(0x2345), ToWord(expr.UnsignedInt(0x12345), nil, report))
	assert.Equal(out, kinds(msgs))

	msgs = nil
	assert.Equal(uint16(0x4142), ToWord(expr.String("AB"), nil, report))
	assert.Empty(msgs)

	msgs = nil
	assert.Equal(byte(0x43), ToByte(expr.String("ABC"), nil, report))
	assert.Equal([]diag.Kind{diag.KIND_STRING_TOO_LONG}, kinds(msgs))

	msgs = nil
	assert.Equal(byte(1), ToByte(expr.Float(1.5), nil, report))
	assert.Equal([]diag.Kind{diag.KIND_LOSSY_CONVERSION}, kinds(msgs))

	msgs = nil
	assert.Equal(uint32(0xffffffff), ToDword(expr.SignedInt(-1), nil, report))
	assert.Equal(uint64(0x123456789), ToQword(expr.UnsignedInt(0x123456789), nil, report))
	assert.Empty(msgs)

	msgs = nil
	fn := &expr.Function{Name: "fn"}
	assert.Equal(byte(0), ToByte(fn, nil, report))
	assert.Equal([]diag.Kind{diag.KIND_FUNCTION_NOT_INTEGER}, kinds(msgs))
}
