package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	d := defines{}
	assert.NoError(d.Set("DEBUG"))
	assert.NoError(d.Set("BASE=8000h"))
	assert.NoError(d.Set("NAME='x'"))
	assert.Error(d.Set("=5"))
	assert.Error(d.Set("BAD=1+"))

	assert.Equal(defines{
		"DEBUG": expr.UnsignedInt(1),
		"BASE":  expr.UnsignedInt(0x8000),
		"NAME":  expr.String("x"),
	}, d)
}

func TestSeverity(t *testing.T) {
	assert := assert.New(t)

	m := diag.WrongArity()
	assert.Equal("error", severity(m, false))
	assert.Equal(colorRed+"error"+colorReset, severity(m, true))

	m = diag.ValueOutOfRange(5)
	assert.Equal(colorYellow+"warning"+colorReset, severity(m, true))
}
