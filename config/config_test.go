package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/charmap"

	"github.com/ezrec/z80asm/expr"
	"github.com/ezrec/z80asm/z80"
)

const script = `
origin = 0x8000
encoding = "ISO-8859-1"
max_passes = 4

symbols = {
    "SCREEN": 0x4000,
    "TITLE": "demo",
    "DEBUG": True,
    "RATIO": 1.5,
    "DELTA": -2,
}

mnemonics = {
    "clr": ["XOR A", "LD ({0}),A"],
    "two": "NOP\nNOP",
}

def hi(x):
    return (x >> 8) & 0xff

def lo(x):
    return x & 0xff

def _private():
    return 0
`

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("test.star", script)
	require.NoError(t, err)

	assert.Equal(uint64(0x8000), cfg.Origin)
	assert.Equal("ISO-8859-1", cfg.Encoding)
	assert.Equal(4, cfg.MaxPasses)

	assert.Equal(expr.UnsignedInt(0x4000), cfg.Symbols["SCREEN"])
	assert.Equal(expr.String("demo"), cfg.Symbols["TITLE"])
	assert.Equal(expr.UnsignedInt(1), cfg.Symbols["DEBUG"])
	assert.Equal(expr.Float(1.5), cfg.Symbols["RATIO"])
	assert.Equal(expr.SignedInt(-2), cfg.Symbols["DELTA"])
	assert.Contains(cfg.Symbols, "hi")
	assert.Contains(cfg.Symbols, "lo")
	assert.NotContains(cfg.Symbols, "_private")

	assert.Equal([]string{"XOR A", "LD ({0}),A"}, cfg.Mnemonics["clr"])
	assert.Equal([]string{"NOP", "NOP"}, cfg.Mnemonics["two"])
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("bad.star", "origin = ")
	assert.Error(err)
	var load *ErrLoad
	assert.True(errors.As(err, &load))
	assert.Equal("bad.star", load.Filename)

	_, err = Load("bad.star", `origin = "here"`)
	var value *ErrValue
	assert.True(errors.As(err, &value))
	assert.Equal("origin", value.Name)

	_, err = Load("bad.star", "origin = -1")
	assert.True(errors.Is(err, ErrRange("origin")))

	_, err = Load("bad.star", "origin = 0x10000")
	assert.True(errors.Is(err, ErrRange("origin")))

	_, err = Load("bad.star", `symbols = {"x": [1]}`)
	assert.True(errors.As(err, &value))
	assert.Equal("x", value.Name)

	_, err = Load("bad.star", `mnemonics = {"x": 1}`)
	assert.True(errors.As(err, &value))
}

func TestFunction(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("test.star", script)
	require.NoError(t, err)

	hi, ok := cfg.Symbols["hi"].(*expr.Function)
	require.True(t, ok)
	assert.Equal("hi", hi.Name)

	result, err := hi.Call([]expr.Value{expr.UnsignedInt(0x1234)})
	assert.NoError(err)
	assert.Equal(expr.UnsignedInt(0x12), result)

	result, err = hi.Call([]expr.Value{expr.Undetermined{}})
	assert.NoError(err)
	assert.Equal(expr.Undetermined{}, result)

	_, err = hi.Call(nil)
	assert.Error(err)

	_, err = hi.Call([]expr.Value{hi})
	assert.Error(err)
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("test.star", script)
	require.NoError(t, err)

	asm := &z80.Assembler{}
	require.NoError(t, cfg.Apply(asm))
	assert.Equal(uint64(0x8000), asm.Origin)
	assert.Equal(4, asm.MaxPasses)
	assert.Equal(charmap.ISO8859_1, asm.Encoding)

	source := strings.Join([]string{
		"start: LD A,hi(start)",
		" LD B,lo(SCREEN+1)",
		" clr 4000h",
		" two",
		` DB "é"`,
	}, "\n")
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal([]byte{
		0x3e, 0x80,
		0x06, 0x01,
		0xaf, 0x32, 0x00, 0x40,
		0x00, 0x00,
		0xe9,
	}, prog.Binary())

	cfg.Encoding = "no-such-charset"
	assert.Error(cfg.Apply(asm))
}
