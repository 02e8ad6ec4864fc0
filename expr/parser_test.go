package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/z80asm/diag"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := map[string]string{
		"1+2*3":       "{1 + {2 * 3}}",
		"1*2+3":       "{{1 * 2} + 3}",
		"a-b-c":       "{{a - b} - c}",
		"a<<1|b&c":    "{{a << 1} | {b & c}}",
		"a||b&&c":     "{a || {b && c}}",
		"a=b<c":       "{a = {b < c}}",
		"a^b|c":       "{{a ^ b} | c}",
		"a%b>>c":      "{{a % b} >> c}",
		"a<>b==c":     "{{a <> b} == c}",
		"-a":          "-a",
		"a--b":        "{a - -b}",
		"a+-b":        "{a + -b}",
		"!~a":         "!~a",
		"- 1":         "-1",
		"a?b:c?d:e":   "{a ? b : {c ? d : e}}",
		"a&&b?c:d":    "{{a && b} ? c : d}",
		"f(1,2)":      "f(1, 2)",
		"f()":         "f()",
		"f(x)(y)":     "f(x)(y)",
		"x[1]":        "x[1]",
		"x[i+1][2]":   "x[{i + 1}][2]",
		"(a)":         "(a)",
		"((a+b))*c":   "{(({a + b})) * c}",
		".a":          ".a",
		"(a).b":       "(a).b",
		"*":           "*",
		"*+1":         "{* + 1}",
		"'A'":         `"A"`,
		`"a\tb"`:      `"a\tb"`,
		"1.5":         "1.5",
		"0FFh":        "255",
		"101b":        "5",
		"0FFFFFFFFFFFFFFFFh": "18446744073709551615",
	}

	for text, expected := range table {
		e, err := Parse(text, nil)
		if assert.NoError(err, text) {
			assert.Equal(expected, e.String(), text)
		}
	}
}

func TestParseAnonymous(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"-", "--", "+", "+++"} {
		e, err := Parse(text, nil)
		if assert.NoError(err, text) {
			assert.Equal(&Identifier{Name: text}, e, text)
		}
	}

	e, err := Parse("(+)", nil)
	assert.NoError(err)
	assert.Equal(&Grouping{Inner: &Identifier{Name: "+"}}, e)

	e, err = Parse("-?1:2", nil)
	assert.NoError(err)
	assert.Equal(&Conditional{
		Cond: &Identifier{Name: "-"},
		Then: &Literal{Value: UnsignedInt(1)},
		Else: &Literal{Value: UnsignedInt(2)},
	}, e)

	e, next, err := ParseLexer(NewLexer("--,a"), nil)
	assert.NoError(err)
	assert.Equal(&Identifier{Name: "--"}, e)
	assert.Equal(TOKEN_COMMA, next.Kind())

	// A sign run followed by an operand is a chain of unary operators.
	e, err = Parse("--a", nil)
	assert.NoError(err)
	assert.Equal(&Unary{Op: UNARY_NEGATE, Operand: &Unary{Op: UNARY_NEGATE, Operand: &Identifier{Name: "a"}}}, e)
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("", nil)
	assert.ErrorIs(err, ErrNoExpression)

	_, err = Parse("!", nil)
	assert.ErrorIs(err, ErrNoExpression)

	_, err = Parse("0A", nil)
	assert.Equal(ErrInvalidToken("0A"), err)

	_, err = Parse("1+;", nil)
	assert.Equal(ErrInvalidToken(";"), err)

	_, err = Parse("1 2", nil)
	assert.Equal(ErrTrailingText("2"), err)

	_, err = Parse("f(1", nil)
	assert.Equal(ErrTrailingText("(1"), err)

	_, err = Parse("(1", nil)
	assert.ErrorIs(err, ErrNoExpression)

	var invalid ErrInvalidToken
	_, err = Parse(`"open`, nil)
	assert.True(errors.As(err, &invalid))
	assert.Equal(`"open`, string(invalid))
}

func TestParseNoConsume(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexer(")")
	e, next, err := ParseLexer(lx, nil)
	assert.NoError(err)
	assert.Nil(e)
	assert.Equal(lx, next)
}

func TestParseOverflow(t *testing.T) {
	assert := assert.New(t)

	var msgs []diag.Message
	report := func(m diag.Message) { msgs = append(msgs, m) }

	e, err := Parse("18446744073709551615", report)
	assert.NoError(err)
	assert.Equal(&Literal{Value: UnsignedInt(math.MaxUint64)}, e)
	assert.Empty(msgs)

	e, err = Parse("18446744073709551616", report)
	assert.NoError(err)
	assert.Equal(&Literal{Value: UnsignedInt(0)}, e)
	if assert.Equal(1, len(msgs)) {
		assert.Equal(diag.KIND_OVERFLOW_IN_LITERAL, msgs[0].Kind)
		assert.False(msgs[0].IsError())
	}

	msgs = nil
	e, err = Parse("10000000000000001h", report)
	assert.NoError(err)
	assert.Equal(&Literal{Value: UnsignedInt(1)}, e)
	assert.Equal(1, len(msgs))
}

func TestUnquote(t *testing.T) {
	assert := assert.New(t)

	table := map[string]string{
		`''`:         "",
		`'A'`:        "A",
		`"a\nb"`:     "a\nb",
		`"\\"`:       `\`,
		`'\''`:       "'",
		`"\x41\x4"`:  "Ax4",
		`"\q"`:       "q",
		`"\0\a\b"`:   "\x00\a\b",
		`"\f\r\t\v"`: "\f\r\t\v",
	}

	for text, expected := range table {
		assert.Equal(expected, Unquote(text), text)
	}
}
