package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Kind TokenKind
	Text string
}

func lexAll(text string) (tokens []tokenCase) {
	lx := NewLexer(text)
	for lx.Kind() != TOKEN_END {
		tokens = append(tokens, tokenCase{lx.Kind(), lx.Text()})
		lx = lx.Advance()
	}
	return
}

func TestLexer(t *testing.T) {
	assert := assert.New(t)

	table := map[string][]tokenCase{
		"":       nil,
		"   ":    nil,
		"  42 ":  {{TOKEN_DECIMAL, "42"}},
		"1010b":  {{TOKEN_BINARY, "1010b"}},
		"0FFh":   {{TOKEN_HEXADECIMAL, "0FFh"}},
		"1BH":    {{TOKEN_HEXADECIMAL, "1BH"}},
		"12B":    {{TOKEN_INVALID, "12B"}},
		"0A":     {{TOKEN_INVALID, "0A"}},
		"0FFhx":  {{TOKEN_INVALID, "0FFhx"}},
		"1.5":    {{TOKEN_REAL, "1.5"}},
		"1.5e3":  {{TOKEN_REAL, "1.5e3"}},
		"2.5E-1": {{TOKEN_REAL, "2.5E-1"}},
		"1.":     {{TOKEN_REAL, "1."}},
		"1.)":    {{TOKEN_REAL, "1."}, {TOKEN_RPAREN, ")"}},
		".5":     {{TOKEN_REAL, ".5"}},
		".":      {{TOKEN_PERIOD, "."}},
		".foo":   {{TOKEN_PERIOD, "."}, {TOKEN_IDENTIFIER, "foo"}},
		"1.foo":  {{TOKEN_DECIMAL, "1"}, {TOKEN_PERIOD, "."}, {TOKEN_IDENTIFIER, "foo"}},
		"0Ah.5":  {{TOKEN_INVALID, "0Ah.5"}},
		"1.5x":   {{TOKEN_INVALID, "1.5x"}},
		"foo.bar": {{TOKEN_IDENTIFIER, "foo.bar"}},
		"AF'":    {{TOKEN_IDENTIFIER, "AF'"}},
		"'A'":    {{TOKEN_STRING, "'A'"}},
		`"a\"b"`: {{TOKEN_STRING, `"a\"b"`}},
		`"abc`:   {{TOKEN_INVALID, `"abc`}},
		"a<=b": {
			{TOKEN_IDENTIFIER, "a"}, {TOKEN_OPERATOR, "<="}, {TOKEN_IDENTIFIER, "b"},
		},
		"< << <= <> > >> >= ! != = == & && | || % * / ^ ~": {
			{TOKEN_OPERATOR, "<"}, {TOKEN_OPERATOR, "<<"}, {TOKEN_OPERATOR, "<="},
			{TOKEN_OPERATOR, "<>"}, {TOKEN_OPERATOR, ">"}, {TOKEN_OPERATOR, ">>"},
			{TOKEN_OPERATOR, ">="}, {TOKEN_OPERATOR, "!"}, {TOKEN_OPERATOR, "!="},
			{TOKEN_OPERATOR, "="}, {TOKEN_OPERATOR, "=="}, {TOKEN_OPERATOR, "&"},
			{TOKEN_OPERATOR, "&&"}, {TOKEN_OPERATOR, "|"}, {TOKEN_OPERATOR, "||"},
			{TOKEN_OPERATOR, "%"}, {TOKEN_OPERATOR, "*"}, {TOKEN_OPERATOR, "/"},
			{TOKEN_OPERATOR, "^"}, {TOKEN_OPERATOR, "~"},
		},
		"++x": {{TOKEN_PLUS_MINUS, "++"}, {TOKEN_IDENTIFIER, "x"}},
		"+-":  {{TOKEN_PLUS_MINUS, "+"}, {TOKEN_PLUS_MINUS, "-"}},
		";":    {{TOKEN_INVALID, ";"}},
		`\foo`: {{TOKEN_INVALID, `\foo`}},
		"(a,b)[c]?d:e": {
			{TOKEN_LPAREN, "("}, {TOKEN_IDENTIFIER, "a"}, {TOKEN_COMMA, ","},
			{TOKEN_IDENTIFIER, "b"}, {TOKEN_RPAREN, ")"}, {TOKEN_LBRACKET, "["},
			{TOKEN_IDENTIFIER, "c"}, {TOKEN_RBRACKET, "]"}, {TOKEN_QUESTION, "?"},
			{TOKEN_IDENTIFIER, "d"}, {TOKEN_COLON, ":"}, {TOKEN_IDENTIFIER, "e"},
		},
	}

	for text, expected := range table {
		assert.Equal(expected, lexAll(text), text)
	}
}

func TestLexerBreak(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexer("--x")
	assert.Equal(TOKEN_PLUS_MINUS, lx.Kind())
	assert.Equal("--", lx.Text())

	broken := lx.Break()
	assert.Equal(Token{Kind: TOKEN_OPERATOR, Start: 0, End: 1, Text: "-"}, broken.Token())

	broken = broken.Advance()
	assert.Equal(Token{Kind: TOKEN_OPERATOR, Start: 1, End: 2, Text: "-"}, broken.Token())

	broken = broken.Advance()
	assert.Equal(TOKEN_IDENTIFIER, broken.Kind())
	assert.Equal("x", broken.Text())

	// The snapshot is unaffected.
	assert.Equal(TOKEN_PLUS_MINUS, lx.Kind())
	assert.Equal(TOKEN_IDENTIFIER, lx.Advance().Kind())

	// Breaking anything else is a no-op.
	id := NewLexer("x")
	assert.Equal(id, id.Break())
}

func TestLexerEnd(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexer("a")
	lx = lx.Advance()
	assert.Equal(TOKEN_END, lx.Kind())
	lx = lx.Advance()
	assert.Equal(TOKEN_END, lx.Kind())
	assert.Equal("", lx.Rest())
}
