package expr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind is the kind of a lexical token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_END         = TokenKind(0)  // end
	TOKEN_INVALID     = TokenKind(1)  // invalid
	TOKEN_DECIMAL     = TokenKind(2)  // decimal
	TOKEN_BINARY      = TokenKind(3)  // binary
	TOKEN_HEXADECIMAL = TokenKind(4)  // hexadecimal
	TOKEN_REAL        = TokenKind(5)  // real
	TOKEN_STRING      = TokenKind(6)  // string
	TOKEN_IDENTIFIER  = TokenKind(7)  // identifier
	TOKEN_OPERATOR    = TokenKind(8)  // operator
	TOKEN_PLUS_MINUS  = TokenKind(9)  // plus-minus
	TOKEN_PERIOD      = TokenKind(10) // .
	TOKEN_LPAREN      = TokenKind(11) // (
	TOKEN_RPAREN      = TokenKind(12) // )
	TOKEN_LBRACKET    = TokenKind(13) // [
	TOKEN_RBRACKET    = TokenKind(14) // ]
	TOKEN_COMMA       = TokenKind(15) // ,
	TOKEN_QUESTION    = TokenKind(16) // ?
	TOKEN_COLON       = TokenKind(17) // :
)

// Token is a single lexical token.
type Token struct {
	Kind  TokenKind
	Start int    // Byte offset of the first character.
	End   int    // Byte offset past the last character.
	Text  string // Source text of the token.
}

// Lexer is a cursor over the tokens of an operand.
//
// A Lexer is a value: copying it takes a snapshot, and assigning a copy back
// commits to it. None of the methods modify the receiver.
type Lexer struct {
	text      string
	token     Token
	brokenEnd int // End of a broken plus-minus run, or zero.
}

// punctuation maps single character punctuation to its token kind.
var punctuation = map[rune]TokenKind{
	'(': TOKEN_LPAREN,
	')': TOKEN_RPAREN,
	'[': TOKEN_LBRACKET,
	']': TOKEN_RBRACKET,
	',': TOKEN_COMMA,
	'?': TOKEN_QUESTION,
	':': TOKEN_COLON,
}

// IsIdentifierRune returns true if r may appear in an identifier.
func IsIdentifierRune(r rune) bool {
	if r == utf8.RuneError || unicode.IsSpace(r) {
		return false
	}
	return !strings.ContainsRune(`!%&()*+,-/:;<=>?[\]^|~`, r)
}

// NewLexer returns a lexer positioned on the first token of text.
func NewLexer(text string) Lexer {
	return Lexer{text: text}.scan(0)
}

// Token returns the current token.
func (lx Lexer) Token() Token {
	return lx.token
}

// Kind returns the kind of the current token.
func (lx Lexer) Kind() TokenKind {
	return lx.token.Kind
}

// Text returns the text of the current token.
func (lx Lexer) Text() string {
	return lx.token.Text
}

// Rest returns the source text from the start of the current token.
func (lx Lexer) Rest() string {
	return lx.text[lx.token.Start:]
}

// Advance returns a lexer positioned on the next token.
func (lx Lexer) Advance() Lexer {
	if lx.brokenEnd > 0 {
		if lx.token.End < lx.brokenEnd {
			start := lx.token.End
			lx.token = Token{Kind: TOKEN_OPERATOR, Start: start, End: start + 1, Text: lx.text[start : start+1]}
			return lx
		}
		lx.brokenEnd = 0
	}

	return lx.scan(lx.token.End)
}

// Break splits a plus-minus run into single character operators, and
// returns a lexer positioned on the first one. Any other token is
// returned unchanged.
func (lx Lexer) Break() Lexer {
	if lx.token.Kind != TOKEN_PLUS_MINUS {
		return lx
	}

	start := lx.token.Start
	lx.brokenEnd = lx.token.End
	lx.token = Token{Kind: TOKEN_OPERATOR, Start: start, End: start + 1, Text: lx.text[start : start+1]}
	return lx
}

func (lx Lexer) peek(pos int) (r rune, size int) {
	if pos >= len(lx.text) {
		return
	}
	r, size = utf8.DecodeRuneInString(lx.text[pos:])
	return
}

func (lx Lexer) emit(kind TokenKind, start, end int) Lexer {
	lx.token = Token{Kind: kind, Start: start, End: end, Text: lx.text[start:end]}
	return lx
}

// identifierEnd returns the end of the identifier run starting at pos.
func (lx Lexer) identifierEnd(pos int) int {
	for pos < len(lx.text) {
		r, size := lx.peek(pos)
		if !IsIdentifierRune(r) {
			break
		}
		pos += size
	}
	return pos
}

func (lx Lexer) scan(pos int) Lexer {
	for pos < len(lx.text) {
		r, size := lx.peek(pos)
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}

	if pos >= len(lx.text) {
		return lx.emit(TOKEN_END, len(lx.text), len(lx.text))
	}

	start := pos
	r, size := lx.peek(pos)
	next, _ := lx.peek(pos + size)

	if kind, ok := punctuation[r]; ok {
		return lx.emit(kind, start, start+1)
	}

	switch r {
	case '!', '=':
		if next == '=' {
			return lx.emit(TOKEN_OPERATOR, start, start+2)
		}
		return lx.emit(TOKEN_OPERATOR, start, start+1)
	case '&', '|':
		if next == r {
			return lx.emit(TOKEN_OPERATOR, start, start+2)
		}
		return lx.emit(TOKEN_OPERATOR, start, start+1)
	case '<':
		if next == '<' || next == '=' || next == '>' {
			return lx.emit(TOKEN_OPERATOR, start, start+2)
		}
		return lx.emit(TOKEN_OPERATOR, start, start+1)
	case '>':
		if next == '=' || next == '>' {
			return lx.emit(TOKEN_OPERATOR, start, start+2)
		}
		return lx.emit(TOKEN_OPERATOR, start, start+1)
	case '%', '*', '/', '^', '~':
		return lx.emit(TOKEN_OPERATOR, start, start+1)
	case '+', '-':
		end := start
		for end < len(lx.text) && rune(lx.text[end]) == r {
			end++
		}
		return lx.emit(TOKEN_PLUS_MINUS, start, end)
	case '"', '\'':
		return lx.scanString(start, r)
	case ';':
		return lx.emit(TOKEN_INVALID, start, start+1)
	case '\\':
		return lx.emit(TOKEN_INVALID, start, lx.identifierEnd(start+1))
	}

	if r == '.' || isDigit(r) {
		return lx.scanNumber(start)
	}

	if IsIdentifierRune(r) {
		return lx.emit(TOKEN_IDENTIFIER, start, lx.identifierEnd(start))
	}

	return lx.emit(TOKEN_INVALID, start, start+size)
}

func (lx Lexer) scanString(start int, quote rune) Lexer {
	pos := start + 1
	for pos < len(lx.text) {
		switch rune(lx.text[pos]) {
		case '\\':
			pos += 2
			continue
		case quote:
			return lx.emit(TOKEN_STRING, start, pos+1)
		}
		pos++
	}

	return lx.emit(TOKEN_INVALID, start, len(lx.text))
}

func (lx Lexer) scanNumber(start int) Lexer {
	pos := start
	for pos < len(lx.text) {
		r, size := lx.peek(pos)
		if !IsIdentifierRune(r) {
			break
		}
		if r != '.' {
			pos += size
			continue
		}

		next, _ := lx.peek(pos + 1)
		switch {
		case isDigit(next):
			if !allDigits(lx.text[start:pos], isDigit) {
				return lx.emit(TOKEN_INVALID, start, lx.identifierEnd(pos))
			}
			return lx.scanReal(start, pos+1)
		case !IsIdentifierRune(next):
			if pos == start {
				return lx.emit(TOKEN_PERIOD, start, start+1)
			}
			if !allDigits(lx.text[start:pos], isDigit) {
				return lx.emit(TOKEN_INVALID, start, pos+1)
			}
			return lx.emit(TOKEN_REAL, start, pos+1)
		}

		// A period followed by a name ends the number.
		break
	}

	if pos == start {
		return lx.emit(TOKEN_PERIOD, start, start+1)
	}

	return lx.emit(classifyInteger(lx.text[start:pos]), start, pos)
}

// scanReal scans the fraction and exponent of a real literal.
func (lx Lexer) scanReal(start, pos int) Lexer {
	for pos < len(lx.text) && isDigit(rune(lx.text[pos])) {
		pos++
	}

	if pos < len(lx.text) && (lx.text[pos] == 'e' || lx.text[pos] == 'E') {
		exp := pos + 1
		if exp < len(lx.text) && (lx.text[exp] == '+' || lx.text[exp] == '-') {
			exp++
		}
		if exp < len(lx.text) && isDigit(rune(lx.text[exp])) {
			for exp < len(lx.text) && isDigit(rune(lx.text[exp])) {
				exp++
			}
			pos = exp
		}
	}

	if end := lx.identifierEnd(pos); end != pos {
		return lx.emit(TOKEN_INVALID, start, end)
	}

	return lx.emit(TOKEN_REAL, start, pos)
}

// classifyInteger determines the radix of an integer literal from its
// digits and suffix.
func classifyInteger(word string) TokenKind {
	digits := word[:len(word)-1]
	switch word[len(word)-1] {
	case 'h', 'H':
		if allDigits(digits, isHexDigit) {
			return TOKEN_HEXADECIMAL
		}
		return TOKEN_INVALID
	case 'b', 'B':
		if allDigits(digits, isBinaryDigit) {
			return TOKEN_BINARY
		}
	}

	if allDigits(word, isDigit) {
		return TOKEN_DECIMAL
	}

	return TOKEN_INVALID
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// allDigits returns true if every rune of s passes is. The empty string passes.
func allDigits(s string, is func(rune) bool) bool {
	for _, r := range s {
		if !is(r) {
			return false
		}
	}
	return true
}
