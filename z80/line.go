package z80

import (
	"strings"
	"unicode"

	"github.com/ezrec/z80asm/expr"
)

// SourceLine is a line of assembly source, split into its fields.
type SourceLine struct {
	LineNo   int
	Text     string
	Labels   []string
	Mnemonic string
	Operands []string
}

// ParseLine splits a line of source text. A word starting in the first
// column is a label, with an optional trailing colon. Further words ending
// in a colon are also labels. Operands are separated by commas outside of
// parentheses and quotes, and a semicolon starts a comment.
func ParseLine(lineno int, text string) (line SourceLine) {
	line.LineNo = lineno
	line.Text = text

	rest := stripComment(text)
	if len(rest) > 0 && !unicode.IsSpace(rune(rest[0])) {
		end := strings.IndexFunc(rest, func(r rune) bool { return unicode.IsSpace(r) || r == ':' })
		if end < 0 {
			end = len(rest)
		}
		line.Labels = append(line.Labels, rest[:end])
		rest = strings.TrimPrefix(rest[end:], ":")
	}

	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			end = len(rest)
		}
		word := rest[:end]
		rest = rest[end:]

		if len(word) > 1 && strings.HasSuffix(word, ":") {
			line.Labels = append(line.Labels, strings.TrimSuffix(word, ":"))
			continue
		}

		line.Mnemonic = word
		break
	}

	line.Operands = splitOperands(rest)

	return
}

// quoteScanner tracks whether a position in a line is inside a string.
// A quote only opens a string when it does not follow an identifier, so
// that `AF'` is a register name.
type quoteScanner struct {
	quote  rune
	escape bool
	prev   rune
}

// next advances over r, and returns true if r is outside any string.
func (qs *quoteScanner) next(r rune) (outside bool) {
	defer func() { qs.prev = r }()

	if qs.quote != 0 {
		switch {
		case qs.escape:
			qs.escape = false
		case r == '\\':
			qs.escape = true
		case r == qs.quote:
			qs.quote = 0
		}
		return false
	}

	if (r == '\'' || r == '"') && !expr.IsIdentifierRune(qs.prev) {
		qs.quote = r
		return false
	}

	return true
}

func stripComment(text string) string {
	qs := quoteScanner{prev: ' '}
	for n, r := range text {
		if qs.next(r) && r == ';' {
			return text[:n]
		}
	}
	return text
}

func splitOperands(text string) (operands []string) {
	if len(strings.TrimSpace(text)) == 0 {
		return
	}

	qs := quoteScanner{prev: ' '}
	depth := 0
	start := 0
	for n, r := range text {
		if !qs.next(r) {
			continue
		}
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth <= 0 {
				operands = append(operands, strings.TrimSpace(text[start:n]))
				start = n + 1
			}
		}
	}
	operands = append(operands, strings.TrimSpace(text[start:]))

	return
}
