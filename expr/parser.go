package expr

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/ezrec/z80asm/diag"
)

type parser struct {
	report diag.Reporter
}

// Parse parses text as a single complete expression.
func Parse(text string, report diag.Reporter) (e Expr, err error) {
	e, lx, err := ParseLexer(NewLexer(text), report)
	switch {
	case err != nil:
		e = nil
	case e == nil:
		err = ErrNoExpression
	case lx.Kind() != TOKEN_END:
		e = nil
		err = ErrTrailingText(lx.Rest())
	}

	return
}

// ParseLexer parses the longest expression at the cursor. If no expression
// can be parsed, e is nil and next is lx. Invalid tokens are always an error.
// Warnings about literals are sent to report, which may be nil.
func ParseLexer(lx Lexer, report diag.Reporter) (e Expr, next Lexer, err error) {
	p := &parser{report: report}
	e, next, err = p.conditional(lx)
	if e == nil || err != nil {
		next = lx
	}
	return
}

func (p *parser) warn(m diag.Message) {
	if p.report != nil {
		p.report(m)
	}
}

// conditional parses `cond ? then : else`, right associative.
func (p *parser) conditional(lx Lexer) (e Expr, next Lexer, err error) {
	e, next, err = p.anonymous(lx)
	if e == nil || err != nil {
		return
	}

	for next.Kind() == TOKEN_QUESTION {
		var then, other Expr
		var cur Lexer
		then, cur, err = p.conditional(next.Advance())
		if err != nil {
			return
		}
		if then == nil || cur.Kind() != TOKEN_COLON {
			break
		}
		other, cur, err = p.conditional(cur.Advance())
		if err != nil {
			return
		}
		if other == nil {
			break
		}
		e = &Conditional{Cond: e, Then: then, Else: other}
		next = cur
	}

	return
}

// anonymous parses a lone run of `+` or `-` as an anonymous symbol reference.
func (p *parser) anonymous(lx Lexer) (e Expr, next Lexer, err error) {
	if lx.Kind() == TOKEN_PLUS_MINUS {
		after := lx.Advance()
		switch after.Kind() {
		case TOKEN_END, TOKEN_RPAREN, TOKEN_RBRACKET, TOKEN_QUESTION, TOKEN_COLON, TOKEN_COMMA:
			e = &Identifier{Name: lx.Text()}
			next = after
			return
		}
	}

	return p.binary(lx, -1)
}

// binary parses infix operations that bind tighter than priority, or all
// of them if priority is negative.
func (p *parser) binary(lx Lexer, priority int) (e Expr, next Lexer, err error) {
	e, next, err = p.unary(lx)
	if e == nil || err != nil {
		return
	}

	for {
		cur := next.Break()
		if cur.Kind() != TOKEN_OPERATOR {
			break
		}
		op, ok := binaryOps[cur.Text()]
		if !ok {
			break
		}
		if priority >= 0 && op.Priority() >= priority {
			break
		}

		var right Expr
		var after Lexer
		right, after, err = p.binary(cur.Advance(), op.Priority())
		if err != nil {
			return
		}
		if right == nil {
			break
		}
		e = &Binary{Op: op, Left: e, Right: right}
		next = after
	}

	return
}

// unary parses prefix operators, then a primary with its postfix chain.
func (p *parser) unary(lx Lexer) (e Expr, next Lexer, err error) {
	cur := lx.Break()

	switch cur.Kind() {
	case TOKEN_PERIOD:
		var member Expr
		member, next, err = p.unary(cur.Advance())
		if member == nil || err != nil {
			return
		}
		e = &Member{Target: &Identifier{}, Member: member}
		return
	case TOKEN_OPERATOR:
		op, ok := unaryOps[cur.Text()]
		if !ok {
			break
		}
		var operand Expr
		operand, next, err = p.unary(cur.Advance())
		if operand == nil || err != nil {
			return
		}
		e = &Unary{Op: op, Operand: operand}
		return
	}

	e, next, err = p.primary(cur)
	if e == nil || err != nil {
		return
	}

	for {
		switch next.Kind() {
		case TOKEN_LPAREN:
			args, after, ok, err2 := p.arguments(next)
			if err2 != nil {
				err = err2
				return
			}
			if !ok {
				return
			}
			e = &Call{Callee: e, Args: args}
			next = after
		case TOKEN_LBRACKET:
			index, after, err2 := p.conditional(next.Advance())
			if err2 != nil {
				err = err2
				return
			}
			if index == nil || after.Kind() != TOKEN_RBRACKET {
				return
			}
			e = &Index{Target: e, Index: index}
			next = after.Advance()
		case TOKEN_PERIOD:
			member, after, err2 := p.primary(next.Advance())
			if err2 != nil {
				err = err2
				return
			}
			if member == nil {
				return
			}
			e = &Member{Target: e, Member: member}
			next = after
		default:
			return
		}
	}
}

// arguments parses a parenthesized argument list. ok is false if the
// list is malformed, in which case the call is abandoned.
func (p *parser) arguments(lx Lexer) (args []Expr, next Lexer, ok bool, err error) {
	next = lx.Advance()
	if next.Kind() == TOKEN_RPAREN {
		next = next.Advance()
		ok = true
		return
	}

	for {
		var arg Expr
		arg, next, err = p.conditional(next)
		if arg == nil || err != nil {
			return
		}
		args = append(args, arg)

		switch next.Kind() {
		case TOKEN_RPAREN:
			next = next.Advance()
			ok = true
			return
		case TOKEN_COMMA:
			next = next.Advance()
		default:
			return
		}
	}
}

func (p *parser) primary(lx Lexer) (e Expr, next Lexer, err error) {
	next = lx.Advance()

	switch lx.Kind() {
	case TOKEN_INVALID:
		err = ErrInvalidToken(lx.Text())
	case TOKEN_DECIMAL:
		e = &Literal{Value: p.integer(lx.Text(), lx.Text(), 10)}
	case TOKEN_BINARY:
		text := lx.Text()
		e = &Literal{Value: p.integer(text, text[:len(text)-1], 2)}
	case TOKEN_HEXADECIMAL:
		text := lx.Text()
		e = &Literal{Value: p.integer(text, text[:len(text)-1], 16)}
	case TOKEN_REAL:
		value, _ := strconv.ParseFloat(lx.Text(), 64)
		e = &Literal{Value: Float(value)}
	case TOKEN_STRING:
		e = &Literal{Value: String(Unquote(lx.Text()))}
	case TOKEN_IDENTIFIER:
		e = &Identifier{Name: lx.Text()}
	case TOKEN_OPERATOR:
		if lx.Text() == "*" {
			e = &ProgramCounter{}
		}
	case TOKEN_LPAREN:
		var inner Expr
		inner, next, err = p.conditional(next)
		if inner == nil || err != nil {
			break
		}
		if next.Kind() != TOKEN_RPAREN {
			break
		}
		e = &Grouping{Inner: inner}
		next = next.Advance()
	}

	if e == nil {
		next = lx
	}

	return
}

// integer accumulates digits in the given base, warning once on overflow.
func (p *parser) integer(text string, digits string, base uint64) UnsignedInt {
	var value uint64
	overflow := false
	for _, r := range strings.ToLower(digits) {
		var digit uint64
		if r >= 'a' {
			digit = uint64(r-'a') + 10
		} else {
			digit = uint64(r - '0')
		}

		hi, lo := bits.Mul64(value, base)
		sum, carry := bits.Add64(lo, digit, 0)
		if hi != 0 || carry != 0 {
			overflow = true
		}
		value = sum
	}

	if overflow {
		p.warn(diag.OverflowInLiteral(text))
	}

	return UnsignedInt(value)
}

// Unquote returns the contents of a quoted string literal with escapes
// processed. Unknown escapes stand for the escaped character.
func Unquote(text string) string {
	if len(text) < 2 {
		return ""
	}
	body := text[1 : len(text)-1]

	var sb strings.Builder
	for n := 0; n < len(body); n++ {
		c := body[n]
		if c != '\\' || n+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}

		n++
		switch body[n] {
		case '0':
			sb.WriteByte(0)
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case 'x':
			if n+2 < len(body) {
				v, err := strconv.ParseUint(body[n+1:n+3], 16, 8)
				if err == nil {
					sb.WriteByte(byte(v))
					n += 2
					continue
				}
			}
			sb.WriteByte('x')
		default:
			sb.WriteByte(body[n])
		}
	}

	return sb.String()
}
