// Package diag describes the diagnostics produced while encoding a source line.
//
// Every diagnostic has one of two lifetimes. Permanent diagnostics depend only
// on the source text and are never retracted. Tentative diagnostics depend on
// symbol values that may still change on a later pass, so the pass driver
// discards them unless they survive the final pass.
package diag

import (
	"github.com/ezrec/z80asm/translate"
)

var f = translate.From

// Severity is the severity of a diagnostic.
type Severity int

//go:generate go tool stringer -linecomment -type=Severity
const (
	SEVERITY_WARNING = Severity(0) // warning
	SEVERITY_ERROR   = Severity(1) // error
)

// Kind classifies a diagnostic.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_SYNTAX_ERROR                = Kind(0)  // syntax error
	KIND_INVALID_TOKEN               = Kind(1)  // invalid token
	KIND_WRONG_ARITY                 = Kind(2)  // wrong arity
	KIND_ADDRESSING_MODE_NOT_ALLOWED = Kind(3)  // addressing mode not allowed
	KIND_VALUE_OUT_OF_RANGE          = Kind(4)  // value out of range
	KIND_BRANCH_OUT_OF_RANGE         = Kind(5)  // branch out of range
	KIND_INVALID_CONDITION           = Kind(6)  // invalid condition
	KIND_INVALID_IMMEDIATE_MODE      = Kind(7)  // invalid immediate mode
	KIND_INVALID_RESTART_TARGET      = Kind(8)  // invalid restart target
	KIND_OVERFLOW_IN_LITERAL         = Kind(9)  // overflow in literal
	KIND_LOSSY_CONVERSION            = Kind(10) // lossy conversion
	KIND_STRING_TOO_LONG             = Kind(11) // string too long
	KIND_FUNCTION_NOT_INTEGER        = Kind(12) // function not integer
	KIND_UNDEFINED_SYMBOL            = Kind(13) // undefined symbol
	KIND_UNKNOWN_MNEMONIC            = Kind(14) // unknown mnemonic
	KIND_DIVISION_BY_ZERO            = Kind(15) // division by zero
	KIND_NOT_A_FUNCTION              = Kind(16) // not a function
	KIND_FUNCTION_FAILED             = Kind(17) // function failed
	KIND_NOT_INDEXABLE               = Kind(18) // not indexable
	KIND_DUPLICATE_LABEL             = Kind(19) // duplicate label
	KIND_MISSING_LABEL               = Kind(20) // missing label
)

// Message is a single diagnostic.
type Message struct {
	Kind     Kind
	Severity Severity
	Text     string
}

func (m Message) Error() string {
	return f("%v: %v", m.Severity, m.Text)
}

// Is matches any Message of the same Kind.
func (m Message) Is(err error) (ok bool) {
	other, ok := err.(Message)
	if !ok {
		return
	}
	ok = other.Kind == m.Kind
	return
}

// IsError returns true if the message is an error, rather than a warning.
func (m Message) IsError() bool {
	return m.Severity == SEVERITY_ERROR
}

// Reporter receives a diagnostic.
type Reporter func(m Message)

// Sink receives diagnostics on their two lifetimes.
type Sink interface {
	AddMessage(m Message)
	AddTentativeMessage(m Message)
}

// Tentative returns a Reporter that routes every message to the tentative channel.
func Tentative(sink Sink) Reporter {
	return sink.AddTentativeMessage
}

// Permanent returns a Reporter that routes every message to the permanent channel.
func Permanent(sink Sink) Reporter {
	return sink.AddMessage
}

// Collector is a Sink that keeps the two channels apart.
type Collector struct {
	Permanent []Message
	Tentative []Message
}

func (c *Collector) AddMessage(m Message) {
	c.Permanent = append(c.Permanent, m)
}

func (c *Collector) AddTentativeMessage(m Message) {
	c.Tentative = append(c.Tentative, m)
}

// Reset discards all collected messages.
func (c *Collector) Reset() {
	c.Permanent = c.Permanent[:0]
	c.Tentative = c.Tentative[:0]
}

// All returns the permanent messages followed by the tentative ones.
func (c *Collector) All() (msgs []Message) {
	msgs = make([]Message, 0, len(c.Permanent)+len(c.Tentative))
	msgs = append(msgs, c.Permanent...)
	msgs = append(msgs, c.Tentative...)
	return
}
