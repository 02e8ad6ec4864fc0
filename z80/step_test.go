package z80

import (
	"golang.org/x/text/encoding"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

// testStep records everything an encoder does. With no symbols, every
// lookup succeeds as undetermined.
type testStep struct {
	pc        uint64
	line      SourceLine
	symbols   map[string]expr.Value
	bytes     []byte
	permanent []diag.Message
	tentative []diag.Message
	defined   map[string]uint64
}

func newTestStep(pc uint64, text string) *testStep {
	return &testStep{
		pc:      pc,
		line:    ParseLine(1, text),
		defined: map[string]uint64{},
	}
}

func (ts *testStep) ProgramCounter() uint64 { return ts.pc }

func (ts *testStep) NumLabels() int { return len(ts.line.Labels) }

func (ts *testStep) Label(i int) string { return ts.line.Labels[i] }

func (ts *testStep) NumOperands() int { return len(ts.line.Operands) }

func (ts *testStep) Operand(i int) string { return ts.line.Operands[i] }

func (ts *testStep) Encoding() encoding.Encoding { return expr.DefaultEncoding }

func (ts *testStep) Lookup(name string) (v expr.Value, ok bool) {
	if ts.symbols == nil {
		return expr.Undetermined{}, true
	}
	v, ok = ts.symbols[name]
	return
}

func (ts *testStep) AppendByte(b byte) { ts.bytes = append(ts.bytes, b) }

func (ts *testStep) AddMessage(m diag.Message) { ts.permanent = append(ts.permanent, m) }

func (ts *testStep) AddTentativeMessage(m diag.Message) { ts.tentative = append(ts.tentative, m) }

func (ts *testStep) DefineLabel(name string, value uint64) { ts.defined[name] = value }

// encode dispatches an indented source line at pc.
func encode(pc uint64, text string) *testStep {
	ts := newTestStep(pc, " "+text)
	Dispatch(ts, ts.line.Mnemonic)
	return ts
}

func kinds(msgs []diag.Message) (list []diag.Kind) {
	for _, m := range msgs {
		list = append(list, m.Kind)
	}
	return
}
