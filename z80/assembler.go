// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package z80

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
)

// DefaultMaxPasses is the pass limit when Assembler.MaxPasses is not set.
const DefaultMaxPasses = 16

// Macro is a user defined mnemonic. The operands of the invoking line
// replace the `{0}`, `{1}`, ... placeholders of each line. Placeholders
// up to `{9}` without an operand are removed.
type Macro struct {
	Lines []string // Lines of macro text to expand.
}

func (macro *Macro) expand(operands []string) (lines []SourceLine) {
	var pairs []string
	for n := range max(10, len(operands)) {
		operand := ""
		if n < len(operands) {
			operand = operands[n]
		}
		pairs = append(pairs, fmt.Sprintf("{%d}", n), operand)
	}
	replacer := strings.NewReplacer(pairs...)

	for n, text := range macro.Lines {
		text = strings.TrimSpace(replacer.Replace(text))
		line := ParseLine(n+1, " "+text)
		line.Text = text
		lines = append(lines, line)
	}

	return
}

// Assembler is a multi-pass assembler for the Z80. Passes are repeated
// until the value of every label is the same as in the pass before.
type Assembler struct {
	Verbose   bool              // If set, verbosely logs the assembler actions.
	Origin    uint64            // Address of the first line.
	Encoding  encoding.Encoding // Encoding of string literals. Defaults to UTF-8.
	MaxPasses int               // Pass limit. Defaults to DefaultMaxPasses.

	predefine map[string]expr.Value
	macro     map[string]*Macro
}

// Predefine defines a symbol visible to all passes. Labels take precedence.
func (asm *Assembler) Predefine(name string, value expr.Value) {
	if asm.predefine == nil {
		asm.predefine = make(map[string]expr.Value)
	}
	asm.predefine[name] = value
}

// DefineMnemonic defines a user mnemonic, ignoring case.
func (asm *Assembler) DefineMnemonic(name string, lines ...string) {
	if asm.macro == nil {
		asm.macro = make(map[string]*Macro)
	}
	asm.macro[strings.ToUpper(name)] = &Macro{Lines: slices.Clone(lines)}
}

func (asm *Assembler) encoding() encoding.Encoding {
	if asm.Encoding == nil {
		return expr.DefaultEncoding
	}
	return asm.Encoding
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []SourceLine

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, ParseLine(len(lines)+1, scanner.Text()))
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog, err = asm.Assemble(lines)
	return
}

// Assemble assembles source lines into a Program. The returned error joins
// an *ErrSyntax for every error message, and ErrNoConvergence if the
// labels never settled. The Program is returned even if there are errors.
func (asm *Assembler) Assemble(lines []SourceLine) (prog *Program, err error) {
	maxPasses := asm.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	// Permanent messages are collected from all passes, as a pass may
	// not reach every line in the same way.
	permanent := make([][]diag.Message, len(lines))

	var p *pass
	var previous map[string]uint64
	converged := false
	for number := 1; number <= maxPasses; number++ {
		p = asm.newPass(previous)
		p.run(lines)

		for n := range p.lines {
			for _, m := range p.lines[n].collected.Permanent {
				if !slices.Contains(permanent[n], m) {
					permanent[n] = append(permanent[n], m)
				}
			}
		}

		if asm.Verbose {
			log.Printf("pass %d: %d labels\n", number, len(p.labels))
		}

		if number > 1 && maps.Equal(previous, p.labels) {
			converged = true
			break
		}
		previous = p.labels
	}

	prog = &Program{
		Origin: asm.Origin,
		Lines:  p.lines,
		Labels: maps.Clone(p.labels),
	}
	maps.DeleteFunc(prog.Labels, func(name string, _ uint64) bool {
		return strings.Contains(name, "#")
	})

	var errs []error
	for n := range prog.Lines {
		line := &prog.Lines[n]
		merged := diag.Collector{
			Permanent: permanent[n],
			Tentative: line.collected.Tentative,
		}
		line.Messages = merged.All()
		line.collected.Reset()

		for _, m := range line.Messages {
			if asm.Verbose {
				log.Printf("%v: %v\n", line.LineNo, m)
			}
			if m.IsError() {
				errs = append(errs, &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: m})
			}
		}
	}

	if !converged {
		errs = append(errs, ErrNoConvergence)
	}

	err = errors.Join(errs...)
	return
}

// pass is the state of a single pass over the source.
type pass struct {
	asm       *Assembler
	previous  map[string]uint64 // Labels of the previous pass.
	labels    map[string]uint64 // Labels of this pass.
	anonymous map[byte]int      // Count of `+` and `-` labels defined so far.
	pc        uint64
	lines     []Line
}

func (asm *Assembler) newPass(previous map[string]uint64) *pass {
	return &pass{
		asm:       asm,
		previous:  previous,
		labels:    make(map[string]uint64),
		anonymous: make(map[byte]int),
		pc:        asm.Origin & MaxAddress,
	}
}

func (p *pass) run(lines []SourceLine) {
	p.lines = make([]Line, len(lines))

	for n := range lines {
		src := &lines[n]
		line := &p.lines[n]
		line.SourceLine = src
		line.Address = p.pc

		step := &lineStep{pass: p, line: line, source: src, pc: p.pc}
		switch strings.ToUpper(src.Mnemonic) {
		case "EQU":
			p.equate(step)
		case "ORG":
			p.origin(step)
		default:
			Dispatch(step, src.Mnemonic)
		}

		end := line.Address + uint64(len(line.Bytes))
		if end > MaxAddress+1 {
			step.AddTentativeMessage(diag.ValueOutOfRange(int64(end - 1)))
		}
		p.pc = end & MaxAddress
	}
}

// evaluate evaluates the single operand of a directive.
func (p *pass) evaluate(step *lineStep) (value uint64, ok bool) {
	if len(step.source.Operands) != 1 {
		step.AddMessage(diag.WrongArity())
		return
	}

	env := expr.Env{
		Lookup:   step.Lookup,
		PC:       step.pc,
		Encoding: step.Encoding(),
		Report:   diag.Tentative(step),
	}
	ea := ResolveEffectiveAddress(step.source.Operands[0], &env, diag.Permanent(step))
	switch ea.Mode {
	case MODE_NONE:
		return
	case MODE_IMMEDIATE:
	default:
		step.AddMessage(diag.AddressingModeNotAllowed())
		return
	}

	if expr.IsUndetermined(ea.Immediate) {
		return
	}

	value = ToQword(ea.Immediate, env.Encoding, step.AddTentativeMessage)
	ok = true
	return
}

// equate handles `label EQU value`.
func (p *pass) equate(step *lineStep) {
	if len(step.source.Labels) == 0 {
		step.AddMessage(diag.MissingLabel("EQU"))
		return
	}

	value, ok := p.evaluate(step)
	if !ok {
		return
	}

	for _, label := range step.source.Labels {
		step.DefineLabel(label, value)
	}
}

// origin handles `ORG address`. Labels on the line take the new address.
// Addresses outside the address space are reported and wrapped.
func (p *pass) origin(step *lineStep) {
	value, ok := p.evaluate(step)
	if ok {
		if value > MaxAddress {
			step.AddTentativeMessage(diag.ValueOutOfRange(int64(value)))
			value &= MaxAddress
		}
		step.pc = value
		step.line.Address = value
	}

	for _, label := range step.source.Labels {
		step.DefineLabel(label, step.pc)
	}
}

func isAnonymous(name string) bool {
	return len(name) > 0 &&
		(strings.Trim(name, "+") == "" || strings.Trim(name, "-") == "")
}

func anonymousKey(kind byte, ordinal int) string {
	return fmt.Sprintf("%c#%d", kind, ordinal)
}

// anonymousLabel resolves a run of `-` to the n-th previous `-` label, and
// a run of `+` to the n-th next `+` label as placed by the previous pass.
func (p *pass) anonymousLabel(ref string) (addr uint64, ok bool) {
	kind := ref[0]
	count := p.anonymous[kind]
	if kind == '-' {
		addr, ok = p.labels[anonymousKey(kind, count-len(ref))]
	} else {
		addr, ok = p.previous[anonymousKey(kind, count+len(ref)-1)]
	}
	return
}

func (p *pass) lookup(name string) (value expr.Value, ok bool) {
	var addr uint64
	if isAnonymous(name) {
		addr, ok = p.anonymousLabel(name)
	} else {
		addr, ok = p.labels[name]
		if !ok {
			addr, ok = p.previous[name]
		}
	}
	if ok {
		value = expr.UnsignedInt(addr)
		return
	}

	value, ok = p.asm.predefine[name]
	return
}

func (p *pass) define(step *lineStep, name string, value uint64) {
	if isAnonymous(name) {
		kind := name[0]
		p.labels[anonymousKey(kind, p.anonymous[kind])] = value
		p.anonymous[kind]++
		return
	}

	_, ok := p.labels[name]
	if ok {
		step.AddMessage(diag.DuplicateLabel(name))
		return
	}

	p.labels[name] = value
}

// lineStep is a Step for one source line, or one line of an expanded macro.
type lineStep struct {
	pass   *pass
	line   *Line
	source *SourceLine
	pc     uint64
}

func (ls *lineStep) ProgramCounter() uint64 {
	return ls.pc
}

func (ls *lineStep) NumLabels() int {
	return len(ls.source.Labels)
}

func (ls *lineStep) Label(i int) string {
	return ls.source.Labels[i]
}

func (ls *lineStep) NumOperands() int {
	return len(ls.source.Operands)
}

func (ls *lineStep) Operand(i int) string {
	return ls.source.Operands[i]
}

func (ls *lineStep) Encoding() encoding.Encoding {
	return ls.pass.asm.encoding()
}

func (ls *lineStep) Lookup(name string) (expr.Value, bool) {
	return ls.pass.lookup(name)
}

func (ls *lineStep) AppendByte(b byte) {
	ls.line.Bytes = append(ls.line.Bytes, b)
}

func (ls *lineStep) AddMessage(m diag.Message) {
	ls.line.collected.AddMessage(m)
}

func (ls *lineStep) AddTentativeMessage(m diag.Message) {
	ls.line.collected.AddTentativeMessage(m)
}

func (ls *lineStep) DefineLabel(name string, value uint64) {
	ls.pass.define(ls, name, value)
}

// ExpandMnemonic encodes each line of a user mnemonic in turn. Lines of
// the expansion always use the built-in mnemonics.
func (ls *lineStep) ExpandMnemonic(name string) bool {
	macro, ok := ls.pass.asm.macro[name]
	if !ok {
		return false
	}

	for _, sub := range macro.expand(ls.source.Operands) {
		step := &lineStep{
			pass:   ls.pass,
			line:   ls.line,
			source: &sub,
			pc:     ls.line.Address + uint64(len(ls.line.Bytes)),
		}
		mnemonic := sub.Mnemonic
		if len(mnemonic) > 0 {
			mnemonic = "!" + strings.TrimPrefix(mnemonic, "!")
		}
		Dispatch(step, mnemonic)
	}

	return true
}
