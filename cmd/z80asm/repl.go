package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peterh/liner"

	"github.com/ezrec/z80asm/z80"
)

const (
	historyFile = ".z80asm_history"
	promptMain  = "z80> "
)

// session is an interactive assembly buffer.
// Lines that produce errors are reported and not kept.
type session struct {
	asm   *z80.Assembler
	lines []string
}

// enter assembles text appended to the buffer, and returns the resulting line.
// Labels must be terminated with a ':'.
func (s *session) enter(text string) (line *z80.Line, ok bool) {
	source := append(slices.Clip(s.lines), " "+text)

	parsed := make([]z80.SourceLine, len(source))
	for n, text := range source {
		parsed[n] = z80.ParseLine(n+1, text)
	}

	prog, err := s.asm.Assemble(parsed)
	if prog == nil {
		return
	}

	line = &prog.Lines[len(prog.Lines)-1]
	ok = err == nil
	if ok {
		s.lines = source
	}
	return
}

// listing writes the listing of the current buffer.
func (s *session) listing(w io.Writer) (err error) {
	parsed := make([]z80.SourceLine, len(s.lines))
	for n, text := range s.lines {
		parsed[n] = z80.ParseLine(n+1, text)
	}

	prog, _ := s.asm.Assemble(parsed)
	if prog == nil {
		return
	}
	return prog.Listing(w)
}

// format describes an assembled line.
func format(line *z80.Line, color bool) (text string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%04X ", line.Address)
	for _, by := range line.Bytes {
		fmt.Fprintf(&b, " %02X", by)
	}
	for _, m := range line.Messages {
		fmt.Fprintf(&b, "\n%v: %v", severity(m, color), m.Text)
	}
	return b.String()
}

func runRepl(asm *z80.Assembler, color bool) (ret int) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := &session{asm: asm}
	for {
		text, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "":
			continue
		case ":quit":
			return
		case ":list":
			_ = s.listing(os.Stdout)
			continue
		case ":reset":
			s.lines = nil
			continue
		}

		ln.AppendHistory(text)
		line, _ := s.enter(text)
		if line != nil {
			fmt.Println(format(line, color))
		}
	}
}
