package z80

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/internal"
)

// MaxAddress is the highest address of the Z80 address space.
const MaxAddress = 0xffff

// Line is an assembled source line.
type Line struct {
	*SourceLine
	Address  uint64         // Address of the first byte.
	Bytes    []byte         // Encoded bytes.
	Messages []diag.Message // Diagnostics, permanent first.

	collected diag.Collector
}

// Program is the result of an assembly.
type Program struct {
	Origin uint64
	Lines  []Line
	Labels map[string]uint64
}

// Debug locates the line that encoded the byte at an address.
type Debug struct {
	*Line
	Index int // Index of the byte in Line.Bytes
}

func (prog *Program) Debug(address uint64) (dbg Debug) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+uint64(len(line.Bytes)) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(address - line.Address),
			}
			break
		}
	}

	return
}

func (line *Line) bytes() iter.Seq2[uint64, byte] {
	return func(yield func(uint64, byte) bool) {
		for n, b := range line.Bytes {
			if !yield((line.Address+uint64(n))&MaxAddress, b) {
				return
			}
		}
	}
}

func (line *Line) messages() iter.Seq2[*Line, diag.Message] {
	return func(yield func(*Line, diag.Message) bool) {
		for _, m := range line.Messages {
			if !yield(line, m) {
				return
			}
		}
	}
}

// Bytes yields every encoded byte with its address, in source order.
// Addresses wrap at the end of the address space.
func (prog *Program) Bytes() iter.Seq2[uint64, byte] {
	seqs := make([]iter.Seq2[uint64, byte], len(prog.Lines))
	for n := range prog.Lines {
		seqs[n] = prog.Lines[n].bytes()
	}
	return internal.Concat2(seqs...)
}

// Messages yields every diagnostic with its line, in source order.
func (prog *Program) Messages() iter.Seq2[*Line, diag.Message] {
	seqs := make([]iter.Seq2[*Line, diag.Message], len(prog.Lines))
	for n := range prog.Lines {
		seqs[n] = prog.Lines[n].messages()
	}
	return internal.Concat2(seqs...)
}

// Binary returns the memory image from the lowest to the highest encoded
// address. Gaps are zero filled, and later lines overwrite earlier ones.
func (prog *Program) Binary() (bin []byte) {
	first := true
	var low, high uint64
	for addr := range prog.Bytes() {
		if first || addr < low {
			low = addr
		}
		if first || addr >= high {
			high = addr + 1
		}
		first = false
	}
	if first {
		return
	}

	bin = make([]byte, high-low)
	for addr, b := range prog.Bytes() {
		bin[addr-low] = b
	}

	return
}

const listingBytesPerRow = 4

// Listing writes the source annotated with addresses, encoded bytes and
// diagnostics.
func (prog *Program) Listing(w io.Writer) (err error) {
	row := func(data []byte) string {
		hex := make([]string, len(data))
		for n, b := range data {
			hex[n] = fmt.Sprintf("%02X", b)
		}
		return strings.Join(hex, " ")
	}

	for _, line := range prog.Lines {
		data := line.Bytes
		chunk := data[:min(len(data), listingBytesPerRow)]
		_, err = fmt.Fprintf(w, "%5d  %04X  %-11s  %s\n", line.LineNo, line.Address, row(chunk), line.Text)
		if err != nil {
			return
		}

		for n := listingBytesPerRow; n < len(data); n += listingBytesPerRow {
			chunk = data[n:min(len(data), n+listingBytesPerRow)]
			_, err = fmt.Fprintf(w, "       %04X  %s\n", line.Address+uint64(n), row(chunk))
			if err != nil {
				return
			}
		}

		for _, m := range line.Messages {
			_, err = fmt.Fprintf(w, "%5d  %v\n", line.LineNo, m)
			if err != nil {
				return
			}
		}
	}

	return
}
