// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/ezrec/z80asm/config"
	"github.com/ezrec/z80asm/diag"
	"github.com/ezrec/z80asm/expr"
	"github.com/ezrec/z80asm/translate"
	"github.com/ezrec/z80asm/z80"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]expr.Value

func (d defines) String() string {
	return ""
}

func (d defines) Set(text string) (err error) {
	name, value, found := strings.Cut(text, "=")
	if len(name) == 0 {
		return errors.New(translate.From("missing name in '%v'", text))
	}
	if !found {
		d[name] = expr.UnsignedInt(1)
		return
	}

	e, err := expr.Parse(value, nil)
	if err != nil {
		return
	}
	d[name] = expr.Evaluate(e, &expr.Env{})
	return
}

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

func severity(m diag.Message, color bool) string {
	text := m.Severity.String()
	if !color {
		return text
	}
	if m.IsError() {
		return colorRed + text + colorReset
	}
	return colorYellow + text + colorReset
}

func main() {
	var configFile string
	var output string
	var listing string
	var encoding string
	var lang string
	var verbose bool
	var interactive bool
	var origin uint64
	var originSet bool
	define := defines{}

	flag.StringVar(&configFile, "c", "", "Starlark configuration file")
	flag.StringVar(&output, "o", "", "binary output file, '-' for stdout")
	flag.StringVar(&listing, "l", "", "listing output file, '-' for stdout")
	flag.Var(define, "D", "predefine NAME or NAME=VALUE (repeatable)")
	flag.StringVar(&encoding, "e", "", "IANA character encoding of strings")
	flag.Func("org", "origin address", func(text string) (err error) {
		origin, err = strconv.ParseUint(text, 0, 16)
		originSet = true
		return
	})
	flag.StringVar(&lang, "lang", "", "language of messages")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&interactive, "i", false, "interactive mode")

	flag.Parse()

	if interactive {
		if flag.NArg() != 0 {
			log.Fatalf("%v: unexpected source file in interactive mode", os.Args[0])
		}
	} else if flag.NArg() != 1 {
		log.Fatalf("%v: expected one source file, got %v", os.Args[0], flag.Args())
	}
	source := flag.Arg(0)

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	asm := &z80.Assembler{Verbose: verbose}

	if len(configFile) != 0 {
		cfg, err := config.Load(configFile, nil)
		if err != nil {
			log.Fatal(err)
		}
		err = cfg.Apply(asm)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	if len(encoding) != 0 {
		enc, err := z80.LookupEncoding(encoding)
		if err != nil {
			log.Fatal(err)
		}
		asm.Encoding = enc
	}
	if originSet {
		asm.Origin = origin
	}
	for name, value := range define {
		asm.Predefine(name, value)
	}

	if interactive {
		os.Exit(runRepl(asm, term.IsTerminal(int(os.Stdout.Fd()))))
	}

	var input io.Reader = os.Stdin
	if source != "-" {
		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		defer inf.Close()
		input = inf
	}

	prog, err := asm.Parse(input)
	if prog == nil {
		log.Fatalf("%v: %v", source, err)
	}

	if verbose {
		pp.Fprintf(os.Stderr, "labels: %v\n", prog.Labels)
	}

	color := term.IsTerminal(int(os.Stderr.Fd()))
	for line, m := range prog.Messages() {
		fmt.Fprintf(os.Stderr, "%v:%d: %v: %v\n", source, line.LineNo, severity(m, color), m.Text)
	}
	if errors.Is(err, z80.ErrNoConvergence) {
		fmt.Fprintf(os.Stderr, "%v: %v\n", source, z80.ErrNoConvergence)
	}

	if len(listing) != 0 {
		writeFile(listing, prog.Listing)
	}

	if err != nil {
		os.Exit(1)
	}

	if len(output) != 0 {
		writeFile(output, func(w io.Writer) (err error) {
			_, err = w.Write(prog.Binary())
			return
		})
	}
}

// writeFile creates a file, or uses stdout for '-', and fills it.
func writeFile(path string, fill func(w io.Writer) error) {
	if path == "-" {
		err := fill(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	ouf, err := os.Create(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer ouf.Close()

	err = fill(ouf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}
