// Package config loads assembler configuration from a Starlark file.
//
// The file may set these globals:
//
//	origin = 0x8000                       # address of the first line
//	encoding = "ISO-8859-1"               # IANA name of the string encoding
//	max_passes = 8                        # pass limit
//	symbols = {"SCREEN": 0x4000}          # predefined symbols
//	mnemonics = {"clr": ["XOR A", "LD ({0}),A"]}
//
// Every other top level function not starting with `_` may be called from
// operand expressions.
package config

import (
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/z80asm/expr"
	"github.com/ezrec/z80asm/z80"
)

// Config is a loaded configuration.
type Config struct {
	Origin    uint64
	Encoding  string // Empty for the default.
	MaxPasses int    // Zero for the default.
	Symbols   map[string]expr.Value
	Mnemonics map[string][]string
}

// Load executes a configuration file. If src is nil the file is read from
// filename, otherwise src is a string, []byte or io.Reader.
func Load(filename string, src any) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrLoad{Filename: filename, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name:  filename,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("%v: %v\n", filename, msg) },
	}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	cfg = &Config{
		Symbols:   make(map[string]expr.Value),
		Mnemonics: make(map[string][]string),
	}

	for _, name := range globals.Keys() {
		value := globals[name]
		switch name {
		case "origin":
			cfg.Origin, err = toUint64(name, value)
			if err == nil && cfg.Origin > z80.MaxAddress {
				err = ErrRange(name)
			}
		case "max_passes":
			var passes uint64
			passes, err = toUint64(name, value)
			cfg.MaxPasses = int(passes)
		case "encoding":
			text, ok := starlark.AsString(value)
			if !ok {
				err = &ErrValue{Name: name, Type: value.Type()}
			}
			cfg.Encoding = text
		case "symbols":
			err = cfg.loadSymbols(value)
		case "mnemonics":
			err = cfg.loadMnemonics(value)
		default:
			fn, ok := value.(*starlark.Function)
			if ok && !strings.HasPrefix(name, "_") {
				cfg.Symbols[name] = Function(name, fn)
			}
		}
		if err != nil {
			return
		}
	}

	return
}

func (cfg *Config) loadSymbols(value starlark.Value) (err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrValue{Name: "symbols", Type: value.Type()}
		return
	}

	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrValue{Name: "symbols", Type: item[0].Type()}
			return
		}
		cfg.Symbols[name], err = FromStarlark(name, item[1])
		if err != nil {
			return
		}
	}

	return
}

func (cfg *Config) loadMnemonics(value starlark.Value) (err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrValue{Name: "mnemonics", Type: value.Type()}
		return
	}

	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrValue{Name: "mnemonics", Type: item[0].Type()}
			return
		}

		var lines []string
		if text, ok := starlark.AsString(item[1]); ok {
			lines = strings.Split(text, "\n")
		} else {
			iterable, ok := item[1].(starlark.Iterable)
			if !ok {
				err = &ErrValue{Name: name, Type: item[1].Type()}
				return
			}
			iter := iterable.Iterate()
			var line starlark.Value
			for iter.Next(&line) {
				text, ok := starlark.AsString(line)
				if !ok {
					iter.Done()
					err = &ErrValue{Name: name, Type: line.Type()}
					return
				}
				lines = append(lines, text)
			}
			iter.Done()
		}
		cfg.Mnemonics[name] = lines
	}

	return
}

// Apply configures an assembler.
func (cfg *Config) Apply(asm *z80.Assembler) (err error) {
	asm.Origin = cfg.Origin
	if cfg.MaxPasses > 0 {
		asm.MaxPasses = cfg.MaxPasses
	}
	if len(cfg.Encoding) > 0 {
		asm.Encoding, err = z80.LookupEncoding(cfg.Encoding)
		if err != nil {
			return
		}
	}
	for name, value := range cfg.Symbols {
		asm.Predefine(name, value)
	}
	for name, lines := range cfg.Mnemonics {
		asm.DefineMnemonic(name, lines...)
	}

	return
}

func toUint64(name string, value starlark.Value) (result uint64, err error) {
	num, ok := value.(starlark.Int)
	if !ok {
		err = &ErrValue{Name: name, Type: value.Type()}
		return
	}
	result, ok = num.Uint64()
	if !ok {
		err = ErrRange(name)
	}
	return
}
