package config

import (
	"github.com/ezrec/z80asm/translate"
)

var f = translate.From

// ErrValue is a configuration value of the wrong type.
type ErrValue struct {
	Name string
	Type string
}

func (err *ErrValue) Error() string {
	return f("configuration '%v' has unsupported type %v", err.Name, err.Type)
}

// ErrRange is an integer outside the range of its setting.
type ErrRange string

func (err ErrRange) Error() string {
	return f("configuration '%v' is out of range", string(err))
}

// ErrLoad wraps an error from executing a configuration file.
type ErrLoad struct {
	Filename string
	Err      error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
