// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	// Equate errors
	ErrEquateName      = errors.New(f("equate name invalid"))
	ErrEquateDuplicate = errors.New(f("equate duplicated"))
	ErrEquateRange     = errors.New(f("equate value out of range"))
	ErrEquateType      = errors.New(f("equate value not an integer"))
)

// ErrEquate reports a failed equate definition.
type ErrEquate struct {
	Name string
	Expr string
	Err  error
}

func (err *ErrEquate) Error() string {
	return f("DEF %v EQU %v: %v", err.Name, err.Expr, err.Err)
}

func (err *ErrEquate) Unwrap() error {
	return err.Err
}
