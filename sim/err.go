// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"errors"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrHalt           = errors.New(f("halted"))
	ErrStackEmpty     = errors.New(f("stack empty"))
	ErrStackFull      = errors.New(f("stack full"))
	ErrStepLimit      = errors.New(f("step limit exceeded"))
	ErrOperand        = errors.New(f("operand invalid"))
	ErrUnsupported    = errors.New(f("instruction unsupported"))
	ErrLabelDuplicate = errors.New(f("label duplicated"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSymbolMissing string

func (es ErrSymbolMissing) Error() string {
	return f("symbol %v missing", string(es))
}

// ErrRuntime reports the instruction that failed to execute.
type ErrRuntime struct {
	Index int
	Instr asm.Instr
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("%d: '%v' %v", err.Index, err.Instr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
