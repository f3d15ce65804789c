// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package flow

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrConsumed   = errors.New(f("node already lowered"))
	ErrNodeNil    = errors.New(f("node missing"))
	ErrCounterNil = errors.New(f("counter missing"))
	ErrFlag       = errors.New(f("flag condition invalid"))
	ErrOperator   = errors.New(f("comparison operator invalid"))
)

// ErrNode reports a lowering failure of a specific node kind.
type ErrNode struct {
	Kind NodeKind
	Err  error
}

func (err *ErrNode) Error() string {
	return f("%v: %v", err.Kind, err.Err)
}

func (err *ErrNode) Unwrap() error {
	return err.Err
}
