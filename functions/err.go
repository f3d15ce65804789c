// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package functions

import (
	"errors"
	"strings"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrFunctionName      = errors.New(f("function name invalid"))
	ErrFunctionDuplicate = errors.New(f("function duplicated"))
	ErrFunctionEmpty     = errors.New(f("function body empty"))
)

// ErrUnknownFunction reports a call to a function that is neither a builtin
// nor registered.
type ErrUnknownFunction struct {
	Name  string
	Known []string // Sorted names of every known function.
}

func (err *ErrUnknownFunction) Error() string {
	return f("unknown function '%v'. Available functions: %v", err.Name, strings.Join(err.Known, ", "))
}

// ErrFunction reports a failed registration.
type ErrFunction struct {
	Name string
	Err  error
}

func (err *ErrFunction) Error() string {
	return f("function %v: %v", err.Name, err.Err)
}

func (err *ErrFunction) Unwrap() error {
	return err.Err
}
