package config

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrInclude  = errors.New(f("include file missing"))
	ErrConstant = errors.New(f("constant invalid"))
	ErrVariable = errors.New(f("variable invalid"))
)

// ErrConfig indicates the source of a configuration error.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
