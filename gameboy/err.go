package gameboy

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrBuilt          = errors.New(f("program already built"))
	ErrName           = errors.New(f("name invalid"))
	ErrNameDuplicate  = errors.New(f("name duplicated"))
	ErrVarType        = errors.New(f("variable type invalid"))
	ErrVarRange       = errors.New(f("variable initial value out of range"))
	ErrTileSource     = errors.New(f("tile source empty"))
	ErrTileRow        = errors.New(f("tile row invalid"))
	ErrTilemapSize    = errors.New(f("tilemap size invalid"))
	ErrButton         = errors.New(f("button invalid"))
	ErrSpritePosition = errors.New(f("sprite position out of range"))
	ErrPivot          = errors.New(f("pivot offset out of range"))
)

// ErrDefine reports a failed definition of a named program element.
type ErrDefine struct {
	Name string
	Err  error
}

func (err *ErrDefine) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrDefine) Unwrap() error {
	return err.Err
}
