// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"errors"

	"github.com/ezrec/gbasm/translate"
)

var f = translate.From

var (
	ErrRegionInvalid = errors.New(f("region invalid"))
)

// ErrRegionExhausted reports an allocation that does not fit in its region.
type ErrRegionExhausted struct {
	Region    Region
	Requested uint16
	Remaining uint16
}

func (err *ErrRegionExhausted) Error() string {
	return f("%v exhausted: %d bytes requested, %d bytes remaining", err.Region, err.Requested, err.Remaining)
}
