// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"fmt"
	"log"
	"strings"

	"github.com/docker/go-units"
)

// Allocator is a bump allocator over every Region.
// Allocations are never reclaimed.
type Allocator struct {
	Verbose bool // If set, logs each allocation.

	used [len(Regions)]uint16
}

// NewAllocator creates an allocator with every region empty.
func NewAllocator() (alloc *Allocator) {
	alloc = &Allocator{}
	return
}

// Allocate reserves size bytes from region, returning the first address.
func (alloc *Allocator) Allocate(region Region, size uint16) (addr uint16, err error) {
	if !region.Valid() {
		err = ErrRegionInvalid
		return
	}

	remaining := alloc.Remaining(region)
	if size > remaining {
		err = &ErrRegionExhausted{Region: region, Requested: size, Remaining: remaining}
		return
	}

	addr = region.Start() + alloc.used[region]
	alloc.used[region] += size

	if alloc.Verbose {
		log.Printf("memory: %v: %v at %v (%v free)", region,
			units.BytesSize(float64(size)), FormatAddress(addr),
			units.BytesSize(float64(alloc.Remaining(region))))
	}

	return
}

// Used returns the bytes allocated from a region.
func (alloc *Allocator) Used(region Region) uint16 {
	if !region.Valid() {
		return 0
	}
	return alloc.used[region]
}

// Remaining returns the bytes still available in a region.
func (alloc *Allocator) Remaining(region Region) uint16 {
	if !region.Valid() {
		return 0
	}
	return region.Size() - alloc.used[region]
}

// Next returns the address the next allocation from region would return.
func (alloc *Allocator) Next(region Region) uint16 {
	return region.Start() + alloc.Used(region)
}

// Usage returns a one line per region summary of the allocations.
func (alloc *Allocator) Usage() string {
	var sb strings.Builder
	for _, region := range Regions {
		fmt.Fprintf(&sb, "%-9v %v-%v %8v used %8v free\n", region,
			FormatAddress(region.Start()), FormatAddress(region.End()-1),
			units.BytesSize(float64(alloc.Used(region))),
			units.BytesSize(float64(alloc.Remaining(region))))
	}
	return sb.String()
}
