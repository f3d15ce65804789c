package memory

import (
	"fmt"
)

// Region is an allocatable Game Boy address range.
type Region int

//go:generate go tool stringer -linecomment -type=Region
const (
	REGION_TILES_OBJ = Region(0) // TILES_OBJ
	REGION_TILES_BG  = Region(1) // TILES_BG
	REGION_WRAM      = Region(2) // WRAM
	REGION_OAM       = Region(3) // OAM
)

// Regions lists every region.
var Regions = [...]Region{REGION_TILES_OBJ, REGION_TILES_BG, REGION_WRAM, REGION_OAM}

var regionBounds = [len(Regions)][2]uint16{
	REGION_TILES_OBJ: {0x8000, 0x9000},
	REGION_TILES_BG:  {0x9000, 0x9800},
	REGION_WRAM:      {0xc000, 0xe000},
	REGION_OAM:       {0xfe00, 0xfea0},
}

// Valid returns true for the defined regions.
func (region Region) Valid() bool {
	return region >= REGION_TILES_OBJ && region <= REGION_OAM
}

// Start returns the first address of the region.
func (region Region) Start() uint16 {
	return regionBounds[region][0]
}

// End returns the address after the last address of the region.
func (region Region) End() uint16 {
	return regionBounds[region][1]
}

// Size returns the size of the region in bytes.
func (region Region) Size() uint16 {
	return region.End() - region.Start()
}

// FormatAddress formats an address as an RGBDS hexadecimal literal.
func FormatAddress(addr uint16) string {
	return fmt.Sprintf("$%04X", addr)
}
