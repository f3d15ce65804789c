package gameboy

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/functions"
	"github.com/ezrec/gbasm/memory"
)

const (
	TILE_ROWS  = 8      // Rows of a tile; each row is one 'dw' of two bitplanes.
	TILE_BYTES = 16     // Bytes of a tile.
	TILEMAP    = 0x9800 // Address of the background tilemap.
	TILEMAP_W  = 32     // Tilemap row width, in tiles.
	TILEMAP_H  = 32     // Tilemap height, in rows.
)

// TILE_SECTION is the ROM section that holds the tile data.
const TILE_SECTION = "Tiles"

// TileSource is the image data of one or more tiles.
type TileSource struct {
	rows  []string
	file  string
	tiles int
}

// TileRows is a source of literal rows, TILE_ROWS per tile. Each row is the
// operand of a 'dw' directive, such as "`01233210" or "$FF00".
func TileRows(rows ...string) TileSource {
	return TileSource{rows: rows, tiles: len(rows) / TILE_ROWS}
}

// TileFile is a source of tiles from a binary 2bpp file.
func TileFile(path string, tiles int) TileSource {
	return TileSource{file: path, tiles: tiles}
}

// Tiles is the count of tiles in the source.
func (src TileSource) Tiles() int {
	return src.tiles
}

// Size is the size of the source in bytes.
func (src TileSource) Size() uint16 {
	return uint16(src.tiles * TILE_BYTES)
}

func (src TileSource) validate() (err error) {
	if src.tiles <= 0 {
		return ErrTileSource
	}

	if src.file == "" && len(src.rows)%TILE_ROWS != 0 {
		return ErrTileRow
	}

	for _, row := range src.rows {
		if strings.TrimSpace(row) == "" {
			return ErrTileRow
		}
	}

	return
}

func (src TileSource) instructions() (instrs []asm.Instr) {
	if src.file != "" {
		return []asm.Instr{asm.Incbin(src.file)}
	}

	for _, row := range src.rows {
		instrs = append(instrs, asm.Dw(row))
	}

	return
}

// Tile is a block of tiles copied into video RAM at startup.
type Tile struct {
	Name    string
	Region  memory.Region
	Address uint16
	Source  TileSource
}

// Index is the tile number of the first tile, as used by OAM and tilemaps.
func (tile *Tile) Index() uint8 {
	return uint8((tile.Address - tile.Region.Start()) / TILE_BYTES)
}

// End is the label after the tile data.
func (tile *Tile) End() string {
	return tile.Name + "End"
}

// copyInstructions copies the tile data into video RAM.
func (tile *Tile) copyInstructions(dest uint16) []asm.Instr {
	return []asm.Instr{
		asm.Ld(asm.Reg(asm.REG_DE), asm.Sym(tile.Name)),
		asm.Ld(asm.Reg(asm.REG_HL), asm.Sym(memory.FormatAddress(dest))),
		asm.Ld(asm.Reg(asm.REG_BC), asm.Sym(fmt.Sprintf("%v - %v", tile.End(), tile.Name))),
		asm.Call(functions.BUILTIN_MEMCOPY.String()),
	}
}

// AddSpriteTiles allocates object tiles, from $8000.
func (b *Builder) AddSpriteTiles(name string, src TileSource) (tile *Tile, err error) {
	return b.addTiles(name, src, memory.REGION_TILES_OBJ)
}

// AddBackground allocates background tiles, from $9000.
func (b *Builder) AddBackground(name string, src TileSource) (tile *Tile, err error) {
	return b.addTiles(name, src, memory.REGION_TILES_BG)
}

func (b *Builder) addTiles(name string, src TileSource, region memory.Region) (tile *Tile, err error) {
	defer func() {
		if err != nil {
			err = &ErrDefine{Name: name, Err: err}
		}
	}()

	err = src.validate()
	if err != nil {
		return
	}

	err = b.claim(name)
	if err != nil {
		return
	}

	addr, err := b.alloc.Allocate(region, src.Size())
	if err != nil {
		return
	}

	tile = &Tile{
		Name:    name,
		Region:  region,
		Address: addr,
		Source:  src,
	}

	b.tiles = append(b.tiles, tile)

	if b.Verbose {
		log.Printf("gameboy: %v: %d tiles at %v", name, src.Tiles(), memory.FormatAddress(addr))
	}

	return
}

// Tilemap is a background map of tile numbers.
type Tilemap struct {
	Name string
	Rows [][TILEMAP_W]uint8
}

// End is the label after the tilemap data.
func (tm *Tilemap) End() string {
	return tm.Name + "End"
}

func (tm *Tilemap) instructions() (instrs []asm.Instr) {
	instrs = append(instrs, asm.Section(tm.Name, "ROM0"), asm.Label(tm.Name))
	for _, row := range tm.Rows {
		values := make([]string, len(row))
		for n, tile := range row {
			values[n] = fmt.Sprintf("$%02X", tile)
		}
		instrs = append(instrs, asm.Db(strings.Join(values, ", ")))
	}
	instrs = append(instrs, asm.Label(tm.End()))
	return
}

// AddTilemap sets the background tilemap, copied to $9800 at startup.
func (b *Builder) AddTilemap(name string, rows [][TILEMAP_W]uint8) (tm *Tilemap, err error) {
	defer func() {
		if err != nil {
			err = &ErrDefine{Name: name, Err: err}
		}
	}()

	if len(rows) == 0 || len(rows) > TILEMAP_H || b.tilemap != nil {
		err = ErrTilemapSize
		return
	}

	err = b.claim(name)
	if err != nil {
		return
	}

	tm = &Tilemap{Name: name, Rows: rows}
	b.tilemap = tm

	return
}

// tileCopies emits the startup copies of every tile block and the tilemap.
func (b *Builder) tileCopies() (instrs []asm.Instr) {
	for _, tile := range b.tiles {
		instrs = append(instrs, tile.copyInstructions(tile.Address)...)
	}

	if b.tilemap != nil {
		tm := &Tile{Name: b.tilemap.Name}
		instrs = append(instrs, tm.copyInstructions(TILEMAP)...)
	}

	return
}

// tileData emits object tiles, then background tiles, in a ROM section.
func (b *Builder) tileData() (instrs []asm.Instr) {
	if len(b.tiles) == 0 {
		return
	}

	instrs = append(instrs, asm.Section(TILE_SECTION, "ROM0"))
	for _, region := range []memory.Region{memory.REGION_TILES_OBJ, memory.REGION_TILES_BG} {
		for _, tile := range b.tiles {
			if tile.Region != region {
				continue
			}
			instrs = append(instrs, asm.Label(tile.Name))
			instrs = append(instrs, tile.Source.instructions()...)
			instrs = append(instrs, asm.Label(tile.End()))
		}
	}
	return
}
