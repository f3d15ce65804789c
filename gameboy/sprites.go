package gameboy

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/flow"
	"github.com/ezrec/gbasm/memory"
)

const (
	OAM_ENTRY    = 4   // Bytes of an OAM entry: y, x, tile, flags.
	OAM_OFFSET_X = 8   // Screen x of OAM x zero.
	OAM_OFFSET_Y = 16  // Screen y of OAM y zero.
	OAM_SIZE     = 160 // Bytes of OAM.
)

const (
	oamY = iota
	oamX
	oamTile
	oamFlags
)

// oamSymbol is the address of a byte in OAM.
func oamSymbol(offset uint16) string {
	return fmt.Sprintf("_OAMRAM+%d", offset)
}

// Sprite is an object drawn from a block of object tiles.
type Sprite struct {
	Name  string
	Tiles *Tile
	Slot  int   // OAM entry number.
	X, Y  uint8 // Initial screen position.
	Flags uint8 // OAM attribute flags.

	offset uint16
}

func (s *Sprite) field(n uint16) string {
	return oamSymbol(s.offset + n)
}

// GetX is a producer that loads the OAM x coordinate.
func (s *Sprite) GetX() *flow.SeqNode {
	return flow.Load(s.field(oamX))
}

// GetY is a producer that loads the OAM y coordinate.
func (s *Sprite) GetY() *flow.SeqNode {
	return flow.Load(s.field(oamY))
}

// move adds the value of a variable to an OAM coordinate.
func (s *Sprite) move(field uint16, v *Var) *flow.SeqNode {
	return flow.Seq(
		asm.Ld(asm.Reg(asm.REG_A), asm.AddrSym(v.Name)),
		asm.Ld(asm.Reg(asm.REG_B), asm.Reg(asm.REG_A)),
		asm.Ld(asm.Reg(asm.REG_A), asm.AddrSym(s.field(field))),
		asm.Add(asm.Reg(asm.REG_A), asm.Reg(asm.REG_B)),
		asm.Ld(asm.AddrSym(s.field(field)), asm.Reg(asm.REG_A)),
	)
}

// MoveX adds the value of a variable to the x coordinate.
func (s *Sprite) MoveX(v *Var) *flow.SeqNode {
	return s.move(oamX, v)
}

// MoveY adds the value of a variable to the y coordinate.
func (s *Sprite) MoveY(v *Var) *flow.SeqNode {
	return s.move(oamY, v)
}

// limit moves a coordinate by a distance, and stores it only while the new
// coordinate stays on the near side of limit.
func (s *Sprite) limit(field uint16, distance uint8, op flow.ComparisonOp, limit uint8) *flow.GroupNode {
	step := flow.Minus(flow.Load(s.field(field)), distance)
	if op == flow.CMP_LE {
		step = flow.Plus(flow.Load(s.field(field)), distance)
	}

	store := flow.Seq(asm.Ld(asm.AddrSym(s.field(field)), asm.Reg(asm.REG_A)))

	return step.Append(flow.IfA(op, asm.Imm(limit), store))
}

// MoveLeft moves left by distance, stopping at OAM x coordinate limit.
func (s *Sprite) MoveLeft(distance, limit uint8) *flow.GroupNode {
	return s.limit(oamX, distance, flow.CMP_GE, limit)
}

// MoveRight moves right by distance, stopping at OAM x coordinate limit.
func (s *Sprite) MoveRight(distance, limit uint8) *flow.GroupNode {
	return s.limit(oamX, distance, flow.CMP_LE, limit)
}

// MoveUp moves up by distance, stopping at OAM y coordinate limit.
func (s *Sprite) MoveUp(distance, limit uint8) *flow.GroupNode {
	return s.limit(oamY, distance, flow.CMP_GE, limit)
}

// MoveDown moves down by distance, stopping at OAM y coordinate limit.
func (s *Sprite) MoveDown(distance, limit uint8) *flow.GroupNode {
	return s.limit(oamY, distance, flow.CMP_LE, limit)
}

// Pivot loads the screen position of a point relative to the sprite into
// 'b' (x) and 'c' (y), as expected by GetTileByPixel. The offsets must keep
// the OAM bias within a byte.
func (s *Sprite) Pivot(dx, dy int) (node *flow.SeqNode, err error) {
	defer func() {
		if err != nil {
			err = &ErrDefine{Name: s.Name, Err: err}
		}
	}()

	biasY, err := pivotBias(OAM_OFFSET_Y, dy)
	if err != nil {
		return
	}

	biasX, err := pivotBias(OAM_OFFSET_X, dx)
	if err != nil {
		return
	}

	node = flow.Seq(
		asm.Ld(asm.Reg(asm.REG_A), asm.AddrSym(s.field(oamY))),
		asm.Sub(asm.Reg(asm.REG_A), asm.Imm(biasY)),
		asm.Ld(asm.Reg(asm.REG_C), asm.Reg(asm.REG_A)),
		asm.Ld(asm.Reg(asm.REG_A), asm.AddrSym(s.field(oamX))),
		asm.Sub(asm.Reg(asm.REG_A), asm.Imm(biasX)),
		asm.Ld(asm.Reg(asm.REG_B), asm.Reg(asm.REG_A)),
	)
	return
}

// pivotBias is the OAM bias plus an offset.
func pivotBias(bias int, offset int) (value uint8, err error) {
	sum := bias + offset
	if sum < 0 || sum > 0xff {
		err = ErrPivot
		return
	}
	value = uint8(sum)
	return
}

// init stores the initial OAM entry.
func (s *Sprite) init() []asm.Instr {
	store := asm.Ld(asm.AddrRegInc(asm.REG_HL), asm.Reg(asm.REG_A))
	return []asm.Instr{
		asm.Ld(asm.Reg(asm.REG_HL), asm.Sym(s.field(oamY))),
		asm.Ld(asm.Reg(asm.REG_A), asm.Imm(s.Y+OAM_OFFSET_Y)),
		store,
		asm.Ld(asm.Reg(asm.REG_A), asm.Imm(s.X+OAM_OFFSET_X)),
		store,
		asm.Ld(asm.Reg(asm.REG_A), asm.Imm(s.Tiles.Index())),
		store,
		asm.Ld(asm.Reg(asm.REG_A), asm.Imm(s.Flags)),
		store,
	}
}

// AddSprite allocates the tiles and the OAM entry of a sprite, drawn at
// screen position x, y. The position must fit in OAM after its offsets are
// added.
func (b *Builder) AddSprite(name string, src TileSource, x, y, flags uint8) (sprite *Sprite, err error) {
	if x > 0xff-OAM_OFFSET_X || y > 0xff-OAM_OFFSET_Y {
		err = &ErrDefine{Name: name, Err: ErrSpritePosition}
		return
	}

	tiles, err := b.AddSpriteTiles(name, src)
	if err != nil {
		return
	}

	addr, err := b.alloc.Allocate(memory.REGION_OAM, OAM_ENTRY)
	if err != nil {
		err = &ErrDefine{Name: name, Err: err}
		return
	}

	offset := addr - memory.REGION_OAM.Start()
	sprite = &Sprite{
		Name:   name,
		Tiles:  tiles,
		Slot:   int(offset / OAM_ENTRY),
		X:      x,
		Y:      y,
		Flags:  flags,
		offset: offset,
	}

	b.sprites = append(b.sprites, sprite)

	if b.Verbose {
		log.Printf("gameboy: sprite %v: OAM entry %d, tile %d", name, sprite.Slot, tiles.Index())
	}

	return
}

func (b *Builder) spriteSymbols() iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		oam := memory.REGION_OAM.Start()
		if !yield("_OAMRAM", oam) {
			return
		}
		for _, sprite := range b.sprites {
			for field := range uint16(OAM_ENTRY) {
				if !yield(sprite.field(field), oam+sprite.offset+field) {
					return
				}
			}
		}
	}
}

// spriteInit clears OAM, then stores every sprite's initial entry.
func (b *Builder) spriteInit() (instrs []asm.Instr) {
	if len(b.sprites) == 0 {
		return
	}

	instrs = append(instrs,
		asm.Ld(asm.Reg(asm.REG_A), asm.Imm(0)),
		asm.Ld(asm.Reg(asm.REG_B), asm.Imm(OAM_SIZE)),
		asm.Ld(asm.Reg(asm.REG_HL), asm.Sym("_OAMRAM")),
		asm.Label("ClearOam"),
		asm.Ld(asm.AddrRegInc(asm.REG_HL), asm.Reg(asm.REG_A)),
		asm.Dec(asm.Reg(asm.REG_B)),
		asm.JpCond(asm.COND_NZ, "ClearOam"),
	)

	for _, sprite := range b.sprites {
		instrs = append(instrs, sprite.init()...)
	}

	return
}
