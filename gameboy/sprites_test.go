package gameboy

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gbasm/asm"
)

func newSprites(t *testing.T) (b *Builder, paddle, ball *Sprite) {
	var err error

	b = New()
	paddle, err = b.AddSprite("Paddle", TileRows(tileRows(2)...), 16, 128, 0)
	assert.NoError(t, err)
	ball, err = b.AddSprite("Ball", TileRows(tileRows(1)...), 32, 100, 0x20)
	assert.NoError(t, err)
	return
}

func TestBuilder_AddSprite(t *testing.T) {
	assert := assert.New(t)

	b, paddle, ball := newSprites(t)

	assert.Equal(0, paddle.Slot)
	assert.Equal(1, ball.Slot)
	assert.Equal(uint8(2), ball.Tiles.Index())

	symbols := maps.Collect(b.Symbols())
	assert.Equal(uint16(0xfe00), symbols["_OAMRAM"])
	assert.Equal(uint16(0xfe05), symbols["_OAMRAM+5"])

	m := machine(b)
	assert.NoError(m.Execute(b.spriteInit()))

	assert.Equal([]uint8{144, 24, 0, 0, 116, 40, 2, 0x20, 0}, m.Memory[0xfe00:0xfe09])
}

func TestSprite_Clear(t *testing.T) {
	assert := assert.New(t)

	b, _, _ := newSprites(t)

	m := machine(b)
	for n := range OAM_SIZE + 1 {
		m.Poke(0xfe00+uint16(n), 0xff)
	}
	assert.NoError(m.Execute(b.spriteInit()))

	assert.Equal(uint8(0), m.Peek(0xfe08))
	assert.Equal(uint8(0), m.Peek(0xfe00+OAM_SIZE-1))
	assert.Equal(uint8(0xff), m.Peek(0xfe00+OAM_SIZE))
}

func TestSprite_Move(t *testing.T) {
	assert := assert.New(t)

	b, paddle, ball := newSprites(t)
	speed, err := b.I8("wSpeed", -3)
	assert.NoError(err)

	instrs, err := lower(ball.MoveX(speed), paddle.MoveY(speed))
	assert.NoError(err)

	m := machine(b)
	m.Poke(0xfe04, 50)
	m.Poke(0xfe05, 60)
	m.Poke(0xfe00, 70)
	m.Poke(speed.Address, 0xfd)
	assert.NoError(m.Execute(instrs))

	assert.Equal(uint8(50), m.Peek(0xfe04))
	assert.Equal(uint8(57), m.Peek(0xfe05))
	assert.Equal(uint8(67), m.Peek(0xfe00))
}

func TestSprite_MoveLimit(t *testing.T) {
	b, paddle, _ := newSprites(t)
	x := uint16(0xfe01)

	for _, tc := range []struct {
		name  string
		start uint8
		move  func() ([]asm.Instr, error)
		want  uint8
	}{
		{"left", 20, func() ([]asm.Instr, error) { return lower(paddle.MoveLeft(2, 15)) }, 18},
		{"left-at", 17, func() ([]asm.Instr, error) { return lower(paddle.MoveLeft(2, 15)) }, 15},
		{"left-past", 16, func() ([]asm.Instr, error) { return lower(paddle.MoveLeft(2, 15)) }, 16},
		{"right", 100, func() ([]asm.Instr, error) { return lower(paddle.MoveRight(1, 105)) }, 101},
		{"right-at", 104, func() ([]asm.Instr, error) { return lower(paddle.MoveRight(1, 105)) }, 105},
		{"right-past", 105, func() ([]asm.Instr, error) { return lower(paddle.MoveRight(1, 105)) }, 105},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			instrs, err := tc.move()
			assert.NoError(err)

			m := machine(b)
			m.Poke(x, tc.start)
			assert.NoError(m.Execute(instrs))
			assert.Equal(tc.want, m.Peek(x))
		})
	}
}

func TestSprite_MoveVertical(t *testing.T) {
	assert := assert.New(t)

	b, _, ball := newSprites(t)
	y := uint16(0xfe04)

	instrs, err := lower(ball.MoveUp(4, 16), ball.MoveDown(1, 152))
	assert.NoError(err)

	text := render(instrs)
	assert.Contains(text, "    ld a, [_OAMRAM+4]\n    sub a, 4\n    cp 16\n    jp c, .end_if_0\n")
	assert.Contains(text, "    jp c, .then_1\n    jp z, .then_1\n    jp .end_if_1\n")

	m := machine(b)
	m.Poke(y, 100)
	assert.NoError(m.Execute(instrs))
	assert.Equal(uint8(97), m.Peek(y))
}

func TestSprite_Pivot(t *testing.T) {
	assert := assert.New(t)

	b, _, ball := newSprites(t)

	pivot, err := ball.Pivot(4, -2)
	assert.NoError(err)

	instrs, err := lower(pivot, ball.GetY())
	assert.NoError(err)

	m := machine(b)
	m.Poke(0xfe04, 116)
	m.Poke(0xfe05, 40)
	assert.NoError(m.Execute(instrs))

	assert.Equal(uint8(116-14), m.Reg8(asm.REG_C))
	assert.Equal(uint8(40-12), m.Reg8(asm.REG_B))
	assert.Equal(uint8(116), m.Reg8(asm.REG_A))

	for _, offset := range [][2]int{{0, -17}, {248, 0}, {-9, 0}, {0, 240}} {
		pivot, err = ball.Pivot(offset[0], offset[1])
		assert.ErrorIs(err, ErrPivot, offset)
		assert.Nil(pivot)
	}

	pivot, err = ball.Pivot(-8, -16)
	assert.NoError(err)
	instrs, err = lower(pivot)
	assert.NoError(err)
	assert.Contains(render(instrs), "    sub a, 0\n")
}

func TestBuilder_AddSpritePosition(t *testing.T) {
	assert := assert.New(t)

	b := New()

	for _, pos := range [][2]uint8{{248, 0}, {0, 240}, {255, 255}} {
		_, err := b.AddSprite("Far", TileRows(tileRows(1)...), pos[0], pos[1], 0)
		assert.ErrorIs(err, ErrSpritePosition, pos)

		var define *ErrDefine
		assert.True(errors.As(err, &define))
		assert.Equal("Far", define.Name)
	}

	// Rejected sprites claim no name, tiles, or OAM.
	edge, err := b.AddSprite("Far", TileRows(tileRows(1)...), 247, 239, 0)
	assert.NoError(err)
	assert.Equal(0, edge.Slot)
	assert.Equal(uint16(0x8000), edge.Tiles.Address)

	m := machine(b)
	assert.NoError(m.Execute(b.spriteInit()))
	assert.Equal([]uint8{255, 255}, m.Memory[0xfe00:0xfe02])
}
