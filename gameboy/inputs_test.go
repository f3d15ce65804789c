package gameboy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gbasm/flow"
)

func TestButton_Mask(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x80), PAD_DOWN.Mask())
	assert.Equal(uint8(0x20), PAD_LEFT.Mask())
	assert.Equal(uint8(0x01), PAD_A.Mask())
	assert.Equal("PADF_SELECT", PAD_SELECT.String())
	assert.False(Button(8).Valid())
}

func TestBuilder_OnPress(t *testing.T) {
	assert := assert.New(t)

	b := New()
	score, err := b.U8("wScore", 0)
	assert.NoError(err)

	assert.NoError(b.OnPress(PAD_LEFT, score.Set(1)))
	assert.NoError(b.OnNewPress(PAD_A, score.Set(2)))
	assert.ErrorIs(b.OnPress(Button(-1), score.Set(3)), ErrButton)

	_, ok := b.LookupVar("wCurKeys")
	assert.True(ok)
	_, ok = b.LookupVar("wNewKeys")
	assert.True(ok)

	text, err := b.Build()
	assert.NoError(err)

	assert.Contains(text, ""+
		"    call UpdateKeys\n"+
		"    ld a, [wCurKeys]\n"+
		"    and a, PADF_LEFT\n"+
		"    jp z, .end_if_0\n"+
		"    ld a, 1\n"+
		"    ld [wScore], a\n"+
		"    .end_if_0:\n"+
		"    ld a, [wNewKeys]\n"+
		"    and a, PADF_A\n"+
		"    jp z, .end_if_1\n")
	assert.Contains(text, "    UpdateKeys:")
	assert.Contains(text, "    wCurKeys: db\n    wNewKeys: db\n")
}

func TestBuilder_OnPress_Sim(t *testing.T) {
	b := New()
	score, err := b.U8("wScore", 0)
	assert.NoError(t, err)
	assert.NoError(t, b.OnPress(PAD_RIGHT, score.Set(1)))
	assert.NoError(t, b.OnPress(PAD_B, score.Set(2)))

	keys, ok := b.LookupVar("wCurKeys")
	assert.True(t, ok)

	var nodes []flow.Node
	for _, bind := range b.bindings {
		nodes = append(nodes, bind.node())
	}
	instrs, err := lower(nodes...)
	assert.NoError(t, err)

	for _, tc := range []struct {
		keys uint8
		want uint8
	}{
		{0x00, 0},
		{PAD_RIGHT.Mask(), 1},
		{PAD_B.Mask(), 2},
		{PAD_RIGHT.Mask() | PAD_B.Mask(), 2},
		{PAD_LEFT.Mask() | PAD_A.Mask(), 0},
	} {
		m := machine(b)
		m.Poke(keys.Address, tc.keys)
		assert.NoError(t, m.Execute(instrs))
		assert.Equal(t, tc.want, m.Peek(score.Address), "keys %02x", tc.keys)
	}
}

func TestBuilder_OnPress_Nil(t *testing.T) {
	assert := assert.New(t)

	b := New()
	err := b.OnPress(PAD_UP, nil)
	assert.ErrorIs(err, flow.ErrNodeNil)

	assert.Empty(b.inputs())
	_, ok := b.LookupVar("wCurKeys")
	assert.False(ok)
}
