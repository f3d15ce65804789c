package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gbasm/asm"
)

func TestRegistry_Builtins(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()
	for _, builtin := range Builtins {
		assert.True(reg.Exists(builtin.String()))
		assert.False(reg.IsUsed(builtin.String()))

		found, ok := LookupBuiltin(builtin.String())
		assert.True(ok)
		assert.Equal(builtin, found)

		instrs := builtin.Instructions()
		labels := 0
		for _, instr := range instrs {
			if instr.Op == asm.OP_LABEL && instr.Name == builtin.String() {
				labels++
			}
		}
		assert.Equal(1, labels, builtin.String())
		assert.Equal(asm.OP_RET, instrs[len(instrs)-1].Op, builtin.String())
	}

	_, ok := LookupBuiltin("Nope")
	assert.False(ok)

	assert.Equal([]string{
		"GetTileByPixel", "Memcopy", "UpdateKeys", "WaitNotVBlank", "WaitVBlank",
	}, reg.Known())
}

func TestRegistry_MarkUsed(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()
	assert.Empty(reg.Generate())

	assert.NoError(reg.MarkUsed("WaitVBlank"))
	assert.NoError(reg.MarkUsed("Memcopy"))
	assert.NoError(reg.MarkUsed("WaitVBlank"))
	assert.Equal([]string{"Memcopy", "WaitVBlank"}, reg.Used())

	err := reg.MarkUsed("IsWallTile")
	var unknown *ErrUnknownFunction
	if assert.ErrorAs(err, &unknown) {
		assert.Equal("IsWallTile", unknown.Name)
		assert.Equal(reg.Known(), unknown.Known)
		assert.Contains(err.Error(), "IsWallTile")
		assert.Contains(err.Error(), "GetTileByPixel, Memcopy, UpdateKeys")
	}
	assert.False(reg.IsUsed("IsWallTile"))

	// Used builtins are generated in name order.
	var labels []string
	for _, instr := range reg.Generate() {
		if instr.Op == asm.OP_LABEL {
			labels = append(labels, instr.Name)
		}
	}
	assert.Equal([]string{"Memcopy", "WaitVBlank"}, labels)
}

func TestRegistry_Register(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()

	body := []asm.Instr{asm.Label("IsWallTile"), asm.Cp(asm.Imm(0)), asm.Ret()}
	assert.NoError(reg.Register("IsWallTile", body))
	assert.NoError(reg.Register("Bounce", []asm.Instr{asm.Label("Bounce"), asm.Ret()}))
	assert.True(reg.Exists("IsWallTile"))
	assert.NoError(reg.MarkUsed("IsWallTile"))

	table := [](struct {
		name string
		body []asm.Instr
		err  error
	}){
		{"IsWallTile", body, ErrFunctionDuplicate},
		{"Memcopy", body, ErrFunctionDuplicate},
		{"", body, ErrFunctionName},
		{".local", body, ErrFunctionName},
		{"Empty", nil, ErrFunctionEmpty},
	}

	for _, entry := range table {
		err := reg.Register(entry.name, entry.body)
		assert.ErrorIs(err, entry.err, entry.name)
	}

	// User routines follow used builtins, in registration order.
	assert.NoError(reg.MarkUsed("WaitVBlank"))
	var labels []string
	for _, instr := range reg.Generate() {
		if instr.Op == asm.OP_LABEL {
			labels = append(labels, instr.Name)
		}
	}
	assert.Equal([]string{"WaitVBlank", "IsWallTile", "Bounce"}, labels)
}
