package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstr_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		instr  Instr
		expect string
	}){
		{Ld(Reg(REG_A), Imm(10)), "ld a, 10"},
		{Ld(Reg(REG_HL), Imm16(0x9800)), "ld hl, 38912"},
		{Ld(AddrSym("wScore"), Reg(REG_A)), "ld [wScore], a"},
		{Ld(Reg(REG_A), Addr(0xff44)), "ld a, [$ff44]"},
		{Ld(AddrRegInc(REG_HL), Reg(REG_A)), "ld [hli], a"},
		{Ld(Reg(REG_A), AddrReg(REG_DE)), "ld a, [de]"},
		{Ldh(Reg(REG_A), Sym("[rLY]")), "ldh a, [rLY]"},
		{Add(Reg(REG_A), Imm(2)), "add a, 2"},
		{AdcA(Imm(0)), "adc 0"},
		{Sub(Reg(REG_A), Reg(REG_B)), "sub a, b"},
		{Inc(Reg(REG_DE)), "inc de"},
		{Dec(Reg(REG_BC)), "dec bc"},
		{Daa(), "daa"},
		{And(Sym("PADF_LEFT")), "and a, PADF_LEFT"},
		{Or(Reg(REG_A), Reg(REG_C)), "or a, c"},
		{Xor(Reg(REG_A), Reg(REG_A)), "xor a, a"},
		{Cp(Reg(REG_B)), "cp b"},
		{Srl(Reg(REG_A)), "srl a"},
		{Swap(Reg(REG_A)), "swap a"},
		{Jp(".end_if_0"), "jp .end_if_0"},
		{JpCond(COND_NZ, ".end_if_0"), "jp nz, .end_if_0"},
		{Jr("WaitVBlank"), "jr WaitVBlank"},
		{JrCond(COND_C, "WaitVBlank"), "jr c, WaitVBlank"},
		{Call("Memcopy"), "call Memcopy"},
		{Ret(), "ret"},
		{RetCond(COND_Z), "ret z"},
		{Ds(Imm16(3), Imm(0)), "ds 3, 0"},
		{Ds(Sym("$150 - @"), Imm(0)), "ds $150 - @, 0"},
		{Include("hardware.inc"), `INCLUDE "hardware.inc"`},
		{Incbin("tiles.2bpp"), `INCBIN "tiles.2bpp"`},
		{Incbin("tiles.2bpp", 16), `INCBIN "tiles.2bpp",16`},
		{Incbin("tiles.2bpp", 16, 32), `INCBIN "tiles.2bpp",16,32`},
		{Def("SPEED", "5"), "DEF SPEED EQU 5"},
		{Section("Header", "ROM0[$100]"), `SECTION "Header", ROM0[$100]`},
		{Label(".end_if_0"), ".end_if_0:"},
		{Comment("hello"), "; hello"},
		{Db("$00, $ff"), "db $00, $ff"},
		{Dw("Tiles"), "dw Tiles"},
		{Raw("    nop"), "    nop"},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, entry.instr.String())
	}
}

func TestInstr_Target(t *testing.T) {
	assert := assert.New(t)

	target, ok := JpCond(COND_Z, ".then_3").Target()
	assert.True(ok)
	assert.Equal(".then_3", target)

	target, ok = Call("UpdateKeys").Target()
	assert.True(ok)
	assert.Equal("UpdateKeys", target)

	_, ok = Ret().Target()
	assert.False(ok)

	_, ok = Ld(Reg(REG_A), Imm(1)).Target()
	assert.False(ok)
}

func TestInstr_Immutable(t *testing.T) {
	assert := assert.New(t)

	args := []Operand{Reg(REG_A), Imm(1)}
	instr := makeInstr(OP_LD, args...)
	args[1] = Imm(2)

	assert.Equal("ld a, 1", instr.String())
}

func TestCond_Negate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(COND_NZ, COND_Z.Negate())
	assert.Equal(COND_Z, COND_NZ.Negate())
	assert.Equal(COND_NC, COND_C.Negate())
	assert.Equal(COND_C, COND_NC.Negate())
	assert.Equal(COND_ALWAYS, COND_ALWAYS.Negate())

	for _, cond := range []Cond{COND_Z, COND_NZ, COND_C, COND_NC} {
		for _, zero := range []bool{false, true} {
			for _, carry := range []bool{false, true} {
				assert.NotEqual(cond.Holds(zero, carry), cond.Negate().Holds(zero, carry), cond.String())
			}
		}
	}
}
