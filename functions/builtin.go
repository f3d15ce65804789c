package functions

import (
	"github.com/ezrec/gbasm/asm"
)

// Builtin is a library routine generated on demand.
type Builtin int

//go:generate go tool stringer -linecomment -type=Builtin
const (
	BUILTIN_MEMCOPY           = Builtin(0) // Memcopy
	BUILTIN_WAIT_VBLANK       = Builtin(1) // WaitVBlank
	BUILTIN_WAIT_NOT_VBLANK   = Builtin(2) // WaitNotVBlank
	BUILTIN_UPDATE_KEYS       = Builtin(3) // UpdateKeys
	BUILTIN_GET_TILE_BY_PIXEL = Builtin(4) // GetTileByPixel
)

// Builtins lists every builtin routine.
var Builtins = [...]Builtin{
	BUILTIN_MEMCOPY,
	BUILTIN_WAIT_VBLANK,
	BUILTIN_WAIT_NOT_VBLANK,
	BUILTIN_UPDATE_KEYS,
	BUILTIN_GET_TILE_BY_PIXEL,
}

// LookupBuiltin finds a builtin by its label.
func LookupBuiltin(name string) (builtin Builtin, ok bool) {
	for _, builtin = range Builtins {
		if builtin.String() == name {
			ok = true
			return
		}
	}
	return
}

var (
	regA  = asm.Reg(asm.REG_A)
	regB  = asm.Reg(asm.REG_B)
	regC  = asm.Reg(asm.REG_C)
	regH  = asm.Reg(asm.REG_H)
	regL  = asm.Reg(asm.REG_L)
	regBC = asm.Reg(asm.REG_BC)
	regDE = asm.Reg(asm.REG_DE)
	regHL = asm.Reg(asm.REG_HL)
)

// Instructions returns the routine body, starting with its label and
// ending with 'ret'.
func (builtin Builtin) Instructions() []asm.Instr {
	switch builtin {
	case BUILTIN_MEMCOPY:
		return []asm.Instr{
			asm.Comment("Copy bytes from one area to another"),
			asm.Comment("@param de: source"),
			asm.Comment("@param hl: destination"),
			asm.Comment("@param bc: length"),
			asm.Label("Memcopy"),
			asm.Ld(regA, asm.AddrReg(asm.REG_DE)),
			asm.Ld(asm.AddrRegInc(asm.REG_HL), regA),
			asm.Inc(regDE),
			asm.Dec(regBC),
			asm.Ld(regA, regB),
			asm.Or(regA, regC),
			asm.JpCond(asm.COND_NZ, "Memcopy"),
			asm.Ret(),
		}
	case BUILTIN_WAIT_VBLANK:
		return []asm.Instr{
			asm.Label("WaitVBlank"),
			asm.Ld(regA, asm.AddrSym("rLY")),
			asm.Cp(asm.Imm(144)),
			asm.JpCond(asm.COND_C, "WaitVBlank"),
			asm.Ret(),
		}
	case BUILTIN_WAIT_NOT_VBLANK:
		return []asm.Instr{
			asm.Label("WaitNotVBlank"),
			asm.Ld(regA, asm.AddrSym("rLY")),
			asm.Cp(asm.Imm(144)),
			asm.JpCond(asm.COND_NC, "WaitNotVBlank"),
			asm.Ret(),
		}
	case BUILTIN_UPDATE_KEYS:
		return []asm.Instr{
			asm.Comment("Poll half the controller (buttons)"),
			asm.Label("UpdateKeys"),
			asm.Ld(regA, asm.Sym("P1F_GET_BTN")),
			asm.Call(".onenibble"),
			asm.Ld(regB, regA),
			asm.Comment("Poll the other half (D-pad)"),
			asm.Ld(regA, asm.Sym("P1F_GET_DPAD")),
			asm.Call(".onenibble"),
			asm.Swap(regA),
			asm.Xor(regA, regB),
			asm.Ld(regB, regA),
			asm.Comment("Release the controller"),
			asm.Ld(regA, asm.Sym("P1F_GET_NONE")),
			asm.Ldh(asm.AddrSym("rP1"), regA),
			asm.Comment("Combine with the previous keys"),
			asm.Ld(regA, asm.AddrSym("wCurKeys")),
			asm.Xor(regA, regB),
			asm.And(regB),
			asm.Ld(asm.AddrSym("wNewKeys"), regA),
			asm.Ld(regA, regB),
			asm.Ld(asm.AddrSym("wCurKeys"), regA),
			asm.Ret(),
			asm.Label(".onenibble"),
			asm.Ldh(asm.AddrSym("rP1"), regA),
			asm.Call(".knownret"),
			asm.Ldh(regA, asm.AddrSym("rP1")),
			asm.Ldh(regA, asm.AddrSym("rP1")),
			asm.Ldh(regA, asm.AddrSym("rP1")),
			asm.Or(regA, asm.Imm(0xf0)),
			asm.Label(".knownret"),
			asm.Ret(),
		}
	case BUILTIN_GET_TILE_BY_PIXEL:
		return []asm.Instr{
			asm.Comment("Convert a pixel position to a tilemap address"),
			asm.Comment("hl = $9800 + X + Y * 32"),
			asm.Comment("@param b: X"),
			asm.Comment("@param c: Y"),
			asm.Comment("@return hl: tile address"),
			asm.Label("GetTileByPixel"),
			// (Y / 8) * 32 is (Y & %11111000) * 4
			asm.Ld(regA, regC),
			asm.And(asm.Imm(0b11111000)),
			asm.Ld(regL, regA),
			asm.Ld(regH, asm.Imm(0)),
			asm.Add(regHL, regHL),
			asm.Add(regHL, regHL),
			// X / 8
			asm.Ld(regA, regB),
			asm.Srl(regA),
			asm.Srl(regA),
			asm.Srl(regA),
			asm.Add(regA, regL),
			asm.Ld(regL, regA),
			asm.Adc(regA, regH),
			asm.Sub(regA, regL),
			asm.Ld(regH, regA),
			asm.Ld(regBC, asm.Imm16(0x9800)),
			asm.Add(regHL, regBC),
			asm.Ret(),
		}
	}

	return nil
}
