package flow

import (
	"github.com/ezrec/gbasm/asm"
)

// Plus lowers producer, then adds value to the accumulator.
func Plus(producer Node, value uint8) *GroupNode {
	return Group(producer, Seq(asm.Add(asm.Reg(asm.REG_A), asm.Imm(value))))
}

// Minus lowers producer, then subtracts value from the accumulator.
func Minus(producer Node, value uint8) *GroupNode {
	return Group(producer, Seq(asm.Sub(asm.Reg(asm.REG_A), asm.Imm(value))))
}

// Load is a producer that loads a byte from a symbolic address.
func Load(symbol string) *SeqNode {
	return Seq(asm.Ld(asm.Reg(asm.REG_A), asm.AddrSym(symbol)))
}

// Const is a producer that loads an immediate.
func Const(value uint8) *SeqNode {
	return Seq(asm.Ld(asm.Reg(asm.REG_A), asm.Imm(value)))
}
