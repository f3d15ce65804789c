package asm

import (
	"fmt"
)

// OperandKind is the addressing form of an operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REG          = OperandKind(0) // reg
	OPERAND_IMM8         = OperandKind(1) // imm8
	OPERAND_IMM16        = OperandKind(2) // imm16
	OPERAND_ADDR         = OperandKind(3) // addr
	OPERAND_ADDR_SYM     = OperandKind(4) // addrsym
	OPERAND_ADDR_REG     = OperandKind(5) // addrreg
	OPERAND_ADDR_REG_INC = OperandKind(6) // addrreginc
	OPERAND_SYM          = OperandKind(7) // sym
)

// Operand is a single instruction operand.
type Operand struct {
	Kind   OperandKind
	Reg    Register // OPERAND_REG, OPERAND_ADDR_REG, OPERAND_ADDR_REG_INC
	Value  uint16   // OPERAND_IMM8, OPERAND_IMM16, OPERAND_ADDR
	Symbol string   // OPERAND_ADDR_SYM, OPERAND_SYM
}

// Reg is a register operand: a
func Reg(reg Register) Operand {
	return Operand{Kind: OPERAND_REG, Reg: reg}
}

// Imm is an 8-bit immediate: 10
func Imm(value uint8) Operand {
	return Operand{Kind: OPERAND_IMM8, Value: uint16(value)}
}

// Imm16 is a 16-bit immediate: 38912
func Imm16(value uint16) Operand {
	return Operand{Kind: OPERAND_IMM16, Value: value}
}

// Addr is an absolute address: [$ff44]
func Addr(addr uint16) Operand {
	return Operand{Kind: OPERAND_ADDR, Value: addr}
}

// AddrSym is a symbolic address: [wScore]
func AddrSym(symbol string) Operand {
	return Operand{Kind: OPERAND_ADDR_SYM, Symbol: symbol}
}

// AddrReg is a register-indirect address: [hl]
func AddrReg(reg Register) Operand {
	return Operand{Kind: OPERAND_ADDR_REG, Reg: reg}
}

// AddrRegInc is a register-indirect address with post-increment: [hli]
func AddrRegInc(reg Register) Operand {
	return Operand{Kind: OPERAND_ADDR_REG_INC, Reg: reg}
}

// Sym is a label, constant, or free-form expression: PADF_LEFT
func Sym(symbol string) Operand {
	return Operand{Kind: OPERAND_SYM, Symbol: symbol}
}

// IsReg returns true if the operand is the specified register.
func (op Operand) IsReg(reg Register) bool {
	return op.Kind == OPERAND_REG && op.Reg == reg
}

// String returns the operand in assembler syntax.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REG:
		return op.Reg.String()
	case OPERAND_IMM8, OPERAND_IMM16:
		return fmt.Sprintf("%d", op.Value)
	case OPERAND_ADDR:
		return fmt.Sprintf("[$%04x]", op.Value)
	case OPERAND_ADDR_SYM:
		return fmt.Sprintf("[%v]", op.Symbol)
	case OPERAND_ADDR_REG:
		return fmt.Sprintf("[%v]", op.Reg)
	case OPERAND_ADDR_REG_INC:
		return fmt.Sprintf("[%vi]", op.Reg)
	case OPERAND_SYM:
		return op.Symbol
	}

	return fmt.Sprintf("<%v>", op.Kind)
}
