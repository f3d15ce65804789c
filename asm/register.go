package asm

// Register is a CPU register or register pair.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0)  // a
	REG_B  = Register(1)  // b
	REG_C  = Register(2)  // c
	REG_D  = Register(3)  // d
	REG_E  = Register(4)  // e
	REG_H  = Register(5)  // h
	REG_L  = Register(6)  // l
	REG_SP = Register(7)  // sp
	REG_PC = Register(8)  // pc
	REG_AF = Register(9)  // af
	REG_BC = Register(10) // bc
	REG_DE = Register(11) // de
	REG_HL = Register(12) // hl
)

// Wide returns true for the 16-bit registers and register pairs.
func (reg Register) Wide() bool {
	return reg >= REG_SP
}
