package asm

// Op is the kind of an instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	// Loads
	OP_LD  = Op(0) // ld
	OP_LDH = Op(1) // ldh

	// Arithmetic
	OP_ADD = Op(2) // add
	OP_ADC = Op(3) // adc
	OP_SUB = Op(4) // sub
	OP_INC = Op(5) // inc
	OP_DEC = Op(6) // dec
	OP_DAA = Op(7) // daa

	// Logical
	OP_AND = Op(8)  // and
	OP_OR  = Op(9)  // or
	OP_XOR = Op(10) // xor
	OP_CP  = Op(11) // cp

	// Shifts
	OP_SRL  = Op(12) // srl
	OP_SWAP = Op(13) // swap

	// Jumps
	OP_JP   = Op(14) // jp
	OP_JR   = Op(15) // jr
	OP_CALL = Op(16) // call
	OP_RET  = Op(17) // ret

	// Directives
	OP_DS      = Op(18) // ds
	OP_INCLUDE = Op(19) // INCLUDE
	OP_INCBIN  = Op(20) // INCBIN
	OP_DEF     = Op(21) // DEF
	OP_SECTION = Op(22) // SECTION
	OP_DB      = Op(23) // db
	OP_DW      = Op(24) // dw

	// Source structure
	OP_LABEL   = Op(25) // label
	OP_COMMENT = Op(26) // comment
	OP_RAW     = Op(27) // raw
)

// Branch returns true if the op transfers control.
func (op Op) Branch() bool {
	return op >= OP_JP && op <= OP_RET
}

// Directive returns true if the op is an assembler directive, or
// does not generate code at all.
func (op Op) Directive() bool {
	return op >= OP_DS
}
