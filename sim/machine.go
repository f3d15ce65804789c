// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"errors"
	"log"
	"math/bits"

	"github.com/ezrec/gbasm/asm"
)

const (
	DEFAULT_STEP_LIMIT = 1 << 20 // Default maximum instructions per Run.
)

// Extern is a Go implementation of a subroutine.
type Extern func(m *Machine) error

// Machine is the simulation context for an instruction stream.
type Machine struct {
	Verbose   bool // Set to enable verbose logging.
	StepLimit int  // Maximum instructions per Run, DEFAULT_STEP_LIMIT if zero.

	Register [7]uint8 // a, b, c, d, e, h, l
	SP       uint16   // Stack pointer register.
	Zero     bool     // Zero flag.
	Carry    bool     // Carry flag.
	Memory   []uint8  // 64KiB address space.

	Symbols map[string]uint16 // Values of constants and symbolic addresses.
	Extern  map[string]Extern // Subroutines outside the loaded program.

	Stack Stack // Call stack.
	Pc    int   // Index of the next instruction.
	Steps int   // Instructions executed since Reset.

	program []asm.Instr
	labels  map[string]int
}

// NewMachine creates a machine with cleared memory and registers.
func NewMachine() (m *Machine) {
	m = &Machine{
		Memory:  make([]uint8, 0x10000),
		Symbols: map[string]uint16{},
		Extern:  map[string]Extern{},
	}

	return
}

// Load replaces the program, and resets execution.
func (m *Machine) Load(program []asm.Instr) (err error) {
	labels := map[string]int{}
	for n, instr := range program {
		if instr.Op != asm.OP_LABEL {
			continue
		}
		if _, found := labels[instr.Name]; found {
			err = &ErrRuntime{Index: n, Instr: instr, Err: ErrLabelDuplicate}
			return
		}
		labels[instr.Name] = n
	}

	m.program = program
	m.labels = labels
	m.Reset()

	return
}

// Label returns the instruction index of a label in the loaded program.
func (m *Machine) Label(name string) (index int, ok bool) {
	index, ok = m.labels[name]
	return
}

// Reset restarts execution at the first instruction.
// Registers, flags, and memory are unchanged.
func (m *Machine) Reset() {
	m.Pc = 0
	m.Steps = 0
	m.Stack.Reset()
}

// Execute loads and runs a program.
func (m *Machine) Execute(program []asm.Instr) (err error) {
	err = m.Load(program)
	if err != nil {
		return
	}

	return m.Run()
}

// Run executes until the program ends, or returns from its top level.
func (m *Machine) Run() (err error) {
	limit := m.StepLimit
	if limit == 0 {
		limit = DEFAULT_STEP_LIMIT
	}

	for {
		if m.Steps >= limit {
			err = ErrStepLimit
			if m.Pc < len(m.program) {
				err = errors.Join(err, &ErrRuntime{Index: m.Pc, Instr: m.program[m.Pc], Err: ErrStepLimit})
			}
			return
		}

		err = m.Tick()
		if errors.Is(err, ErrHalt) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Tick executes the next instruction.
func (m *Machine) Tick() (err error) {
	if m.Pc < 0 || m.Pc >= len(m.program) {
		err = ErrHalt
		return
	}

	index := m.Pc
	instr := m.program[index]
	m.Pc++
	m.Steps++

	if m.Verbose {
		log.Printf("sim: %04d: %v", index, instr)
	}

	err = m.step(instr)
	if err != nil {
		err = &ErrRuntime{Index: index, Instr: instr, Err: err}
	}

	return
}

// Reg8 returns an 8-bit register.
func (m *Machine) Reg8(reg asm.Register) uint8 {
	return m.Register[reg]
}

// SetReg8 sets an 8-bit register.
func (m *Machine) SetReg8(reg asm.Register, value uint8) {
	m.Register[reg] = value
}

func (m *Machine) flags() (value uint8) {
	if m.Zero {
		value |= 0x80
	}
	if m.Carry {
		value |= 0x10
	}
	return
}

// Reg16 returns a 16-bit register or register pair.
func (m *Machine) Reg16(reg asm.Register) uint16 {
	pair := func(hi, lo asm.Register) uint16 {
		return uint16(m.Register[hi])<<8 | uint16(m.Register[lo])
	}

	switch reg {
	case asm.REG_SP:
		return m.SP
	case asm.REG_PC:
		return uint16(m.Pc)
	case asm.REG_AF:
		return uint16(m.Register[asm.REG_A])<<8 | uint16(m.flags())
	case asm.REG_BC:
		return pair(asm.REG_B, asm.REG_C)
	case asm.REG_DE:
		return pair(asm.REG_D, asm.REG_E)
	case asm.REG_HL:
		return pair(asm.REG_H, asm.REG_L)
	}

	return uint16(m.Register[reg])
}

// SetReg16 sets a 16-bit register or register pair.
func (m *Machine) SetReg16(reg asm.Register, value uint16) {
	hi, lo := uint8(value>>8), uint8(value)

	switch reg {
	case asm.REG_SP:
		m.SP = value
	case asm.REG_PC:
		m.Pc = int(value)
	case asm.REG_AF:
		m.Register[asm.REG_A] = hi
		m.Zero = (lo & 0x80) != 0
		m.Carry = (lo & 0x10) != 0
	case asm.REG_BC:
		m.Register[asm.REG_B], m.Register[asm.REG_C] = hi, lo
	case asm.REG_DE:
		m.Register[asm.REG_D], m.Register[asm.REG_E] = hi, lo
	case asm.REG_HL:
		m.Register[asm.REG_H], m.Register[asm.REG_L] = hi, lo
	default:
		m.Register[reg] = lo
	}
}

// Poke writes a byte to memory.
func (m *Machine) Poke(addr uint16, value uint8) {
	m.Memory[addr] = value
}

// Peek reads a byte from memory.
func (m *Machine) Peek(addr uint16) uint8 {
	return m.Memory[addr]
}

func (m *Machine) symbol(name string) (value uint16, err error) {
	value, ok := m.Symbols[name]
	if !ok {
		err = ErrSymbolMissing(name)
	}
	return
}

// address resolves a memory operand, applying any post-increment.
func (m *Machine) address(op asm.Operand) (addr uint16, err error) {
	switch op.Kind {
	case asm.OPERAND_ADDR:
		addr = op.Value
	case asm.OPERAND_ADDR_SYM:
		addr, err = m.symbol(op.Symbol)
	case asm.OPERAND_ADDR_REG:
		addr = m.Reg16(op.Reg)
	case asm.OPERAND_ADDR_REG_INC:
		addr = m.Reg16(op.Reg)
		m.SetReg16(op.Reg, addr+1)
	default:
		err = ErrOperand
	}

	return
}

func isMemory(op asm.Operand) bool {
	switch op.Kind {
	case asm.OPERAND_ADDR, asm.OPERAND_ADDR_SYM, asm.OPERAND_ADDR_REG, asm.OPERAND_ADDR_REG_INC:
		return true
	}
	return false
}

// wide returns true if the operand is a 16-bit register.
func wide(op asm.Operand) bool {
	return op.Kind == asm.OPERAND_REG && op.Reg.Wide()
}

func (m *Machine) read(op asm.Operand) (value uint16, err error) {
	switch op.Kind {
	case asm.OPERAND_REG:
		if op.Reg.Wide() {
			value = m.Reg16(op.Reg)
		} else {
			value = uint16(m.Reg8(op.Reg))
		}
	case asm.OPERAND_IMM8, asm.OPERAND_IMM16:
		value = op.Value
	case asm.OPERAND_SYM:
		value, err = m.symbol(op.Symbol)
	default:
		var addr uint16
		addr, err = m.address(op)
		if err != nil {
			return
		}
		value = uint16(m.Memory[addr])
	}

	return
}

func (m *Machine) write(op asm.Operand, value uint16) (err error) {
	switch op.Kind {
	case asm.OPERAND_REG:
		if op.Reg.Wide() {
			m.SetReg16(op.Reg, value)
		} else {
			m.SetReg8(op.Reg, uint8(value))
		}
	default:
		if !isMemory(op) {
			err = ErrOperand
			return
		}
		var addr uint16
		addr, err = m.address(op)
		if err != nil {
			return
		}
		m.Memory[addr] = uint8(value)
	}

	return
}

func (m *Machine) jump(target string) (err error) {
	index, ok := m.labels[target]
	if !ok {
		err = ErrLabelMissing(target)
		return
	}

	m.Pc = index
	return
}

// operands splits an instruction into an explicit destination and a source.
// Single operand arithmetic implies the accumulator as destination.
func operands(instr asm.Instr) (dst, src asm.Operand, err error) {
	switch len(instr.Args) {
	case 1:
		dst, src = asm.Reg(asm.REG_A), instr.Args[0]
	case 2:
		dst, src = instr.Args[0], instr.Args[1]
	default:
		err = ErrOperand
	}
	return
}

func (m *Machine) step(instr asm.Instr) (err error) {
	switch instr.Op {
	case asm.OP_LD, asm.OP_LDH:
		var dst, src asm.Operand
		dst, src, err = operands(instr)
		if err != nil || len(instr.Args) != 2 {
			err = ErrOperand
			return
		}
		if instr.Op == asm.OP_LDH {
			dst, src = highPage(dst), highPage(src)
		}
		var value uint16
		value, err = m.read(src)
		if err != nil {
			return
		}
		err = m.write(dst, value)
	case asm.OP_ADD, asm.OP_ADC, asm.OP_SUB, asm.OP_AND, asm.OP_OR, asm.OP_XOR, asm.OP_CP:
		err = m.alu(instr)
	case asm.OP_INC, asm.OP_DEC:
		if len(instr.Args) != 1 {
			err = ErrOperand
			return
		}
		arg := instr.Args[0]
		var value uint16
		value, err = m.read(arg)
		if err != nil {
			return
		}
		if instr.Op == asm.OP_INC {
			value++
		} else {
			value--
		}
		if !wide(arg) {
			value &= 0xff
			m.Zero = value == 0
		}
		err = m.write(arg, value)
	case asm.OP_SRL, asm.OP_SWAP:
		if len(instr.Args) != 1 {
			err = ErrOperand
			return
		}
		arg := instr.Args[0]
		var value uint16
		value, err = m.read(arg)
		if err != nil {
			return
		}
		v8 := uint8(value)
		if instr.Op == asm.OP_SRL {
			m.Carry = (v8 & 1) != 0
			v8 >>= 1
		} else {
			m.Carry = false
			v8 = bits.RotateLeft8(v8, 4)
		}
		m.Zero = v8 == 0
		err = m.write(arg, uint16(v8))
	case asm.OP_JP, asm.OP_JR:
		target, ok := instr.Target()
		if !ok {
			err = ErrOperand
			return
		}
		if instr.Cond.Holds(m.Zero, m.Carry) {
			err = m.jump(target)
		}
	case asm.OP_CALL:
		target, ok := instr.Target()
		if !ok {
			err = ErrOperand
			return
		}
		if !instr.Cond.Holds(m.Zero, m.Carry) {
			return
		}
		if _, found := m.labels[target]; !found {
			extern, found := m.Extern[target]
			if !found {
				err = ErrLabelMissing(target)
				return
			}
			err = extern(m)
			return
		}
		err = m.Stack.Push(m.Pc)
		if err != nil {
			return
		}
		err = m.jump(target)
	case asm.OP_RET:
		if !instr.Cond.Holds(m.Zero, m.Carry) {
			return
		}
		index, ok := m.Stack.Pop()
		if !ok {
			// Return from the top level.
			m.Pc = len(m.program)
			return
		}
		m.Pc = index
	case asm.OP_DAA:
		err = ErrUnsupported
	default:
		// Directives, labels, and comments.
	}

	return
}

// highPage maps an 8-bit absolute address into $FF00-$FFFF.
func highPage(op asm.Operand) asm.Operand {
	if op.Kind == asm.OPERAND_ADDR && op.Value < 0x100 {
		op.Value |= 0xff00
	}
	return op
}

func (m *Machine) alu(instr asm.Instr) (err error) {
	dst, src, err := operands(instr)
	if err != nil {
		return
	}

	if instr.Op == asm.OP_CP && len(instr.Args) != 1 {
		err = ErrOperand
		return
	}

	a, err := m.read(dst)
	if err != nil {
		return
	}

	b, err := m.read(src)
	if err != nil {
		return
	}

	if wide(dst) {
		if instr.Op != asm.OP_ADD {
			err = ErrUnsupported
			return
		}
		sum, carry := bits.Add32(uint32(a), uint32(b), 0)
		m.Carry = carry != 0 || sum > 0xffff
		err = m.write(dst, uint16(sum))
		return
	}

	var result uint16
	switch instr.Op {
	case asm.OP_ADD:
		result = a + b
		m.Carry = result > 0xff
	case asm.OP_ADC:
		result = a + b
		if m.Carry {
			result++
		}
		m.Carry = result > 0xff
	case asm.OP_SUB, asm.OP_CP:
		result = (a - b) & 0xff
		m.Carry = a < b
	case asm.OP_AND:
		result = a & b
		m.Carry = false
	case asm.OP_OR:
		result = a | b
		m.Carry = false
	case asm.OP_XOR:
		result = a ^ b
		m.Carry = false
	}

	result &= 0xff
	m.Zero = result == 0

	if instr.Op == asm.OP_CP {
		return
	}

	err = m.write(dst, result)
	return
}
