package asm

import (
	"fmt"
	"strings"
)

// Instr is a single line of assembly source.
type Instr struct {
	Op     Op
	Cond   Cond      // Branch condition, COND_ALWAYS if unconditional.
	Args   []Operand // Operands, in source order.
	Name   string    // Label, file, equate, or section name.
	Value  string    // Comment text, data, equate value, section type, or raw line.
	Bounds []int     // INCBIN offset and length, if present.
}

func makeInstr(op Op, args ...Operand) Instr {
	return Instr{Op: op, Args: append([]Operand(nil), args...)}
}

// Ld is 'ld dst, src'.
func Ld(dst, src Operand) Instr { return makeInstr(OP_LD, dst, src) }

// Ldh is 'ldh dst, src'.
func Ldh(dst, src Operand) Instr { return makeInstr(OP_LDH, dst, src) }

// Add is 'add dst, src'.
func Add(dst, src Operand) Instr { return makeInstr(OP_ADD, dst, src) }

// Adc is 'adc dst, src'.
func Adc(dst, src Operand) Instr { return makeInstr(OP_ADC, dst, src) }

// AdcA is 'adc src', with the accumulator implied.
func AdcA(src Operand) Instr { return makeInstr(OP_ADC, src) }

// Sub is 'sub dst, src'.
func Sub(dst, src Operand) Instr { return makeInstr(OP_SUB, dst, src) }

// Inc is 'inc x'.
func Inc(x Operand) Instr { return makeInstr(OP_INC, x) }

// Dec is 'dec x'.
func Dec(x Operand) Instr { return makeInstr(OP_DEC, x) }

// Daa is 'daa'.
func Daa() Instr { return makeInstr(OP_DAA) }

// And is 'and a, x'.
func And(x Operand) Instr { return makeInstr(OP_AND, Reg(REG_A), x) }

// Or is 'or dst, src'.
func Or(dst, src Operand) Instr { return makeInstr(OP_OR, dst, src) }

// Xor is 'xor dst, src'.
func Xor(dst, src Operand) Instr { return makeInstr(OP_XOR, dst, src) }

// Cp is 'cp x', comparing the accumulator against x.
func Cp(x Operand) Instr { return makeInstr(OP_CP, x) }

// Srl is 'srl x'.
func Srl(x Operand) Instr { return makeInstr(OP_SRL, x) }

// Swap is 'swap x'.
func Swap(x Operand) Instr { return makeInstr(OP_SWAP, x) }

// Jp is an unconditional 'jp target'.
func Jp(target string) Instr { return makeInstr(OP_JP, Sym(target)) }

// JpCond is 'jp cond, target'.
func JpCond(cond Cond, target string) Instr {
	instr := Jp(target)
	instr.Cond = cond
	return instr
}

// Jr is an unconditional 'jr target'.
func Jr(target string) Instr { return makeInstr(OP_JR, Sym(target)) }

// JrCond is 'jr cond, target'.
func JrCond(cond Cond, target string) Instr {
	instr := Jr(target)
	instr.Cond = cond
	return instr
}

// Call is 'call target'.
func Call(target string) Instr { return makeInstr(OP_CALL, Sym(target)) }

// Ret is 'ret'.
func Ret() Instr { return makeInstr(OP_RET) }

// RetCond is 'ret cond'.
func RetCond(cond Cond) Instr {
	instr := Ret()
	instr.Cond = cond
	return instr
}

// Ds reserves count bytes, filled with fill.
func Ds(count, fill Operand) Instr { return makeInstr(OP_DS, count, fill) }

// Include is 'INCLUDE "file"'.
func Include(file string) Instr { return Instr{Op: OP_INCLUDE, Name: file} }

// Incbin is 'INCBIN "file"', with an optional offset and length.
func Incbin(file string, bounds ...int) Instr {
	if len(bounds) > 2 {
		bounds = bounds[:2]
	}
	return Instr{Op: OP_INCBIN, Name: file, Bounds: append([]int(nil), bounds...)}
}

// Def is 'DEF name EQU value'.
func Def(name string, value string) Instr { return Instr{Op: OP_DEF, Name: name, Value: value} }

// Section is 'SECTION "name", kind'.
func Section(name string, kind string) Instr { return Instr{Op: OP_SECTION, Name: name, Value: kind} }

// Label is 'name:'.
func Label(name string) Instr { return Instr{Op: OP_LABEL, Name: name} }

// Comment is '; text'.
func Comment(text string) Instr { return Instr{Op: OP_COMMENT, Value: text} }

// Db is 'db values'.
func Db(values string) Instr { return Instr{Op: OP_DB, Value: values} }

// Dw is 'dw values'.
func Dw(values string) Instr { return Instr{Op: OP_DW, Value: values} }

// Raw is a line passed through unchanged.
func Raw(line string) Instr { return Instr{Op: OP_RAW, Value: line} }

// Target returns the symbolic destination of a branch.
func (instr Instr) Target() (target string, ok bool) {
	if !instr.Op.Branch() || len(instr.Args) == 0 {
		return
	}

	arg := instr.Args[len(instr.Args)-1]
	if arg.Kind != OPERAND_SYM {
		return
	}

	return arg.Symbol, true
}

// String returns the instruction in assembler syntax, without indentation.
func (instr Instr) String() string {
	switch instr.Op {
	case OP_LABEL:
		return instr.Name + ":"
	case OP_COMMENT:
		return "; " + instr.Value
	case OP_RAW:
		return instr.Value
	case OP_DB, OP_DW:
		return fmt.Sprintf("%v %v", instr.Op, instr.Value)
	case OP_INCLUDE:
		return fmt.Sprintf("INCLUDE %q", instr.Name)
	case OP_INCBIN:
		text := fmt.Sprintf("INCBIN %q", instr.Name)
		for _, bound := range instr.Bounds {
			text += fmt.Sprintf(",%d", bound)
		}
		return text
	case OP_DEF:
		return fmt.Sprintf("DEF %v EQU %v", instr.Name, instr.Value)
	case OP_SECTION:
		return fmt.Sprintf("SECTION %q, %v", instr.Name, instr.Value)
	}

	words := make([]string, 0, len(instr.Args)+1)
	if instr.Cond != COND_ALWAYS {
		words = append(words, instr.Cond.String())
	}
	for _, arg := range instr.Args {
		words = append(words, arg.String())
	}

	if len(words) == 0 {
		return instr.Op.String()
	}

	return instr.Op.String() + " " + strings.Join(words, ", ")
}
