package gameboy

import (
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/flow"
	"github.com/ezrec/gbasm/memory"
)

// DEFAULT_SECTION is the WRAM section that holds variables by default.
const DEFAULT_SECTION = "Variables"

// VarType is the storage type of a variable.
type VarType int

//go:generate go tool stringer -linecomment -type=VarType
const (
	VAR_U8  = VarType(0) // u8
	VAR_I8  = VarType(1) // i8
	VAR_U16 = VarType(2) // u16
	VAR_I16 = VarType(3) // i16
)

// VarTypes lists every variable type.
var VarTypes = [...]VarType{VAR_U8, VAR_I8, VAR_U16, VAR_I16}

// ParseVarType finds a variable type by name.
func ParseVarType(name string) (typ VarType, err error) {
	name = strings.ToLower(name)
	for _, typ = range VarTypes {
		if typ.String() == name {
			return
		}
	}

	err = ErrVarType
	return
}

// Size is the storage size in bytes.
func (typ VarType) Size() uint16 {
	switch typ {
	case VAR_U16, VAR_I16:
		return 2
	}
	return 1
}

// Directive is the storage directive.
func (typ VarType) Directive() string {
	if typ.Size() == 2 {
		return "dw"
	}
	return "db"
}

// Range returns the inclusive range of initial values.
func (typ VarType) Range() (low, high int) {
	switch typ {
	case VAR_U8:
		return 0, 0xff
	case VAR_I8:
		return -0x80, 0x7f
	case VAR_U16:
		return 0, 0xffff
	case VAR_I16:
		return -0x8000, 0x7fff
	}
	return
}

// Var is a variable in work RAM.
type Var struct {
	Name    string
	Type    VarType
	Address uint16
	Section string
	Initial int
}

// high is the symbol of the high byte of a 16-bit variable.
func (v *Var) high() string {
	return v.Name + "+1"
}

// bytes splits a value into its low and high storage bytes.
func (v *Var) bytes(value int) (low, high uint8) {
	word := uint16(value)
	return uint8(word), uint8(word >> 8)
}

// Get is a producer that loads the variable, or its low byte, into the
// accumulator.
func (v *Var) Get() *flow.SeqNode {
	return flow.Load(v.Name)
}

// GetHigh is a producer that loads the high byte of a 16-bit variable.
func (v *Var) GetHigh() *flow.SeqNode {
	return flow.Load(v.high())
}

// Set stores a value, truncated to the variable's width.
func (v *Var) Set(value int) *flow.SeqNode {
	return flow.Seq(v.store(value)...)
}

// SetA stores the accumulator into the variable, or its low byte.
func (v *Var) SetA() *flow.SeqNode {
	return flow.Seq(asm.Ld(asm.AddrSym(v.Name), asm.Reg(asm.REG_A)))
}

func (v *Var) store(value int) (instrs []asm.Instr) {
	low, high := v.bytes(value)

	instrs = append(instrs,
		asm.Ld(asm.Reg(asm.REG_A), asm.Imm(low)),
		asm.Ld(asm.AddrSym(v.Name), asm.Reg(asm.REG_A)),
	)

	if v.Type.Size() == 2 {
		instrs = append(instrs,
			asm.Ld(asm.Reg(asm.REG_A), asm.Imm(high)),
			asm.Ld(asm.AddrSym(v.high()), asm.Reg(asm.REG_A)),
		)
	}

	return
}

func (v *Var) String() string {
	return fmt.Sprintf("%v %v @%v", v.Type, v.Name, memory.FormatAddress(v.Address))
}

// Variable allocates a variable in work RAM, in the named section.
func (b *Builder) Variable(name string, typ VarType, initial int, section string) (v *Var, err error) {
	defer func() {
		if err != nil {
			err = &ErrDefine{Name: name, Err: err}
		}
	}()

	low, high := typ.Range()
	if low == high {
		err = ErrVarType
		return
	}

	if initial < low || initial > high {
		err = ErrVarRange
		return
	}

	if section == "" {
		section = DEFAULT_SECTION
	}

	err = b.claim(name)
	if err != nil {
		return
	}

	addr, err := b.alloc.Allocate(memory.REGION_WRAM, typ.Size())
	if err != nil {
		return
	}

	v = &Var{
		Name:    name,
		Type:    typ,
		Address: addr,
		Section: section,
		Initial: initial,
	}

	b.vars = append(b.vars, v)

	if b.Verbose {
		log.Printf("gameboy: variable %v", v)
	}

	return
}

// U8 allocates an unsigned byte variable.
func (b *Builder) U8(name string, initial uint8) (*Var, error) {
	return b.Variable(name, VAR_U8, int(initial), DEFAULT_SECTION)
}

// I8 allocates a signed byte variable.
func (b *Builder) I8(name string, initial int8) (*Var, error) {
	return b.Variable(name, VAR_I8, int(initial), DEFAULT_SECTION)
}

// U16 allocates an unsigned word variable.
func (b *Builder) U16(name string, initial uint16) (*Var, error) {
	return b.Variable(name, VAR_U16, int(initial), DEFAULT_SECTION)
}

// I16 allocates a signed word variable.
func (b *Builder) I16(name string, initial int16) (*Var, error) {
	return b.Variable(name, VAR_I16, int(initial), DEFAULT_SECTION)
}

// LookupVar returns a variable by name.
func (b *Builder) LookupVar(name string) (v *Var, ok bool) {
	for _, v = range b.vars {
		if v.Name == name {
			ok = true
			return
		}
	}
	v = nil
	return
}

func (b *Builder) varSymbols() iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		for _, v := range b.vars {
			if !yield(v.Name, v.Address) {
				return
			}
			if v.Type.Size() == 2 && !yield(v.high(), v.Address+1) {
				return
			}
		}
	}
}

// varSections emits one WRAM section per distinct section name, in order of
// first use.
func (b *Builder) varSections() (instrs []asm.Instr) {
	var sections []string
	members := map[string][]*Var{}

	for _, v := range b.vars {
		if _, ok := members[v.Section]; !ok {
			sections = append(sections, v.Section)
		}
		members[v.Section] = append(members[v.Section], v)
	}

	for _, section := range sections {
		instrs = append(instrs, asm.Section(section, "WRAM0"))
		for _, v := range members[section] {
			instrs = append(instrs, asm.Raw(fmt.Sprintf("%v: %v", v.Name, v.Type.Directive())))
		}
	}

	return
}

// varInit emits the stores of every initial value.
func (b *Builder) varInit() (instrs []asm.Instr) {
	for _, v := range b.vars {
		instrs = append(instrs, v.store(v.Initial)...)
	}
	return
}
