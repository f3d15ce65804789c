package asm

import (
	"fmt"
	"iter"
	"log"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	equateName    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	literalHex    = regexp.MustCompile(`\$([0-9A-Fa-f]+)`)
	literalBinary = regexp.MustCompile(`(^|[(,=+\-*/&|^~<>])(\s*)%([01]+)`)
)

// Equate is a named compile-time constant.
type Equate struct {
	Name  string // Constant name.
	Expr  string // Defining expression, as written.
	Value int64  // Evaluated value.
	Hex   bool   // If set, rendered as a hexadecimal literal.
}

// String returns the value as it is written in a DEF directive.
func (equ Equate) String() string {
	if equ.Hex {
		return fmt.Sprintf("$%04X", uint16(equ.Value))
	}
	return fmt.Sprintf("%d", equ.Value)
}

// Equates is an ordered table of constants.
// Each expression may reference the constants defined before it.
type Equates struct {
	Verbose bool // If set, logs every definition.

	order []string
	table map[string]Equate
}

// Define evaluates expr and adds it to the table as name.
func (equs *Equates) Define(name string, expr string) (value int64, err error) {
	return equs.define(name, expr, false)
}

// DefineHex is Define, rendering the value in hexadecimal.
func (equs *Equates) DefineHex(name string, expr string) (value int64, err error) {
	return equs.define(name, expr, true)
}

func (equs *Equates) define(name string, expr string, hex bool) (value int64, err error) {
	defer func() {
		if err != nil {
			err = &ErrEquate{Name: name, Expr: expr, Err: err}
		}
	}()

	if !equateName.MatchString(name) {
		err = ErrEquateName
		return
	}

	if _, found := equs.table[name]; found {
		err = ErrEquateDuplicate
		return
	}

	value, err = equs.Eval(expr)
	if err != nil {
		return
	}

	if value < -0x8000 || value > 0xffff {
		err = ErrEquateRange
		return
	}

	if equs.table == nil {
		equs.table = map[string]Equate{}
	}

	equs.table[name] = Equate{Name: name, Expr: expr, Value: value, Hex: hex}
	equs.order = append(equs.order, name)

	if equs.Verbose {
		log.Printf("asm: DEF %v EQU %v (%v)", name, expr, value)
	}

	return
}

// Eval evaluates an integer expression against the table.
// RGBDS '$' hexadecimal and '%' binary literals are accepted.
func (equs *Equates) Eval(expr string) (value int64, err error) {
	prog := "rc = " + rgbdsLiterals(expr) + "\n"

	pred := starlark.StringDict{}
	for name, equ := range equs.table {
		pred[name] = starlark.MakeInt64(equ.Value)
	}

	thread := starlark.Thread{Name: "equate"}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrEquateType
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrEquateRange
		return
	}

	return
}

// rgbdsLiterals rewrites '$ff' and '%1010' literals into Python syntax.
func rgbdsLiterals(expr string) string {
	expr = literalHex.ReplaceAllString(expr, "0x${1}")
	expr = literalBinary.ReplaceAllString(expr, "${1}${2}0b${3}")
	return expr
}

// Lookup returns a defined constant.
func (equs *Equates) Lookup(name string) (equ Equate, ok bool) {
	equ, ok = equs.table[name]
	return
}

// Len returns the number of constants.
func (equs *Equates) Len() int {
	return len(equs.order)
}

// All iterates over the constants, in definition order.
func (equs *Equates) All() iter.Seq[Equate] {
	return func(yield func(Equate) bool) {
		for _, name := range equs.order {
			if !yield(equs.table[name]) {
				return
			}
		}
	}
}

// Instructions returns a DEF directive per constant, in definition order.
func (equs *Equates) Instructions() (instrs []Instr) {
	for equ := range equs.All() {
		instrs = append(instrs, Def(equ.Name, equ.String()))
	}

	return
}
