// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package functions

import (
	"log"
	"regexp"
	"slices"

	"github.com/google/btree"

	"github.com/ezrec/gbasm/asm"
)

var functionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func lessName(a, b string) bool {
	return a < b
}

// Registry tracks the builtin and user routines a program may call.
// Only builtins that have been marked as used are generated; user routines
// are always generated, in registration order.
type Registry struct {
	Verbose bool // If set, logs registrations and first uses.

	known *btree.BTreeG[string]
	used  *btree.BTreeG[string]
	order []string
	user  map[string][]asm.Instr
}

// NewRegistry creates a registry that knows every builtin.
func NewRegistry() (reg *Registry) {
	reg = &Registry{
		known: btree.NewG[string](8, lessName),
		used:  btree.NewG[string](8, lessName),
		user:  map[string][]asm.Instr{},
	}

	for _, builtin := range Builtins {
		reg.known.ReplaceOrInsert(builtin.String())
	}

	return
}

// Exists returns true if name is a builtin or registered routine.
func (reg *Registry) Exists(name string) bool {
	return reg.known.Has(name)
}

// Known returns the names of every known routine, sorted.
func (reg *Registry) Known() (names []string) {
	reg.known.Ascend(func(name string) bool {
		names = append(names, name)
		return true
	})
	return
}

// MarkUsed records that name is called. Unknown names are rejected.
func (reg *Registry) MarkUsed(name string) (err error) {
	if !reg.Exists(name) {
		err = &ErrUnknownFunction{Name: name, Known: reg.Known()}
		return
	}

	_, found := reg.used.ReplaceOrInsert(name)
	if !found && reg.Verbose {
		log.Printf("functions: %v used", name)
	}

	return
}

// IsUsed returns true if name has been marked as used.
func (reg *Registry) IsUsed(name string) bool {
	return reg.used.Has(name)
}

// Used returns the names of every routine marked as used, sorted.
func (reg *Registry) Used() (names []string) {
	reg.used.Ascend(func(name string) bool {
		names = append(names, name)
		return true
	})
	return
}

// Register adds a user routine. The body must start with the routine's
// label, and return on every path.
func (reg *Registry) Register(name string, body []asm.Instr) (err error) {
	defer func() {
		if err != nil {
			err = &ErrFunction{Name: name, Err: err}
		}
	}()

	if !functionName.MatchString(name) {
		err = ErrFunctionName
		return
	}

	if reg.Exists(name) {
		err = ErrFunctionDuplicate
		return
	}

	if len(body) == 0 {
		err = ErrFunctionEmpty
		return
	}

	reg.known.ReplaceOrInsert(name)
	reg.order = append(reg.order, name)
	reg.user[name] = slices.Clone(body)

	if reg.Verbose {
		log.Printf("functions: %v registered (%d instructions)", name, len(body))
	}

	return
}

// Generate returns the bodies of the used builtins in name order, then the
// bodies of the user routines in registration order.
func (reg *Registry) Generate() (instrs []asm.Instr) {
	reg.used.Ascend(func(name string) bool {
		builtin, ok := LookupBuiltin(name)
		if ok {
			instrs = append(instrs, builtin.Instructions()...)
		}
		return true
	})

	for _, name := range reg.order {
		instrs = append(instrs, reg.user[name]...)
	}

	return
}
