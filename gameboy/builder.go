// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gameboy

import (
	"fmt"
	"iter"
	"log"
	"regexp"
	"slices"
	"strings"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/flow"
	"github.com/ezrec/gbasm/functions"
	"github.com/ezrec/gbasm/internal"
	"github.com/ezrec/gbasm/memory"
)

const (
	DEFAULT_INCLUDE = "hardware.inc"
	DEFAULT_LCDC    = "LCDCF_ON | LCDCF_BGON | LCDCF_OBJON | LCDCF_OBJ16"
	DEFAULT_PALETTE = 0b11100100
)

// CODE_SECTION is the ROM section that holds the instructions added by Raw.
const CODE_SECTION = "Code"

var symbolName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Registry is the collection of routines a program may call.
type Registry interface {
	Exists(name string) bool
	MarkUsed(name string) error
	Register(name string, body []asm.Instr) error
	Generate() []asm.Instr
}

// Allocator hands out memory from the Game Boy address regions.
type Allocator interface {
	Allocate(region memory.Region, size uint16) (addr uint16, err error)
}

var _ Registry = (*functions.Registry)(nil)
var _ Allocator = (*memory.Allocator)(nil)

type function struct {
	name string
	body flow.Node
}

// Builder collects the parts of a program.
type Builder struct {
	Verbose bool   // If set, logs definitions and build steps.
	Include string // Hardware definitions file.
	LCDC    string // LCD control value set after startup.
	Palette uint8  // Background and object palette.

	registry Registry
	alloc    Allocator

	equates   asm.Equates
	names     map[string]bool
	labels    int
	init      []flow.Node
	mainLoop  []flow.Node
	raw       []asm.Instr
	functions []*function
	vars      []*Var
	tiles     []*Tile
	tilemap   *Tilemap
	sprites   []*Sprite
	bindings  []*binding
	built     bool
}

// NewBuilder creates a builder on a registry and allocator.
func NewBuilder(registry Registry, alloc Allocator) (b *Builder) {
	b = &Builder{
		Include:  DEFAULT_INCLUDE,
		LCDC:     DEFAULT_LCDC,
		Palette:  DEFAULT_PALETTE,
		registry: registry,
		alloc:    alloc,
		names:    map[string]bool{},
	}

	return
}

// New creates a builder with every builtin routine and empty memory.
func New() *Builder {
	return NewBuilder(functions.NewRegistry(), memory.NewAllocator())
}

// claim reserves a global symbol name.
func (b *Builder) claim(name string) (err error) {
	if !symbolName.MatchString(name) {
		return ErrName
	}

	if b.names[name] || b.functionPending(name) {
		return ErrNameDuplicate
	}

	if _, ok := b.equates.Lookup(name); ok {
		return ErrNameDuplicate
	}

	b.names[name] = true
	return
}

// DefineConst defines a constant from an expression, which may reference
// previously defined constants.
func (b *Builder) DefineConst(name string, expr string) (value int64, err error) {
	b.equates.Verbose = b.Verbose
	if b.names[name] {
		err = &ErrDefine{Name: name, Err: ErrNameDuplicate}
		return
	}
	return b.equates.Define(name, expr)
}

// DefineConstHex defines a constant rendered in hexadecimal.
func (b *Builder) DefineConstHex(name string, value uint16) (err error) {
	b.equates.Verbose = b.Verbose
	if b.names[name] {
		err = &ErrDefine{Name: name, Err: ErrNameDuplicate}
		return
	}
	_, err = b.equates.DefineHex(name, memory.FormatAddress(value))
	return
}

// Eval evaluates an expression against the defined constants.
func (b *Builder) Eval(expr string) (value int64, err error) {
	return b.equates.Eval(expr)
}

// Const returns the value of a defined constant.
func (b *Builder) Const(name string) (value int64, ok bool) {
	equ, ok := b.equates.Lookup(name)
	value = equ.Value
	return
}

// UniqueLabel returns a label that is unique among the labels returned by
// this builder.
func (b *Builder) UniqueLabel(prefix string) (label string) {
	label = fmt.Sprintf("%s_%d", prefix, b.labels)
	b.labels++
	return
}

// Init adds code run once, after the hardware is set up.
func (b *Builder) Init(nodes ...flow.Node) *Builder {
	b.init = append(b.init, nodes...)
	return b
}

// MainLoop adds code run once per frame.
func (b *Builder) MainLoop(nodes ...flow.Node) *Builder {
	b.mainLoop = append(b.mainLoop, nodes...)
	return b
}

// Raw adds instructions to the end of the program, outside of any routine.
func (b *Builder) Raw(instrs ...asm.Instr) *Builder {
	b.raw = append(b.raw, instrs...)
	return b
}

// Exists returns true if name is a known routine.
func (b *Builder) Exists(name string) bool {
	return b.registry.Exists(name) || b.functionPending(name)
}

func (b *Builder) functionPending(name string) bool {
	for _, fn := range b.functions {
		if fn.name == name {
			return true
		}
	}
	return false
}

// Call returns a call to a known routine, after optional setup.
func (b *Builder) Call(name string, setup ...flow.Node) (node *flow.CallNode, err error) {
	if !b.functionPending(name) {
		err = b.registry.MarkUsed(name)
		if err != nil {
			return
		}
	}

	node = flow.Call(name, setup...)
	return
}

// CallArgs adds a call to a known routine, after setup, to the main loop.
func (b *Builder) CallArgs(name string, setup ...flow.Node) (err error) {
	node, err := b.Call(name, setup...)
	if err != nil {
		return
	}

	b.MainLoop(node)
	return
}

// DefineFunction registers a routine from instructions that start with its
// label and end with a return.
func (b *Builder) DefineFunction(name string, body []asm.Instr) (err error) {
	if b.functionPending(name) {
		return &functions.ErrFunction{Name: name, Err: functions.ErrFunctionDuplicate}
	}

	return b.registry.Register(name, body)
}

// DefineFunctionFrom registers a routine whose body is lowered at build
// time, between its label and a return.
func (b *Builder) DefineFunctionFrom(name string, body flow.Node) (err error) {
	switch {
	case !symbolName.MatchString(name):
		err = functions.ErrFunctionName
	case body == nil:
		err = functions.ErrFunctionEmpty
	case b.Exists(name):
		err = functions.ErrFunctionDuplicate
	}
	if err != nil {
		err = &functions.ErrFunction{Name: name, Err: err}
		return
	}

	b.functions = append(b.functions, &function{name: name, body: body})
	return
}

// Symbols iterates over the values of the constants and joypad masks, and
// the addresses of the variables and sprite OAM fields.
func (b *Builder) Symbols() iter.Seq2[string, uint16] {
	return internal.IterSeq2Concat(
		b.constSymbols(),
		buttonSymbols(),
		b.varSymbols(),
		b.spriteSymbols(),
	)
}

func (b *Builder) constSymbols() iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		for equ := range b.equates.All() {
			if !yield(equ.Name, uint16(equ.Value)) {
				return
			}
		}
	}
}

// lowerAll lowers nodes in order.
func lowerAll(counter *flow.Counter, nodes []flow.Node) (instrs []asm.Instr, err error) {
	for _, node := range nodes {
		var sub []asm.Instr
		sub, err = flow.Lower(counter, node)
		if err != nil {
			return
		}
		instrs = append(instrs, sub...)
	}
	return
}

// checkCalls marks the call targets of node trees as used. Routines that
// are defined from nodes are registered later, when they are lowered.
func (b *Builder) checkCalls(nodes []flow.Node) (err error) {
	for _, node := range nodes {
		for target := range flow.Calls(node) {
			if strings.HasPrefix(target, ".") || b.functionPending(target) {
				continue
			}
			err = b.registry.MarkUsed(target)
			if err != nil {
				return
			}
		}
	}
	return
}

// markCalls marks every global call target as used.
func (b *Builder) markCalls(instrs []asm.Instr) (err error) {
	for _, instr := range instrs {
		if instr.Op != asm.OP_CALL {
			continue
		}
		target, ok := instr.Target()
		if !ok || strings.HasPrefix(target, ".") {
			continue
		}
		err = b.registry.MarkUsed(target)
		if err != nil {
			return
		}
	}
	return
}

func ldA(value asm.Operand) asm.Instr {
	return asm.Ld(asm.Reg(asm.REG_A), value)
}

func stA(symbol string) asm.Instr {
	return asm.Ld(asm.AddrSym(symbol), asm.Reg(asm.REG_A))
}

// Assemble lowers every part of the program into chunks.
// The call targets of every node are validated before any node is lowered,
// and those of the generated code before any chunk is filled.
func (b *Builder) Assemble() (program *asm.Asm, err error) {
	if b.built {
		err = ErrBuilt
		return
	}
	b.built = true

	counter := flow.NewCounter(0)
	waitVBlank := functions.BUILTIN_WAIT_VBLANK.String()
	waitNotVBlank := functions.BUILTIN_WAIT_NOT_VBLANK.String()

	mainNodes := append(b.inputs(), b.mainLoop...)
	trees := slices.Concat(b.init, mainNodes)
	for _, fn := range b.functions {
		trees = append(trees, fn.body)
	}

	err = b.checkCalls(trees)
	if err != nil {
		return
	}

	user, err := lowerAll(counter, b.init)
	if err != nil {
		return
	}

	var initCode []asm.Instr
	initCode = append(initCode,
		asm.Label("EntryPoint"),
		asm.Call(waitVBlank),
		ldA(asm.Imm(0)),
		stA("rLCDC"),
	)
	initCode = append(initCode, b.tileCopies()...)
	initCode = append(initCode, b.spriteInit()...)
	initCode = append(initCode, user...)
	initCode = append(initCode, b.varInit()...)
	initCode = append(initCode,
		ldA(asm.Sym(b.LCDC)),
		stA("rLCDC"),
		ldA(asm.Imm(b.Palette)),
		stA("rBGP"),
		ldA(asm.Imm(b.Palette)),
		stA("rOBP0"),
	)

	user, err = lowerAll(counter, mainNodes)
	if err != nil {
		return
	}

	var mainCode []asm.Instr
	mainCode = append(mainCode,
		asm.Label("Main"),
		asm.Call(waitNotVBlank),
		asm.Call(waitVBlank),
	)
	mainCode = append(mainCode, user...)
	mainCode = append(mainCode, asm.Jp("Main"))

	for _, fn := range b.functions {
		user, err = flow.Lower(counter, fn.body)
		if err != nil {
			err = &functions.ErrFunction{Name: fn.name, Err: err}
			return
		}
		body := append([]asm.Instr{asm.Label(fn.name)}, user...)
		body = append(body, asm.Ret())
		err = b.registry.Register(fn.name, body)
		if err != nil {
			return
		}
	}

	for _, code := range [][]asm.Instr{initCode, mainCode, b.raw} {
		err = b.markCalls(code)
		if err != nil {
			return
		}
	}

	routines := b.registry.Generate()
	err = b.markCalls(routines)
	if err != nil {
		return
	}

	program = &asm.Asm{}

	program.Chunk(asm.CHUNK_HEADER).Emit(
		asm.Include(b.Include),
		asm.Section("Header", "ROM0[$100]"),
		asm.Jp("EntryPoint"),
		asm.Ds(asm.Sym("$150 - @"), asm.Imm(0)),
	)
	program.Chunk(asm.CHUNK_CONSTANTS).Emit(b.equates.Instructions()...)
	program.Chunk(asm.CHUNK_INIT).Emit(initCode...)
	program.Chunk(asm.CHUNK_MAIN_LOOP).Emit(mainCode...)
	program.Chunk(asm.CHUNK_FUNCTIONS).Emit(b.registry.Generate()...)
	program.Chunk(asm.CHUNK_DATA).Emit(b.varSections()...)
	program.Chunk(asm.CHUNK_TILES).Emit(b.tileData()...)
	if b.tilemap != nil {
		program.Chunk(asm.CHUNK_TILEMAP).Emit(b.tilemap.instructions()...)
	}
	if len(b.raw) != 0 {
		program.Chunk(asm.CHUNK_MAIN).Emit(asm.Section(CODE_SECTION, "ROM0"))
		program.Emit(b.raw...)
	}

	if b.Verbose {
		log.Printf("gameboy: built %d conditional blocks, %d routines", counter.Value(), len(b.functions))
	}

	return
}

// Build renders the program as assembly source.
func (b *Builder) Build() (text string, err error) {
	program, err := b.Assemble()
	if err != nil {
		return
	}

	text = program.Render()
	return
}
