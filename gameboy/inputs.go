package gameboy

import (
	"iter"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/flow"
	"github.com/ezrec/gbasm/functions"
)

// Button is a joypad button.
type Button int

//go:generate go tool stringer -linecomment -type=Button
const (
	PAD_DOWN   = Button(0) // PADF_DOWN
	PAD_UP     = Button(1) // PADF_UP
	PAD_LEFT   = Button(2) // PADF_LEFT
	PAD_RIGHT  = Button(3) // PADF_RIGHT
	PAD_START  = Button(4) // PADF_START
	PAD_SELECT = Button(5) // PADF_SELECT
	PAD_B      = Button(6) // PADF_B
	PAD_A      = Button(7) // PADF_A
)

// Buttons lists every button.
var Buttons = [...]Button{PAD_DOWN, PAD_UP, PAD_LEFT, PAD_RIGHT, PAD_START, PAD_SELECT, PAD_B, PAD_A}

// Valid returns true if the button exists.
func (button Button) Valid() bool {
	return button >= PAD_DOWN && button <= PAD_A
}

// Mask is the bit of the button in the key state bytes.
func (button Button) Mask() uint8 {
	return 1 << (7 - uint8(button))
}

func buttonSymbols() iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		for _, button := range Buttons {
			if !yield(button.String(), uint16(button.Mask())) {
				return
			}
		}
	}
}

const (
	curKeys = "wCurKeys" // Buttons held, as updated by UpdateKeys.
	newKeys = "wNewKeys" // Buttons pressed since the last UpdateKeys.
)

type binding struct {
	keys   string
	button Button
	action flow.Node
}

// node tests the button in the key state, and runs the action when set.
func (bind *binding) node() flow.Node {
	setup := flow.Seq(
		asm.Ld(asm.Reg(asm.REG_A), asm.AddrSym(bind.keys)),
		asm.And(asm.Sym(bind.button.String())),
	)
	return flow.IfFlag(setup, asm.COND_NZ, bind.action)
}

// OnPress runs action on every frame the button is held.
func (b *Builder) OnPress(button Button, action flow.Node) (err error) {
	return b.bind(curKeys, button, action)
}

// OnNewPress runs action on the frame the button is first pressed.
func (b *Builder) OnNewPress(button Button, action flow.Node) (err error) {
	return b.bind(newKeys, button, action)
}

func (b *Builder) bind(keys string, button Button, action flow.Node) (err error) {
	if !button.Valid() {
		err = ErrButton
		return
	}

	if action == nil {
		err = &ErrDefine{Name: button.String(), Err: flow.ErrNodeNil}
		return
	}

	if len(b.bindings) == 0 {
		for _, name := range []string{curKeys, newKeys} {
			if _, ok := b.LookupVar(name); ok {
				continue
			}
			_, err = b.U8(name, 0)
			if err != nil {
				return
			}
		}
	}

	b.bindings = append(b.bindings, &binding{keys: keys, button: button, action: action})

	return
}

// inputs polls the joypad, then tests every binding, in binding order.
func (b *Builder) inputs() (nodes []flow.Node) {
	if len(b.bindings) == 0 {
		return
	}

	nodes = append(nodes, flow.Call(functions.BUILTIN_UPDATE_KEYS.String()))
	for _, bind := range b.bindings {
		nodes = append(nodes, bind.node())
	}

	return
}
