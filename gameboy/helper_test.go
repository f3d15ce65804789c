package gameboy

import (
	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/flow"
	"github.com/ezrec/gbasm/sim"
)

// machine returns a simulator that knows the builder's symbols.
func machine(b *Builder) (m *sim.Machine) {
	m = sim.NewMachine()
	for name, value := range b.Symbols() {
		m.Symbols[name] = value
	}
	return
}

// lower lowers nodes with a fresh counter.
func lower(nodes ...flow.Node) (instrs []asm.Instr, err error) {
	return lowerAll(flow.NewCounter(0), nodes)
}

func render(instrs []asm.Instr) string {
	out := &asm.Asm{}
	out.Emit(instrs...)
	return out.Render()
}
