package flow

import (
	"strings"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/sim"
)

const (
	addrLeft   = 0xc000
	addrRight  = 0xc001
	addrResult = 0xc002
)

const (
	resultNone = 0
	resultThen = 1
	resultElse = 2
)

// store is a branch body that records which branch ran.
func store(result uint8) *SeqNode {
	return Seq(
		asm.Ld(asm.Reg(asm.REG_A), asm.Imm(result)),
		asm.Ld(asm.AddrSym("wResult"), asm.Reg(asm.REG_A)),
	)
}

func newMachine() (m *sim.Machine) {
	m = sim.NewMachine()
	m.Symbols["wLeft"] = addrLeft
	m.Symbols["wRight"] = addrRight
	m.Symbols["wResult"] = addrResult
	return
}

// run executes a loaded program with the given operands, and returns the
// branch taken.
func run(m *sim.Machine, left, right uint8) (result uint8, err error) {
	m.Poke(addrLeft, left)
	m.Poke(addrRight, right)
	m.Poke(addrResult, resultNone)
	m.Reset()

	err = m.Run()
	result = m.Peek(addrResult)
	return
}

func render(instrs []asm.Instr) string {
	out := &asm.Asm{}
	out.Emit(instrs...)
	return out.Render()
}

func count(instrs []asm.Instr, match func(asm.Instr) bool) (n int) {
	for _, instr := range instrs {
		if match(instr) {
			n++
		}
	}
	return
}

func labels(instrs []asm.Instr) (names []string) {
	for _, instr := range instrs {
		if instr.Op == asm.OP_LABEL {
			names = append(names, instr.Name)
		}
	}
	return
}

func lines(instrs []asm.Instr) (text []string) {
	for _, instr := range instrs {
		text = append(text, instr.String())
	}
	return
}

func contains(instrs []asm.Instr, text string) bool {
	return strings.Contains(render(instrs), text)
}
