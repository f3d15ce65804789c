package flow

import (
	"github.com/ezrec/gbasm/asm"
)

// Flag conditions for IfFlag and IfCall, as set by the convention of
// predicate subroutines.
const (
	IsTrue      = asm.COND_Z  // Zero set
	IsFalse     = asm.COND_NZ // Zero clear
	IsLess      = asm.COND_C  // Carry set
	IsGreaterEq = asm.COND_NC // Carry clear
)

type compareMode int

const (
	compareProducers = compareMode(iota) // left and right producers
	compareConst                         // left producer and a constant
	compareLoaded                        // accumulator and a constant
	compareFlag                          // setup node and a flag
)

// IfNode is a conditional block.
type IfNode struct {
	oneShot
	mode     compareMode
	op       ComparisonOp
	left     Node
	right    Node
	constant asm.Operand
	setup    Node
	flag     asm.Cond
	then     Node
	orElse   Node
}

// If returns a block that runs then iff left op right.
// Both producers leave their value in the accumulator. The comparison holds
// left in 'b' and right in 'c', so neither register survives it, and the
// right producer must preserve 'b'.
func If(left Node, op ComparisonOp, right Node, then Node) *IfNode {
	return &IfNode{mode: compareProducers, left: left, op: op, right: right, then: then}
}

// IfConst returns a block that runs then iff left op constant.
func IfConst(left Node, op ComparisonOp, constant asm.Operand, then Node) *IfNode {
	return &IfNode{mode: compareConst, left: left, op: op, constant: constant, then: then}
}

// IfA returns a block that runs then iff the accumulator op constant.
func IfA(op ComparisonOp, constant asm.Operand, then Node) *IfNode {
	return &IfNode{mode: compareLoaded, op: op, constant: constant, then: then}
}

// IfFlag returns a block that lowers setup, then runs then iff flag holds.
// A nil setup tests the flags as they are.
func IfFlag(setup Node, flag asm.Cond, then Node) *IfNode {
	return &IfNode{mode: compareFlag, setup: setup, flag: flag, then: then}
}

// IfCall returns a block that calls target, then runs then iff flag holds.
func IfCall(target string, flag asm.Cond, then Node) *IfNode {
	return IfFlag(Call(target), flag, then)
}

// WithSetup lowers setup before the comparison, or before the call of an
// IfCall block.
func (node *IfNode) WithSetup(setup Node) *IfNode {
	if node.setup == nil {
		node.setup = setup
	} else {
		node.setup = Group(setup, node.setup)
	}
	return node
}

// Else sets the else branch.
func (node *IfNode) Else(orElse Node) *IfNode {
	node.orElse = orElse
	return node
}

func (node *IfNode) Kind() NodeKind { return NODE_IF }

// Op returns the comparison operator, if the block is a comparison.
func (node *IfNode) Op() (op ComparisonOp, ok bool) {
	return node.op, node.mode != compareFlag
}

// HasElse returns true if the block has an else branch.
func (node *IfNode) HasElse() bool {
	return !isNil(node.orElse)
}

func (node *IfNode) children() (nodes []Node) {
	for _, n := range []Node{node.left, node.right, node.setup, node.then, node.orElse} {
		if !isNil(n) {
			nodes = append(nodes, n)
		}
	}
	return
}

// compare emits the instructions that set the flags for the block.
func (node *IfNode) compare(counter *Counter) (instrs []asm.Instr, err error) {
	var sub []asm.Instr

	if !isNil(node.setup) {
		instrs, err = lower(counter, node.setup)
		if err != nil {
			return
		}
	}

	switch node.mode {
	case compareProducers:
		sub, err = lower(counter, node.left)
		if err != nil {
			return
		}
		instrs = append(instrs, sub...)
		instrs = append(instrs, asm.Ld(asm.Reg(asm.REG_B), asm.Reg(asm.REG_A)))
		sub, err = lower(counter, node.right)
		if err != nil {
			return
		}
		instrs = append(instrs, sub...)
		// Restore left to the accumulator, so that Carry means left < right.
		instrs = append(instrs,
			asm.Ld(asm.Reg(asm.REG_C), asm.Reg(asm.REG_A)),
			asm.Ld(asm.Reg(asm.REG_A), asm.Reg(asm.REG_B)),
			asm.Cp(asm.Reg(asm.REG_C)),
		)
	case compareConst:
		sub, err = lower(counter, node.left)
		if err != nil {
			return
		}
		instrs = append(instrs, sub...)
		instrs = append(instrs, asm.Cp(node.constant))
	case compareLoaded:
		instrs = append(instrs, asm.Cp(node.constant))
	}

	return
}

func (node *IfNode) validate() (err error) {
	if isNil(node.then) {
		return ErrNodeNil
	}

	if node.mode == compareFlag {
		switch node.flag {
		case asm.COND_Z, asm.COND_NZ, asm.COND_C, asm.COND_NC:
		default:
			return ErrFlag
		}
		return
	}

	if !node.op.Valid() {
		return ErrOperator
	}

	if node.mode != compareLoaded && isNil(node.left) {
		return ErrNodeNil
	}

	if node.mode == compareProducers && isNil(node.right) {
		return ErrNodeNil
	}

	return
}

func (node *IfNode) lower(counter *Counter) (instrs []asm.Instr, err error) {
	if node.Lowered() {
		err = &ErrNode{Kind: NODE_IF, Err: ErrConsumed}
		return
	}

	err = node.validate()
	if err != nil {
		err = &ErrNode{Kind: NODE_IF, Err: err}
		return
	}

	err = node.consume(NODE_IF)
	if err != nil {
		return
	}

	// The block owns its identifier before any nested block is lowered.
	id := counter.Reserve()
	endLabel := EndLabel(id)
	elseLabel := ElseLabel(id)

	instrs, err = node.compare(counter)
	if err != nil {
		return
	}

	hasElse := node.HasElse()
	skipLabel := endLabel
	if hasElse {
		skipLabel = elseLabel
	}

	switch {
	case node.mode == compareFlag:
		instrs = append(instrs, asm.JpCond(node.flag.Negate(), skipLabel))
	case node.op == CMP_LE:
		thenLabel := ThenLabel(id)
		instrs = append(instrs,
			asm.JpCond(asm.COND_C, thenLabel),
			asm.JpCond(asm.COND_Z, thenLabel),
			asm.Jp(skipLabel),
			asm.Label(thenLabel),
		)
	case node.op == CMP_GT:
		instrs = append(instrs,
			asm.JpCond(asm.COND_C, skipLabel),
			asm.JpCond(asm.COND_Z, skipLabel),
		)
	default:
		instrs = append(instrs, asm.JpCond(node.op.Skip(), skipLabel))
	}

	sub, err := lower(counter, node.then)
	if err != nil {
		return
	}
	instrs = append(instrs, sub...)

	if hasElse {
		instrs = append(instrs, asm.Jp(endLabel), asm.Label(elseLabel))
		sub, err = lower(counter, node.orElse)
		if err != nil {
			return
		}
		instrs = append(instrs, sub...)
	}

	instrs = append(instrs, asm.Label(endLabel))

	node.left, node.right, node.setup, node.then, node.orElse = nil, nil, nil, nil, nil
	return
}
