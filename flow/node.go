package flow

import (
	"iter"
	"slices"

	"github.com/ezrec/gbasm/asm"
)

// NodeKind identifies the concrete type of a Node.
type NodeKind int

//go:generate go tool stringer -linecomment -type=NodeKind
const (
	NODE_SEQ   = NodeKind(0) // seq
	NODE_SEQS  = NodeKind(1) // seqs
	NODE_GROUP = NodeKind(2) // group
	NODE_CALL  = NodeKind(3) // call
	NODE_IF    = NodeKind(4) // if
)

// Node is an element of a control flow tree.
// The set of implementations is closed: *SeqNode, *SeqsNode, *GroupNode,
// *CallNode, and *IfNode.
type Node interface {
	Kind() NodeKind
	// Lowered returns true once the node has been lowered.
	Lowered() bool

	lower(counter *Counter) ([]asm.Instr, error)
	children() []Node
}

var (
	_ Node = (*SeqNode)(nil)
	_ Node = (*SeqsNode)(nil)
	_ Node = (*GroupNode)(nil)
	_ Node = (*CallNode)(nil)
	_ Node = (*IfNode)(nil)
)

// oneShot guards a node against being lowered twice.
type oneShot struct {
	lowered bool
}

func (once *oneShot) Lowered() bool {
	return once.lowered
}

func (once *oneShot) consume(kind NodeKind) (err error) {
	if once.lowered {
		err = &ErrNode{Kind: kind, Err: ErrConsumed}
		return
	}

	once.lowered = true
	return
}

// Lower lowers a node tree into a flat instruction sequence.
func Lower(counter *Counter, node Node) (instrs []asm.Instr, err error) {
	if counter == nil {
		err = ErrCounterNil
		return
	}

	return lower(counter, node)
}

func lower(counter *Counter, node Node) (instrs []asm.Instr, err error) {
	if isNil(node) {
		err = ErrNodeNil
		return
	}

	return node.lower(counter)
}

func isNil(node Node) bool {
	if node == nil {
		return true
	}

	switch n := node.(type) {
	case *SeqNode:
		return n == nil
	case *SeqsNode:
		return n == nil
	case *GroupNode:
		return n == nil
	case *CallNode:
		return n == nil
	case *IfNode:
		return n == nil
	}

	return false
}

// Walk iterates over a node tree, parents before children.
func Walk(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walk(node, yield)
	}
}

func walk(node Node, yield func(Node) bool) bool {
	if isNil(node) {
		return true
	}

	if !yield(node) {
		return false
	}

	for _, child := range node.children() {
		if !walk(child, yield) {
			return false
		}
	}

	return true
}

// Calls iterates over the targets of every 'call' in a node tree,
// including calls inside raw instruction sequences.
func Calls(node Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := range Walk(node) {
			var instrs []asm.Instr
			switch n := n.(type) {
			case *SeqNode:
				instrs = n.instrs
			case *SeqsNode:
				instrs = slices.Concat(n.seqs...)
			case *CallNode:
				instrs = []asm.Instr{asm.Call(n.target)}
			}
			for _, instr := range instrs {
				if instr.Op != asm.OP_CALL {
					continue
				}
				target, ok := instr.Target()
				if ok && !yield(target) {
					return
				}
			}
		}
	}
}

// SeqNode is a raw instruction sequence.
type SeqNode struct {
	oneShot
	instrs []asm.Instr
}

// Seq returns a node that lowers to instrs.
func Seq(instrs ...asm.Instr) *SeqNode {
	return &SeqNode{instrs: slices.Clone(instrs)}
}

func (node *SeqNode) Kind() NodeKind { return NODE_SEQ }

// Len returns the number of instructions.
func (node *SeqNode) Len() int { return len(node.instrs) }

func (node *SeqNode) children() []Node { return nil }

func (node *SeqNode) lower(counter *Counter) (instrs []asm.Instr, err error) {
	err = node.consume(NODE_SEQ)
	if err != nil {
		return
	}

	instrs, node.instrs = node.instrs, nil
	return
}

// SeqsNode is a sequence of instruction sequences, lowered in order.
type SeqsNode struct {
	oneShot
	seqs [][]asm.Instr
}

// Seqs returns a node that lowers to the concatenation of seqs.
func Seqs(seqs ...[]asm.Instr) *SeqsNode {
	node := &SeqsNode{}
	for _, seq := range seqs {
		node.seqs = append(node.seqs, slices.Clone(seq))
	}
	return node
}

func (node *SeqsNode) Kind() NodeKind { return NODE_SEQS }

func (node *SeqsNode) children() []Node { return nil }

func (node *SeqsNode) lower(counter *Counter) (instrs []asm.Instr, err error) {
	err = node.consume(NODE_SEQS)
	if err != nil {
		return
	}

	instrs = slices.Concat(node.seqs...)
	node.seqs = nil
	return
}

// GroupNode is an ordered collection of nodes.
type GroupNode struct {
	oneShot
	nodes []Node
}

// Group returns a node that lowers each of nodes in order.
func Group(nodes ...Node) *GroupNode {
	return &GroupNode{nodes: slices.Clone(nodes)}
}

// Append adds nodes to the end of the group.
func (node *GroupNode) Append(nodes ...Node) *GroupNode {
	node.nodes = append(node.nodes, nodes...)
	return node
}

func (node *GroupNode) Kind() NodeKind { return NODE_GROUP }

// Len returns the number of members.
func (node *GroupNode) Len() int { return len(node.nodes) }

func (node *GroupNode) children() []Node { return node.nodes }

func (node *GroupNode) lower(counter *Counter) (instrs []asm.Instr, err error) {
	err = node.consume(NODE_GROUP)
	if err != nil {
		return
	}

	for _, member := range node.nodes {
		var sub []asm.Instr
		sub, err = lower(counter, member)
		if err != nil {
			return
		}
		instrs = append(instrs, sub...)
	}

	node.nodes = nil
	return
}

// CallNode lowers its setup nodes, then calls a subroutine.
type CallNode struct {
	oneShot
	setup  []Node
	target string
}

// Call returns a node that lowers setup, then emits 'call target'.
func Call(target string, setup ...Node) *CallNode {
	return &CallNode{target: target, setup: slices.Clone(setup)}
}

func (node *CallNode) Kind() NodeKind { return NODE_CALL }

// Target returns the subroutine called.
func (node *CallNode) Target() string { return node.target }

func (node *CallNode) children() []Node { return node.setup }

func (node *CallNode) lower(counter *Counter) (instrs []asm.Instr, err error) {
	err = node.consume(NODE_CALL)
	if err != nil {
		return
	}

	for _, setup := range node.setup {
		var sub []asm.Instr
		sub, err = lower(counter, setup)
		if err != nil {
			return
		}
		instrs = append(instrs, sub...)
	}

	instrs = append(instrs, asm.Call(node.target))
	node.setup = nil
	return
}
