// Package flow lowers structured control flow into SM83 instructions.
//
// A program is described as a tree of Nodes: raw instruction sequences,
// groups of nodes, subroutine calls, and conditional blocks. Lower walks the
// tree depth-first, threading a single Counter through every conditional
// block so that the local labels each block generates are unique for the
// lifetime of the counter.
//
// Comparisons leave Zero set iff left == right, and Carry set iff
// left < right, with both operands treated as unsigned 8-bit values.
// LE and GT have no single-flag test, and are lowered as two sequential
// flag checks.
//
// Every node may be lowered once; lowering it again returns ErrConsumed.
package flow
