package flow

import (
	"github.com/ezrec/gbasm/asm"
)

// ComparisonOp is an unsigned 8-bit comparison between left and right.
type ComparisonOp int

//go:generate go tool stringer -linecomment -type=ComparisonOp
const (
	CMP_EQ = ComparisonOp(0) // eq
	CMP_NE = ComparisonOp(1) // ne
	CMP_LT = ComparisonOp(2) // lt
	CMP_GE = ComparisonOp(3) // ge
	CMP_LE = ComparisonOp(4) // le
	CMP_GT = ComparisonOp(5) // gt
)

// ComparisonOps lists every comparison operator.
var ComparisonOps = [...]ComparisonOp{CMP_EQ, CMP_NE, CMP_LT, CMP_GE, CMP_LE, CMP_GT}

// Valid returns true for the defined operators.
func (op ComparisonOp) Valid() bool {
	return op >= CMP_EQ && op <= CMP_GT
}

// Holds evaluates the comparison.
func (op ComparisonOp) Holds(left, right uint8) bool {
	switch op {
	case CMP_EQ:
		return left == right
	case CMP_NE:
		return left != right
	case CMP_LT:
		return left < right
	case CMP_GE:
		return left >= right
	case CMP_LE:
		return left <= right
	case CMP_GT:
		return left > right
	}

	return false
}

// Compound returns true if the operator needs two flag checks.
func (op ComparisonOp) Compound() bool {
	return op == CMP_LE || op == CMP_GT
}

// Cond returns the flag condition that holds exactly when the comparison
// holds. Compound operators have no such condition, and return COND_ALWAYS.
func (op ComparisonOp) Cond() asm.Cond {
	switch op {
	case CMP_EQ:
		return asm.COND_Z
	case CMP_NE:
		return asm.COND_NZ
	case CMP_LT:
		return asm.COND_C
	case CMP_GE:
		return asm.COND_NC
	}

	return asm.COND_ALWAYS
}

// Skip returns the flag condition that bypasses the then branch.
// Compound operators return COND_ALWAYS.
func (op ComparisonOp) Skip() asm.Cond {
	return op.Cond().Negate()
}

// Negate returns the operator that holds exactly when op does not.
func (op ComparisonOp) Negate() ComparisonOp {
	switch op {
	case CMP_EQ:
		return CMP_NE
	case CMP_NE:
		return CMP_EQ
	case CMP_LT:
		return CMP_GE
	case CMP_GE:
		return CMP_LT
	case CMP_LE:
		return CMP_GT
	case CMP_GT:
		return CMP_LE
	}

	return op
}
