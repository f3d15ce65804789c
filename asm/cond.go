package asm

// Cond is a branch condition tested against the Zero and Carry flags.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_ALWAYS = Cond(0) // always
	COND_Z      = Cond(1) // z
	COND_NZ     = Cond(2) // nz
	COND_C      = Cond(3) // c
	COND_NC     = Cond(4) // nc
)

// Negate returns the condition that holds exactly when cond does not.
// COND_ALWAYS has no negation and is returned unchanged.
func (cond Cond) Negate() Cond {
	switch cond {
	case COND_Z:
		return COND_NZ
	case COND_NZ:
		return COND_Z
	case COND_C:
		return COND_NC
	case COND_NC:
		return COND_C
	}

	return cond
}

// Holds evaluates the condition against a flag state.
func (cond Cond) Holds(zero, carry bool) bool {
	switch cond {
	case COND_Z:
		return zero
	case COND_NZ:
		return !zero
	case COND_C:
		return carry
	case COND_NC:
		return !carry
	}

	return true
}
