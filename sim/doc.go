// Package sim interprets SM83 instruction streams against a two-flag
// machine model.
//
// Only the Zero and Carry flags are modelled. Directives, labels, and
// comments execute as no-ops, and calls to subroutines that are not part of
// the loaded program may be serviced by Go functions registered in
// Machine.Extern.
package sim
