// Package asm implements the instruction model and text renderer for SM83
// (Game Boy) assembly in the RGBDS dialect.
//
// Instructions are immutable tagged values (Instr) built from an Op and a
// list of Operands. An Asm accumulates instructions into named chunks, and
// renders the chunks in one fixed order regardless of the order in which
// instructions were appended.
//
// Equates provides a table of compile-time constants whose values are
// expressions evaluated when they are defined.
package asm
