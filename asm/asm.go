// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/gbasm/internal"
)

// Indent is the prefix written before every rendered instruction.
const Indent = "    "

// Asm accumulates instructions into chunks.
type Asm struct {
	current Chunk
	chunks  [len(ChunkOrder)][]Instr
}

// Chunk selects the chunk that Emit appends to.
func (asm *Asm) Chunk(chunk Chunk) *Asm {
	asm.current = chunk
	return asm
}

// Current returns the chunk that Emit appends to.
func (asm *Asm) Current() Chunk {
	return asm.current
}

// Emit appends instructions to the current chunk.
func (asm *Asm) Emit(instrs ...Instr) *Asm {
	asm.EmitTo(asm.current, instrs...)
	return asm
}

// EmitTo appends instructions to a specific chunk, leaving the current
// chunk unchanged.
func (asm *Asm) EmitTo(chunk Chunk, instrs ...Instr) {
	asm.chunks[chunk] = append(asm.chunks[chunk], instrs...)
}

// Len returns the number of instructions in a chunk.
func (asm *Asm) Len(chunk Chunk) int {
	return len(asm.chunks[chunk])
}

// Chunks iterates over the non-empty chunks, in render order.
func (asm *Asm) Chunks() iter.Seq2[Chunk, []Instr] {
	return func(yield func(Chunk, []Instr) bool) {
		for _, chunk := range ChunkOrder {
			instrs := asm.chunks[chunk]
			if len(instrs) == 0 {
				continue
			}
			if !yield(chunk, instrs) {
				return
			}
		}
	}
}

// Instructions iterates over all instructions, in render order.
func (asm *Asm) Instructions() iter.Seq[Instr] {
	var seqs []iter.Seq[Instr]
	for _, instrs := range asm.Chunks() {
		seqs = append(seqs, slices.Values(instrs))
	}

	return internal.IterSeqConcat(seqs...)
}

// WriteTo writes the rendered chunks to w.
func (asm *Asm) WriteTo(w io.Writer) (n int64, err error) {
	var count int
	for _, line := range asm.lines() {
		count, err = io.WriteString(w, line)
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}

// Render returns the rendered chunks as text.
// Each instruction is one indented line, and non-empty chunks are
// separated by a single blank line.
func (asm *Asm) Render() string {
	var sb strings.Builder
	_, _ = asm.WriteTo(&sb)
	return sb.String()
}

func (asm *Asm) lines() (lines []string) {
	for _, instrs := range asm.Chunks() {
		if len(lines) > 0 {
			lines = append(lines, "\n")
		}
		for _, instr := range instrs {
			lines = append(lines, Indent+instr.String()+"\n")
		}
	}

	return
}
