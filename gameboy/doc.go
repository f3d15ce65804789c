// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package gameboy builds complete Game Boy programs.
//
// A Builder collects constants, variables, tiles, sprites, input bindings,
// user routines, and the init and main loop code of a program. Build lowers
// every conditional block with a single label counter, validates every call
// target against the function registry, and renders RGBDS assembly source.
package gameboy
