package asm

// Chunk names an output buffer.
type Chunk int

//go:generate go tool stringer -linecomment -type=Chunk
const (
	CHUNK_HEADER    = Chunk(0) // header
	CHUNK_CONSTANTS = Chunk(1) // constants
	CHUNK_INIT      = Chunk(2) // init
	CHUNK_MAIN_LOOP = Chunk(3) // mainloop
	CHUNK_FUNCTIONS = Chunk(4) // functions
	CHUNK_DATA      = Chunk(5) // data
	CHUNK_TILES     = Chunk(6) // tiles
	CHUNK_TILEMAP   = Chunk(7) // tilemap
	CHUNK_MAIN      = Chunk(8) // main
)

// ChunkOrder is the order in which chunks are rendered.
var ChunkOrder = [...]Chunk{
	CHUNK_HEADER,
	CHUNK_CONSTANTS,
	CHUNK_INIT,
	CHUNK_MAIN_LOOP,
	CHUNK_FUNCTIONS,
	CHUNK_DATA,
	CHUNK_TILES,
	CHUNK_TILEMAP,
	CHUNK_MAIN,
}
