package compiler

import "loxlite/value"

// maxConstants is the ceiling spec.md §3 places on a chunk's constant
// pool: OP_CONSTANT's operand is one byte, so no chunk can reference
// more than 256 distinct constants.
const maxConstants = 256

// Chunk is a compiled unit of bytecode: an append-only instruction
// stream, a line number parallel to it byte-for-byte, and a constant
// pool indexed by OP_CONSTANT's one-byte operand. This is clox's
// Chunk struct; Code/Lines/Constants grow via Go's append, so their
// capacities follow the Go runtime's growth rule. This package keeps
// no capacity of its own: growth does not start at 8 for every slice
// (Lines and Constants start at 1), and it is not an exact doubling
// once a slice is large.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []value.Value
}

// NewChunk returns an empty chunk ready to be written into.
func NewChunk() *Chunk {
	return &Chunk{}
}

// WriteByte appends one instruction byte (opcode or operand) and its
// source line, keeping Code and Lines parallel (spec.md §8 invariant 2).
func (c *Chunk) WriteByte(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// AddConstant appends v to the constant pool and returns its index.
// Callers must check the chunk hasn't already reached maxConstants
// before emitting an OP_CONSTANT that references the result — see
// Compiler.makeConstant, which is the sole caller and owns that check.
func (c *Chunk) AddConstant(v value.Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// Line returns the source line responsible for the byte at offset,
// trivial parallel-array lookup per spec.md §4.3.
func (c *Chunk) Line(offset int) int {
	return c.Lines[offset]
}
