// Package debug renders a compiled chunk as human-readable bytecode
// text, grounded on clox's debug.c/debug.h and nilan's
// Compiler.DiassembleBytecode, but working entirely off compiler.Chunk's
// public surface rather than a privileged view into the compiler — it
// is not a collaborator the core compiler/vm packages depend on.
package debug

import (
	"fmt"
	"strings"

	"loxlite/compiler"
)

// DisassembleChunk renders every instruction in chunk under a name
// header, one line per instruction (clox's disassembleChunk).
func DisassembleChunk(chunk *compiler.Chunk, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", name)

	offset := 0
	for offset < len(chunk.Code) {
		offset = disassembleInstruction(&b, chunk, offset)
	}
	return b.String()
}

// disassembleInstruction writes the instruction at offset and returns
// the offset of the next instruction, clox's disassembleInstruction.
func disassembleInstruction(b *strings.Builder, chunk *compiler.Chunk, offset int) int {
	fmt.Fprintf(b, "%04d ", offset)

	if offset > 0 && chunk.Line(offset) == chunk.Line(offset-1) {
		fmt.Fprint(b, "   | ")
	} else {
		fmt.Fprintf(b, "%4d ", chunk.Line(offset))
	}

	op := compiler.OpCode(chunk.Code[offset])
	if op == compiler.OpConstant {
		return constantInstruction(b, chunk, op, offset)
	}
	return simpleInstruction(b, op, offset)
}

func simpleInstruction(b *strings.Builder, op compiler.OpCode, offset int) int {
	fmt.Fprintf(b, "%s\n", op)
	return offset + 1
}

func constantInstruction(b *strings.Builder, chunk *compiler.Chunk, op compiler.OpCode, offset int) int {
	index := chunk.Code[offset+1]
	fmt.Fprintf(b, "%-16s %4d '%s'\n", op, index, chunk.Constants[index])
	return offset + 2
}
