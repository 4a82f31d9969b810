package compiler

import "fmt"

// CompileError is one diagnostic produced while compiling a chunk: a
// line, an optional location ("" for none, " at eof", or " at 'lexeme'"),
// and a message. Error() reproduces spec.md §4.2's wire format exactly
// (`[line N] error[ at 'lexeme'|' at eof']: msg`) rather than the
// teacher's emoji-prefixed style: this diagnostic format is part of
// the core's unchanged behavior, unlike vm.RuntimeError's reporting,
// which SPEC_FULL.md keeps as ambient teacher convention.
type CompileError struct {
	Line    int
	Where   string
	Message string
}

func (e CompileError) Error() string {
	return fmt.Sprintf("[line %d] error%s: %s", e.Line, e.Where, e.Message)
}

// DeveloperError marks an invariant the compiler itself should never
// violate (a parse rule missing from the table, an opcode nobody
// emits). Seeing one means a bug in this package, not in the source
// being compiled.
type DeveloperError struct {
	Message string
}

func (e DeveloperError) Error() string {
	return fmt.Sprintf("🤖 DeveloperError: %s", e.Message)
}
