package compiler

import (
	"testing"

	"loxlite/value"
)

func TestWriteByteKeepsCodeAndLinesParallel(t *testing.T) {
	c := NewChunk()
	c.WriteByte(byte(OpConstant), 1)
	c.WriteByte(0, 1)
	c.WriteByte(byte(OpReturn), 2)

	if len(c.Code) != len(c.Lines) {
		t.Fatalf("Code and Lines diverged: %d vs %d", len(c.Code), len(c.Lines))
	}
	want := []int{1, 1, 2}
	for i, line := range want {
		if c.Line(i) != line {
			t.Errorf("Line(%d) = %d, want %d", i, c.Line(i), line)
		}
	}
}

func TestAddConstantReturnsIndex(t *testing.T) {
	c := NewChunk()
	i0 := c.AddConstant(value.Number(1))
	i1 := c.AddConstant(value.Number(2))
	if i0 != 0 || i1 != 1 {
		t.Errorf("AddConstant indices = (%d, %d), want (0, 1)", i0, i1)
	}
	if c.Constants[i0].Number != 1 || c.Constants[i1].Number != 2 {
		t.Errorf("constant pool contents wrong: %v", c.Constants)
	}
}
