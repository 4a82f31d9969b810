// Package compiler implements the single-pass Pratt parser: it walks
// the token stream once, emitting bytecode directly into a Chunk as it
// goes, with no intermediate AST. This is the same operator-precedence
// table design as clox's compiler.c and nilan's older token-based
// Compiler (compiler.go, pre-ASTCompiler), generalized to the full
// expression grammar and to a Heap-backed Chunk target.
package compiler

import (
	"fmt"
	"os"
	"strconv"

	"loxlite/scanner"
	"loxlite/token"
	"loxlite/value"
)

// Precedence levels, lowest to highest. A parseRule's precedence is
// the precedence of the INFIX operator it handles; parsePrecedence
// keeps consuming infix operators whose rule precedence is at or above
// the minimum it was asked to parse at.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // ! -
	precCall                  // . ()
	precPrimary
)

type parseFunc func(*Compiler)

type parseRule struct {
	prefix     parseFunc
	infix      parseFunc
	precedence precedence
}

// Compiler holds one compilation's state: the token cursor (current +
// previous, clox's two-token lookahead), error flags, the chunk being
// emitted into, and the heap string literals intern into. Unlike
// clox's single global Parser/compilingChunk, both Compiler and Heap
// are explicit values passed in by the caller (vm.Interpret), per
// spec.md §9's replacement for C's module-level globals.
type Compiler struct {
	scanner *scanner.Scanner
	chunk   *Chunk
	heap    *value.Heap

	current  token.Token
	previous token.Token

	hadError  bool
	panicMode bool

	source string
}

// Compile compiles source into chunk, interning any string literals
// into heap. It returns false if any compile error was reported; the
// caller (vm.Interpret) must not run a chunk a failed Compile produced.
func Compile(source string, chunk *Chunk, heap *value.Heap) bool {
	c := &Compiler{
		scanner: scanner.New(source),
		chunk:   chunk,
		heap:    heap,
		source:  source,
	}

	c.advance()
	c.expression()
	c.consume(token.EOF, "Expect end of expression.")
	c.emitReturn()

	return !c.hadError
}

func (c *Compiler) rule(kind token.Kind) parseRule {
	if r, ok := rules[kind]; ok {
		return r
	}
	return parseRule{precedence: precNone}
}

var rules map[token.Kind]parseRule

func init() {
	rules = map[token.Kind]parseRule{
		token.LeftParen:    {prefix: (*Compiler).grouping},
		token.Minus:        {prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: precTerm},
		token.Plus:         {infix: (*Compiler).binary, precedence: precTerm},
		token.Slash:        {infix: (*Compiler).binary, precedence: precFactor},
		token.Star:         {infix: (*Compiler).binary, precedence: precFactor},
		token.Bang:         {prefix: (*Compiler).unary},
		token.BangEqual:    {infix: (*Compiler).binary, precedence: precEquality},
		token.EqualEqual:   {infix: (*Compiler).binary, precedence: precEquality},
		token.Greater:      {infix: (*Compiler).binary, precedence: precComparison},
		token.GreaterEqual: {infix: (*Compiler).binary, precedence: precComparison},
		token.Less:         {infix: (*Compiler).binary, precedence: precComparison},
		token.LessEqual:    {infix: (*Compiler).binary, precedence: precComparison},
		token.Number:       {prefix: (*Compiler).number},
		token.String:       {prefix: (*Compiler).string},
		token.Nil:          {prefix: (*Compiler).literal},
		token.True:         {prefix: (*Compiler).literal},
		token.False:        {prefix: (*Compiler).literal},
	}
}

// --- token stream ---------------------------------------------------

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.ScanToken()
		if c.current.Kind != token.Error {
			break
		}
		c.errorAtCurrent(c.current.Message)
	}
}

func (c *Compiler) consume(kind token.Kind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

func (c *Compiler) check(kind token.Kind) bool {
	return c.current.Kind == kind
}

// --- error reporting --------------------------------------------------

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *Compiler) error(message string) {
	c.errorAt(c.previous, message)
}

// errorAt reports a diagnostic at tok. Once panicMode is set, further
// errors are swallowed until the compiler gives up synchronizing —
// which this grammar never attempts mid-expression, so panicMode never
// clears within one Compile call (spec.md §7/§9: cascading errors from
// one bad token are suppressed, not repeatedly reported).
func (c *Compiler) errorAt(tok token.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	where := ""
	switch {
	case tok.Kind == token.EOF:
		where = " at eof"
	case tok.Kind == token.Error:
	default:
		where = " at '" + tok.Lexeme(c.source) + "'"
	}
	diag := CompileError{Line: tok.Line, Where: where, Message: message}
	fmt.Fprintln(os.Stderr, diag.Error())
}

// --- emission ---------------------------------------------------------

func (c *Compiler) emitByte(b byte) {
	c.chunk.WriteByte(b, c.previous.Line)
}

func (c *Compiler) emitOp(op OpCode) {
	c.emitByte(byte(op))
}

func (c *Compiler) emitOps(op1, op2 OpCode) {
	c.emitOp(op1)
	c.emitOp(op2)
}

func (c *Compiler) emitReturn() {
	c.emitOp(OpReturn)
}

// makeConstant adds v to the chunk's constant pool and returns its
// index as a byte, reporting a compile error instead of overflowing
// the one-byte OP_CONSTANT operand (spec.md §3's 256-constant cap).
func (c *Compiler) makeConstant(v value.Value) byte {
	index := c.chunk.AddConstant(v)
	if index > maxConstants-1 {
		c.error("Too many constants in one chunk.")
		return 0
	}
	return byte(index)
}

func (c *Compiler) emitConstant(v value.Value) {
	c.emitOp(OpConstant)
	c.emitByte(c.makeConstant(v))
}

// --- expression parsing -------------------------------------------------

// parsePrecedence parses and emits one expression with binding power
// at least min, clox's parsePrecedence. It is the one place infix
// operators get chained according to the rule table's precedence.
func (c *Compiler) parsePrecedence(min precedence) {
	c.advance()
	prefix := c.rule(c.previous.Kind).prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}
	prefix(c)

	for min <= c.rule(c.current.Kind).precedence {
		c.advance()
		infix := c.rule(c.previous.Kind).infix
		if infix == nil {
			// A rule with precedence > precNone but no infix function is a
			// bug in the rules table itself, not in the source being
			// compiled: parsePrecedence only loops here because the table
			// says c.previous.Kind binds infix at this precedence.
			panic(DeveloperError{Message: fmt.Sprintf("rules table entry for %s has a precedence but no infix parser", c.previous.Kind)})
		}
		infix(c)
	}
}

// expression parses a full expression at the lowest precedence that
// still excludes bare assignment (this grammar has none, so in
// practice precAssignment is simply "everything").
func (c *Compiler) expression() {
	c.parsePrecedence(precAssignment)
}

func (c *Compiler) grouping() {
	c.expression()
	c.consume(token.RightParen, "Expect ')' after expression.")
}

// unary compiles a unary operator and its operand. spec.md §9 Open
// Question #1: the operand is parsed by recursing into expression()
// rather than parsePrecedence(precUnary), reproducing clox's literal
// choice rather than the tighter binding. The operand therefore
// extends over every binary operator that follows it: "-1 + 2"
// compiles as -(1 + 2) and evaluates to -3.
func (c *Compiler) unary() {
	opKind := c.previous.Kind

	c.expression()

	switch opKind {
	case token.Minus:
		c.emitOp(OpNegate)
	case token.Bang:
		c.emitOp(OpNot)
	}
}

func (c *Compiler) binary() {
	opKind := c.previous.Kind
	rule := c.rule(opKind)
	c.parsePrecedence(rule.precedence + 1)

	switch opKind {
	case token.BangEqual:
		c.emitOps(OpEqual, OpNot)
	case token.EqualEqual:
		c.emitOp(OpEqual)
	case token.Greater:
		c.emitOp(OpGreater)
	case token.GreaterEqual:
		c.emitOps(OpLess, OpNot)
	case token.Less:
		c.emitOp(OpLess)
	case token.LessEqual:
		c.emitOps(OpGreater, OpNot)
	case token.Plus:
		c.emitOp(OpAdd)
	case token.Minus:
		c.emitOp(OpSubtract)
	case token.Star:
		c.emitOp(OpMultiply)
	case token.Slash:
		c.emitOp(OpDivide)
	}
}

func (c *Compiler) literal() {
	switch c.previous.Kind {
	case token.Nil:
		c.emitOp(OpNil)
	case token.True:
		c.emitOp(OpTrue)
	case token.False:
		c.emitOp(OpFalse)
	}
}

func (c *Compiler) number() {
	n, err := strconv.ParseFloat(c.previous.Lexeme(c.source), 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(n))
}

func (c *Compiler) string() {
	lexeme := c.previous.Lexeme(c.source)
	// Strip the surrounding quotes, clox's string()'s copyString(start+1, length-2).
	chars := lexeme[1 : len(lexeme)-1]
	s := c.heap.CopyString(chars)
	c.emitConstant(value.ValueForString(s))
}
