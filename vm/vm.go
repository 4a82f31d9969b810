// Package vm implements the stack-based bytecode virtual machine: a
// dispatch loop over a compiler.Chunk that operates on tagged
// value.Value operands, backed by a fixed-capacity stack and a Heap
// owning interned strings and the object list.
package vm

import (
	"fmt"
	"os"

	"loxlite/compiler"
	"loxlite/value"
)

// stackMax is clox's STACK_MAX: the operand stack's fixed capacity.
// Overflowing it is a design-precluded bug (spec.md §4.4) rather than a
// condition this package detects at runtime, so push never bounds-checks.
const stackMax = 256

// InterpretResult reports how a VM.Interpret call ended.
type InterpretResult int

const (
	InterpretOK InterpretResult = iota
	InterpretCompileError
	InterpretRuntimeError
)

// VM is the runtime: the chunk it's currently executing (borrowed for
// the duration of Interpret), an instruction pointer into that chunk's
// code, a fixed operand stack, and the Heap that owns every
// heap-allocated object reachable from the stack or the chunk's
// constant pool.
type VM struct {
	chunk *compiler.Chunk
	ip    int

	stack    [stackMax]value.Value
	stackTop int

	heap *value.Heap
}

// New returns a VM with its own heap, ready to interpret source.
func New() *VM {
	return &VM{heap: value.NewHeap()}
}

// Free releases every object this VM's heap has allocated.
func (vm *VM) Free() {
	vm.heap.Free()
}

func (vm *VM) resetStack() {
	vm.stackTop = 0
}

func (vm *VM) push(v value.Value) {
	vm.stack[vm.stackTop] = v
	vm.stackTop++
}

func (vm *VM) pop() value.Value {
	vm.stackTop--
	return vm.stack[vm.stackTop]
}

func (vm *VM) peek(distance int) value.Value {
	return vm.stack[vm.stackTop-1-distance]
}

// Interpret compiles source into a fresh chunk and, on success, runs
// it. A compile failure returns InterpretCompileError without
// touching the stack.
func (vm *VM) Interpret(source string) InterpretResult {
	chunk := compiler.NewChunk()

	if !compiler.Compile(source, chunk, vm.heap) {
		return InterpretCompileError
	}

	vm.chunk = chunk
	vm.ip = 0
	return vm.run()
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

func (vm *VM) readConstant() value.Value {
	return vm.chunk.Constants[vm.readByte()]
}

// run executes the dispatch loop until OP_RETURN or a runtime error.
func (vm *VM) run() InterpretResult {
	for {
		op := compiler.OpCode(vm.readByte())

		switch op {
		case compiler.OpConstant:
			vm.push(vm.readConstant())

		case compiler.OpNil:
			vm.push(value.Nil)
		case compiler.OpTrue:
			vm.push(value.Bool(true))
		case compiler.OpFalse:
			vm.push(value.Bool(false))

		case compiler.OpEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(value.Bool(value.Equal(a, b)))

		case compiler.OpGreater:
			res, ok := vm.numberComparison(func(a, b float64) bool { return a > b })
			if !ok {
				return InterpretRuntimeError
			}
			vm.push(res)

		case compiler.OpLess:
			res, ok := vm.numberComparison(func(a, b float64) bool { return a < b })
			if !ok {
				return InterpretRuntimeError
			}
			vm.push(res)

		case compiler.OpAdd:
			if !vm.add() {
				return InterpretRuntimeError
			}

		case compiler.OpSubtract:
			res, ok := vm.numberBinary(func(a, b float64) float64 { return a - b })
			if !ok {
				return InterpretRuntimeError
			}
			vm.push(res)

		case compiler.OpMultiply:
			res, ok := vm.numberBinary(func(a, b float64) float64 { return a * b })
			if !ok {
				return InterpretRuntimeError
			}
			vm.push(res)

		case compiler.OpDivide:
			res, ok := vm.numberBinary(func(a, b float64) float64 { return a / b })
			if !ok {
				return InterpretRuntimeError
			}
			vm.push(res)

		case compiler.OpNot:
			vm.push(value.Bool(vm.pop().IsFalsey()))

		case compiler.OpNegate:
			if !vm.peek(0).IsNumber() {
				vm.runtimeError("Operand must be a number.")
				return InterpretRuntimeError
			}
			operand := vm.pop()
			vm.push(value.Number(-operand.Number))

		case compiler.OpReturn:
			result := vm.pop()
			fmt.Println(result.String())
			return InterpretOK

		default:
			vm.runtimeError("Unknown opcode.")
			return InterpretRuntimeError
		}
	}
}

func (vm *VM) numberBinary(op func(a, b float64) float64) (value.Value, bool) {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		vm.runtimeError("Operands must be numbers.")
		return value.Nil, false
	}
	b := vm.pop()
	a := vm.pop()
	return value.Number(op(a.Number, b.Number)), true
}

func (vm *VM) numberComparison(op func(a, b float64) bool) (value.Value, bool) {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		vm.runtimeError("Operands must be numbers.")
		return value.Nil, false
	}
	b := vm.pop()
	a := vm.pop()
	return value.Bool(op(a.Number, b.Number)), true
}

// add implements OP_ADD's dual behavior: number + number, or
// string + string concatenation via the heap (spec.md §4.4). Any
// other operand combination is a runtime error.
func (vm *VM) add() bool {
	if vm.peek(0).IsString() && vm.peek(1).IsString() {
		b := vm.pop()
		a := vm.pop()
		concatenated := a.AsString().Chars + b.AsString().Chars
		vm.push(value.ValueForString(vm.heap.TakeString(concatenated)))
		return true
	}
	if vm.peek(0).IsNumber() && vm.peek(1).IsNumber() {
		b := vm.pop()
		a := vm.pop()
		vm.push(value.Number(a.Number + b.Number))
		return true
	}
	vm.runtimeError("Operands must be two numbers or two strings.")
	return false
}

// runtimeError prints msg and the failing instruction's source line,
// then resets the stack (spec.md §4.4/§7: "print msg, then a stack
// trace line [line N] in script ... reset the stack").
func (vm *VM) runtimeError(msg string) {
	line := vm.chunk.Line(vm.ip - 1)
	err := RuntimeError{Message: msg}
	fmt.Fprintln(os.Stderr, err.Error())
	fmt.Fprintf(os.Stderr, "[line %d] in script\n", line)
	vm.resetStack()
}
