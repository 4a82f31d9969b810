package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"loxlite/compiler"
	"loxlite/debug"
	"loxlite/value"
)

type disassembleCmd struct {
	dumpPath string
}

func (*disassembleCmd) Name() string     { return "disassemble" }
func (*disassembleCmd) Synopsis() string { return "Print a source file's compiled bytecode" }
func (*disassembleCmd) Usage() string {
	return `disassemble <path>:
  Compile a source file and print its bytecode, without running it.
`
}

func (cmd *disassembleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.dumpPath, "dump", "", "write the disassembly to this file instead of stdout")
}

func (cmd *disassembleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 No source file provided")
		return exitUsage
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 Failed to read file: %v\n", err)
		return exitIOError
	}

	chunk := compiler.NewChunk()
	heap := value.NewHeap()
	if !compiler.Compile(string(data), chunk, heap) {
		return exitCompileError
	}

	out := debug.DisassembleChunk(chunk, args[0])

	if cmd.dumpPath == "" {
		fmt.Print(out)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(cmd.dumpPath, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "💥 Failed to write disassembly: %v\n", err)
		return exitIOError
	}
	return subcommands.ExitSuccess
}
