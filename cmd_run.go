package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"loxlite/vm"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Interpret a source file" }
func (*runCmd) Usage() string {
	return `run <path>:
  Interpret a source file as a single program.
`
}
func (*runCmd) SetFlags(*flag.FlagSet) {}

// exit codes per spec.md §6 / main.c: 64 usage, 65 compile error,
// 70 runtime error, 74 I/O error.
const (
	exitUsage        = 64
	exitCompileError = 65
	exitRuntimeError = 70
	exitIOError      = 74
)

func (*runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	m := vm.New()
	defer m.Free()

	switch m.Interpret(string(data)) {
	case vm.InterpretOK:
		return subcommands.ExitSuccess
	case vm.InterpretCompileError:
		return exitCompileError
	case vm.InterpretRuntimeError:
		return exitRuntimeError
	default:
		return subcommands.ExitFailure
	}
}
