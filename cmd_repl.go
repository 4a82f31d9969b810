package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"loxlite/vm"
)

type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive session. Ctrl-D exits.
`
}
func (*replCmd) SetFlags(*flag.FlagSet) {}

// replLineMax mirrors main.c's repl() 1024-byte fgets buffer: a line
// longer than this is truncated rather than read in full.
const replLineMax = 1024

func (*replCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 Failed to start readline: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	m := vm.New()
	defer m.Free()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}

		if len(line) > replLineMax {
			line = line[:replLineMax]
		}

		m.Interpret(line)
	}
}
