// Command loxlite is the language's driver: a repl, run, and
// disassemble subcommand dispatcher built on
// github.com/google/subcommands, following informatter-nilan's
// cmd_*.go + main.go layout — but, unlike that layout, actually
// registering every command with the commander.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&disassembleCmd{}, "")

	// Zero-arg invocation falls back to the repl, per spec.md §6.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "repl")
	}

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
