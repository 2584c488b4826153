package main

import (
	"os"

	"github.com/Makepad-fr/ihft/internal/cli"
)

func main() {
	// Flags, subcommands and output all live in the CLI runner.
	os.Exit(cli.Run(os.Args[1:], cli.Options{}))
}
