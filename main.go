package main

import (
	"os"

	"github.com/thenoetrevino/boards/cmd"
	"github.com/thenoetrevino/boards/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
