package main

import (
	"os"

	"github.com/checkbook-dev/checkbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
