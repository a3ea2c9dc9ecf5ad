package main

import (
	"os"

	"github.com/credlens/statement-parser/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
