package main

import (
	"os"

	"github.com/oarkflow/textlab/cmd/textlab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
