package main

import (
	"os"

	"kembang/cmd/kembang/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
