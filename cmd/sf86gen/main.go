package main

import (
	"os"

	"github.com/clearform/sf86gen/cmd/sf86gen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
