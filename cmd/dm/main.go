package main

import (
	"os"

	"github.com/veltraco/dispatch-match-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
