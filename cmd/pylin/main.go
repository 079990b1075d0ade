package main

import (
	"os"

	"github.com/pylin-dev/pylin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
