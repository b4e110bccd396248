package main

import (
	"os"

	"github.com/abundis28/mintern/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
