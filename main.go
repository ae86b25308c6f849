package main

import (
	"os"

	"github.com/legalops/lexfinder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
