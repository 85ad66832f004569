package main

import (
	"os"

	"github.com/progtools/conplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
