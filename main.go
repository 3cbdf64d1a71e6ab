package main

import (
	"os"

	"github.com/rlemos/provinha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
