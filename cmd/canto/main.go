// Package main is the entry point for the canto CLI.
package main

import (
	"os"

	"github.com/f3rmion/canto/cmd/canto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
