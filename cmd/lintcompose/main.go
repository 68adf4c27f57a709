// Package main is the entry point for the lintcompose CLI.
//
// All logic lives in the commands package; main only executes the root
// command and turns an error into a non-zero exit status.
package main

import (
	"fmt"
	"os"

	"github.com/JNZader/lintcompose/cmd/lintcompose/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
