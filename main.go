// Package main is the entry point for demo-actions.
package main

import (
	"fmt"
	"os"

	"github.com/demo-actions/demo-actions/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
