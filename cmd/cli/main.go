// Package main is the entry point for the fargate-cost CLI.
package main

import (
	"os"

	"fargate-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
