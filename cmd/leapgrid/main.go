// Package main provides the CLI for LeapGrid.
package main

import (
	"os"

	"github.com/leapstack-labs/leapgrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
