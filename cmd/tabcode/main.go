// Package main provides the tabcode CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/tabcode/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
