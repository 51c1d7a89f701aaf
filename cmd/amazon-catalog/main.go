// Package main is the entry point for amazon-catalog.
package main

import (
	"os"

	"github.com/donaldgifford/amazon-catalog/cmd/amazon-catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
