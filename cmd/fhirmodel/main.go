// Package main implements the fhirmodel CLI. It lists the types of the model,
// describes their elements and prints a fully populated example of each.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
