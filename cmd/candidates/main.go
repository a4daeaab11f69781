// Package main provides the candidates command-line tool for normalizing
// candidate records and rendering them as infoboxes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
