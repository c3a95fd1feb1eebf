// The main file of Callboard.

package main

import (
	"os"
)

// Indicates the current version of Callboard.
var Version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
