// ABOUTME: gridtui entry point: runs the command tree and reports errors on stderr
// ABOUTME: Exit status is 1 for any command error

package main

import (
	"fmt"
	"os"

	// termfix must initialize before bubbletea so no OSC color queries
	// are sent to the terminal.
	_ "github.com/mauromedda/gridtui/internal/termfix"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
