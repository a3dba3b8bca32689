// ABOUTME: Entry point for mediaforge CLI
// ABOUTME: Terminal client for the AI content generation platform

package main

import (
	"fmt"
	"os"

	"github.com/mediaforge/mediaforge-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
