package main

import (
	"os"

	"github.com/arthur-debert/gestures/cmd/gestures"
)

func main() {
	rootCmd := gestures.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		gestures.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
