package main

import (
	"os"

	"github.com/arthur-debert/buildscripts/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.PrintError(os.Stderr, err))
	}
}
