package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/buildscripts/internal/cli"
	"github.com/arthur-debert/buildscripts/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "BUILDSCRIPTS",
		Section: "1",
		Source:  "buildscripts " + version.Version,
		Manual:  "buildscripts manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
