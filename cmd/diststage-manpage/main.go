package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/diststage/diststage/cmd/diststage/commands"
	"github.com/diststage/diststage/internal/version"
)

func main() {
	rootCmd := commands.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DISTSTAGE",
		Section: "1",
		Source:  "diststage " + version.Version,
		Manual:  "diststage manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
