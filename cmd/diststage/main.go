package main

import (
	"os"

	"github.com/diststage/diststage/cmd/diststage/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
