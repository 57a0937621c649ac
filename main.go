package main

import (
	"fmt"
	"os"

	"github.com/helmcode/problem-summary/cmd"
	"github.com/helmcode/problem-summary/pkg/config"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := cmd.NewRootCmd(version, config.Load())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
