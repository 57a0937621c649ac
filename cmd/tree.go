package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/helmcode/problem-summary/pkg/formatter"
	"github.com/helmcode/problem-summary/pkg/logger"
	"github.com/helmcode/problem-summary/pkg/report"
	"github.com/spf13/cobra"
)

func newTreeCmd(verbose *bool) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tree FOLDER",
		Short: "Show the pruned problem tree with per-problem status",
		Long: `Show the directories that lead to problems and the status of every problem.

Examples:
  # Colored tree
  problem-summary tree arhiva

  # Machine-readable output
  problem-summary tree arhiva -o json
  problem-summary tree arhiva -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], outputFormat, *verbose)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runTree(cmd *cobra.Command, folder, outputFormat string, verbose bool) error {
	switch outputFormat {
	case "human", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}

	root, err := resolveRoot(folder)
	if err != nil {
		return err
	}

	log := logger.NewConsoleWriter(cmd.ErrOrStderr(), verbose)

	s := newSpinner(" Scanning problems...")
	s.Start()

	gen := report.NewGenerator(os.DirFS(root), filepath.Base(root), report.Options{Mirrors: true}, log)
	summary, err := gen.Summarize()
	s.Stop()
	if err != nil {
		printError(cmd.ErrOrStderr(), "Scan failed")
		return fmt.Errorf("failed to summarize %s: %w", root, err)
	}

	return formatter.DisplayTree(cmd.OutOrStdout(), summary, outputFormat)
}
