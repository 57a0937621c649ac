package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/helmcode/problem-summary/pkg/config"
	"github.com/helmcode/problem-summary/pkg/logger"
	"github.com/helmcode/problem-summary/pkg/report"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	write      bool
	table      bool
	overwrite  bool
	recursive  bool
	mirrors    bool
	verbose    bool
	reportFile string
}

// NewRootCmd builds the problem-summary command tree. cfg supplies the flag
// defaults.
func NewRootCmd(version string, cfg *config.Config) *cobra.Command {
	opts := &summaryOptions{}

	rootCmd := &cobra.Command{
		Use:   "problem-summary FOLDER",
		Short: "Summarize a corpus of programming problems as markdown",
		Long: `problem-summary scans a directory tree for problems (directories holding
enunt/, teste/, editorial/ and surse/) and renders a markdown report of how
complete each one is.

Examples:
  # Print a nested report for the current directory
  problem-summary .

  # Flat table instead of headings
  problem-summary arhiva --table

  # Update README.md below the "# Generated Summary" line
  problem-summary arhiva --write

  # One README.md per directory that leads to problems
  problem-summary arhiva --write --recursive`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args[0], opts)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the report to the report file instead of stdout")
	rootCmd.Flags().BoolVarP(&opts.table, "table", "t", false, "Render a single flat table instead of nested headings")
	rootCmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Replace the report file content instead of merging below the marker")
	rootCmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "Generate one report per directory that leads to problems")
	rootCmd.Flags().BoolVar(&opts.mirrors, "mirrors", cfg.Mirrors, "Include the Mirrors column")
	rootCmd.Flags().StringVar(&opts.reportFile, "report-file", cfg.ReportFile, "Name of the report file used with --write")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	rootCmd.AddCommand(
		newTreeCmd(&opts.verbose),
		newVersionCmd(version),
	)

	return rootCmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "problem-summary version %s\n", version)
		},
	}
}

func runSummary(cmd *cobra.Command, folder string, opts *summaryOptions) error {
	root, err := resolveRoot(folder)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	log := logger.NewConsoleWriter(errOut, opts.verbose)

	s := newSpinner(" Scanning problems...")
	s.Start()

	gen := report.NewGenerator(os.DirFS(root), filepath.Base(root), report.Options{
		Table:   opts.table,
		Mirrors: opts.mirrors,
	}, log)

	targets := []report.Target{{Dir: ".", Generator: gen}}
	if opts.recursive {
		targets, err = gen.Targets()
		if err != nil {
			s.Stop()
			return err
		}
	}

	// everything is rendered before anything is written
	contents := make([]string, len(targets))
	for i, t := range targets {
		contents[i], err = t.Generator.Generate()
		if err != nil {
			s.Stop()
			printError(errOut, fmt.Sprintf("Cannot summarize %s", filepath.Join(root, filepath.FromSlash(t.Dir))))
			return fmt.Errorf("failed to generate report: %w", err)
		}
	}
	s.Stop()

	if opts.recursive && len(targets) == 0 {
		log.Warn("no problems found", logger.F("root", root))
	}

	for i, t := range targets {
		dir := filepath.Join(root, filepath.FromSlash(t.Dir))

		if !opts.write {
			if opts.recursive {
				fmt.Fprintf(cmd.OutOrStdout(), "<!-- %s -->\n", filepath.Join(dir, opts.reportFile))
			}
			fmt.Fprint(cmd.OutOrStdout(), contents[i])
			continue
		}

		target := filepath.Join(dir, opts.reportFile)
		if err := report.Write(target, contents[i], opts.overwrite); err != nil {
			printError(errOut, "Could not save the report")
			return err
		}
		printSuccess(errOut, fmt.Sprintf("Wrote %s", target))
	}

	return nil
}

// resolveRoot turns folder into an absolute, symlink-free directory path
func resolveRoot(folder string) (string, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", folder, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", folder, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", folder, err)
	}
	if !info.IsDir() {
		return "", errors.New(folder + " is not a directory")
	}
	return abs, nil
}

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = suffix
	return s
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "✗ %s\n", msg)
}
