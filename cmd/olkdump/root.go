package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hshore29/pyolk/internal/obslog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "olkdump",
	Short: "Decode a record-file cache entry and print its property map",
	Long: `olkdump decodes a single record file from the record-file cache and
prints the recovered property map. It exercises the schema-driven decoder
directly and is meant as a developer harness, not a replacement for the
index loader or the export pipeline that would normally sit in front of
a user-facing tool.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := obslog.Init(obslog.Options{Enabled: debug, Level: slog.LevelDebug}); err != nil {
			return fmt.Errorf("failed to init logging: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log decoder diagnostics to ~/.olkdump/logs")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
