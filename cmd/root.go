// Package cmd implements the CLI commands for ragpipe using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "ragpipe",
	Short: "ragpipe — convert web pages into RAG-ready Markdown records",
	Long: `ragpipe fetches web pages, extracts their article content, converts it to
Markdown, and produces RAG-ready records: semantically chunked text with
heading breadcrumbs, quality metrics, metadata, a code-block inventory, and
deduplication fingerprints.

Usage:
  ragpipe scrape <url> [flags]`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
