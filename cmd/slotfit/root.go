package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/slotfit/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	jsonOut      bool
	pageSizeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "slotfit",
	Short: "Compare how fixed-size slots pack into a memory page",
	Long: `slotfit computes, for a memory page, how many slots of each candidate size
fit, how many bytes each slot leaves for payload after its metadata overhead,
how much of the page is wasted at the tail, and the resulting efficiency.
One table is printed per metadata configuration.

Example:
  slotfit
  slotfit --only C --format markdown
  slotfit --classes balanced --page-size host
  slotfit --config slots.yaml --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Enabled: verbose,
			Writer:  os.Stderr,
			Level:   slog.LevelDebug,
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&pageSizeFlag, "page-size", "", `Page size in bytes, or "host" for the system page size`)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints to stdout
func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
