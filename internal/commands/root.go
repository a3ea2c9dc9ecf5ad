// Package commands wires the CLI surface: parse for one-shot file conversion
// and serve for the HTTP API.
package commands

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "statement-parser",
		Short:   "Credit card statement field extraction",
		Long:    "Extracts structured fields from Kotak, ICICI, Axis, HDFC, and SBI credit card statement PDFs.",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
