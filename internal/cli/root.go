// Package cli provides the Cobra command structure for cxform.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cxform/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cxform command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "cxform",
		Short: "A rule-driven source-to-source transformer for C++ headers",
		Long: `cxform rewrites C++ header files under the control of a declarative
rules file. It tokenizes and parses each input, lets an ordered list of
rules record byte-range replacements against the original text, then
applies them in a single pass and writes the result atomically.

Typical uses are vendoring third-party headers under a renamed namespace,
normalizing include styles, and injecting boilerplate declarations.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newTransformCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newASTCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
