package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cxform/internal/ui/pretty"
	"github.com/yaklabco/cxform/pkg/parser/cpplex"
)

func newTokensCommand() *cobra.Command {
	var compArgs []string

	cmd := &cobra.Command{
		Use:   "tokens <input>",
		Short: "Dump the token stream of a C++ file",
		Long: `Tokenize a C++ file and print the token stream: index, kind,
byte range, and spelling. Useful for working out the token patterns a
rules file needs to match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], compArgs)
		},
	}

	cmd.Flags().StringArrayVarP(&compArgs, "comp-arg", "c", nil,
		"compiler argument for the parser (repeatable)")

	return cmd
}

func runTokens(cmd *cobra.Command, input string, compArgs []string) error {
	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	result, err := cpplex.New().Parse(input, content, compArgs)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	styles := commandStyles(cmd)
	pretty.RenderTokens(cmd.OutOrStdout(), result.Tokens, styles)
	return nil
}

// commandStyles resolves pretty styles from the persistent --color flag.
func commandStyles(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.ShouldColorize(colorMode, cmd.OutOrStdout()))
}
