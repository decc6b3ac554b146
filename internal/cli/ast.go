package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cxform/internal/ui/pretty"
	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/parser/cpplex"
)

func newASTCommand() *cobra.Command {
	var compArgs []string

	cmd := &cobra.Command{
		Use:   "ast <input>",
		Short: "Dump the parsed structure of a C++ file",
		Long: `Parse a C++ file and print its declaration tree: node kind,
spelling, and source span. Useful for checking what a namespace-matching
rule will see.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args[0], compArgs)
		},
	}

	cmd.Flags().StringArrayVarP(&compArgs, "comp-arg", "c", nil,
		"compiler argument for the parser (repeatable)")

	return cmd
}

func runAST(cmd *cobra.Command, input string, compArgs []string) error {
	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	result, err := cpplex.New().Parse(input, content, compArgs)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	styles := commandStyles(cmd)
	pretty.RenderTree(cmd.OutOrStdout(), result.Root, cppast.BuildLineIndex(content), styles)
	return nil
}
