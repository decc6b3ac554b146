package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cxform/internal/logging"
	"github.com/yaklabco/cxform/pkg/transform"
	_ "github.com/yaklabco/cxform/pkg/transform/rules" // Register built-in rules
)

const formatJSON = "json"

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available transformation rules",
		Long: `List the declarative rule names recognized in a rules file.
An entry whose name is not in this list is skipped with an error message
when the file is loaded.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := transform.DefaultRegistry.Names()

			if format == formatJSON {
				return outputRulesJSON(names)
			}

			logger := logging.NewInteractive()
			logger.Info("available rules", logging.FieldCount, len(names))
			for _, name := range names {
				logger.Info(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text, json")

	return cmd
}

func outputRulesJSON(names []string) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(names); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
