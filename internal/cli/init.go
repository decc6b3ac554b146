package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cxform/internal/logging"
	"github.com/yaklabco/cxform/pkg/config"
)

// rulesFilePermissions is the file mode for rules files (world-readable).
const rulesFilePermissions = 0644

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter rules file",
		Long: `Create a new ` + config.DefaultRulesFile + ` rules file in the current
directory with every built-in rule documented. Uncomment and adjust the
entries you need; rules run in the order they appear.

Examples:
  cxform init                       Create ` + config.DefaultRulesFile + `
  cxform init --output rename.rules Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing rules file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: "+config.DefaultRulesFile+")")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = config.DefaultRulesFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := os.WriteFile(absPath, []byte(config.RulesTemplate), rulesFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created rules file", logging.FieldPath, outputPath)
	logger.Info("run 'cxform rules' to see all available rules")

	return nil
}
