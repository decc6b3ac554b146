package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cxform/internal/configloader"
	"github.com/yaklabco/cxform/internal/logging"
	"github.com/yaklabco/cxform/internal/ui/pretty"
	"github.com/yaklabco/cxform/pkg/config"
	"github.com/yaklabco/cxform/pkg/langdetect"
	"github.com/yaklabco/cxform/pkg/parser/cpplex"
	"github.com/yaklabco/cxform/pkg/runner"
	"github.com/yaklabco/cxform/pkg/transform"
	_ "github.com/yaklabco/cxform/pkg/transform/rules" // Register built-in rules
)

// ErrTransformFailed is returned when a file could not be transformed.
var ErrTransformFailed = errors.New("transform failed")

func newTransformCommand() *cobra.Command {
	cfg := config.New()
	var compArgs []string

	cmd := &cobra.Command{
		Use:   "transform <input> <output>",
		Short: "Transform a C++ header using the rules file",
		Long:  transformLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(compArgs) > 0 {
				cfg.CompilerArgs = compArgs
			}
			return runTransform(cmd, args[0], args[1], cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.RulesFile, "rules", "",
		"path to the rules file (default: search for "+config.DefaultRulesFile+" upward)")
	cmd.Flags().StringArrayVarP(&compArgs, "comp-arg", "c", nil,
		"compiler argument for the parser (repeatable)")
	cmd.Flags().BoolVar(&cfg.Backup, "backup", false,
		"write a backup before overwriting an existing output file")

	return cmd
}

const transformLongDescription = `Transform a C++ header file according to the rules file.

Rules run in declared order against the parsed input; their replacements
are applied in one pass over the original bytes and the result is written
to the output path atomically. A rule error aborts the file and leaves the
output untouched.

Examples:
  cxform transform vendor.hpp out/vendor.hpp
  cxform transform in.hpp out.hpp --rules rename.rules
  cxform transform in.hpp out.hpp -c -std=c++17 -c -DFOO=1
  cxform transform in.hpp in.hpp --backup`

func runTransform(cmd *cobra.Command, input, output string, cfg *config.Config) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	rulesPath, err := configloader.Discover(workDir, cfg.RulesFile)
	if err != nil {
		return err
	}

	specs, err := configloader.Load(rulesPath)
	if err != nil {
		return errors.Join(errors.New("failed to load rules file"), err)
	}

	rules, err := configloader.BuildRules(transform.DefaultRegistry, specs, logger)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldRulesFile, rulesPath,
		logging.FieldCount, len(rules),
		logging.FieldCompilerArgs, cfg.CompilerArgs,
		logging.FieldBackup, cfg.Backup,
	)

	// Non-C/C++ input is suspicious but not fatal.
	if content, readErr := os.ReadFile(input); readErr == nil {
		if !langdetect.IsCxxSource(input, content) {
			logger.Warn("input does not look like C or C++ source",
				logging.FieldInput, input,
				"language", langdetect.Detect(input, content),
			)
		}
	}

	batch := runner.New(cpplex.New(), rules, logger)
	result, err := batch.Run(ctx, runner.Options{
		Pairs:        []runner.FilePair{{Input: input, Output: output}},
		CompilerArgs: cfg.CompilerArgs,
		Backup:       cfg.Backup,
	})
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.ShouldColorize(colorMode, cmd.OutOrStdout()))

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		for _, outcome := range result.Files {
			if outcome.Report != nil && outcome.Report.Diff.HasChanges() {
				pretty.RenderDiff(cmd.OutOrStdout(), outcome.Report.Diff, styles)
			}
		}
	}

	pretty.RenderSummary(cmd.OutOrStdout(), result, styles)

	if ExitCodeFromResult(result) != ExitSuccess {
		for _, outcome := range result.Files {
			if outcome.Error != nil {
				logger.Error("file failed",
					logging.FieldInput, outcome.Input,
					logging.FieldError, outcome.Error,
				)
			}
		}
		return ErrTransformFailed
	}

	return nil
}
