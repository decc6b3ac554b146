// Package runner orchestrates transforming a batch of files with one shared
// rule list. Files are processed strictly one after another: each gets its
// own translation unit, and a fatal error on one file is recorded in its
// outcome without disturbing the rest of the batch.
package runner

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/fsutil"
	"github.com/yaklabco/cxform/pkg/transform"
)

// Runner applies a configured engine to file pairs.
type Runner struct {
	provider cppast.Provider
	rules    []transform.Rule
	logger   *log.Logger
}

// New creates a Runner.
func New(provider cppast.Provider, rules []transform.Rule, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{provider: provider, rules: rules, logger: logger}
}

// Run processes every file pair in order and returns the aggregate result.
// The error return is reserved for context cancellation; per-file failures
// land in the corresponding FileOutcome.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}

	for _, pair := range opts.Pairs {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run cancelled: %w", err)
		}

		outcome := r.processFile(ctx, pair, opts)
		result.accumulate(outcome)
	}

	return result, nil
}

// processFile transforms one file in isolation. A fresh engine per file keeps
// rule state (there is none beyond configuration) and unit state from
// leaking across files.
func (r *Runner) processFile(ctx context.Context, pair FilePair, opts Options) FileOutcome {
	outcome := FileOutcome{Input: pair.Input, Output: pair.Output}

	if opts.Backup {
		created, err := fsutil.CreateBackup(ctx, pair.Output)
		if err != nil {
			outcome.Error = fmt.Errorf("backup %s: %w", pair.Output, err)
			return outcome
		}
		if created {
			r.logger.Debug("created backup", "path", fsutil.BackupPath(pair.Output))
		}
	}

	engine := transform.NewEngine(r.provider, r.rules)
	engine.SetLogger(r.logger)

	report, err := engine.TransformFileArgs(ctx, pair.Input, pair.Output, opts.CompilerArgs)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Report = report
	return outcome
}
