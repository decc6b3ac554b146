package transform

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/edit"
	"github.com/yaklabco/cxform/pkg/unit"
)

// Engine runs an ordered rule list against translation units. Rules run
// strictly in declared order; each Run completes before the next begins, so
// the pending-replacement list has a single writer by construction.
type Engine struct {
	provider cppast.Provider
	rules    []Rule
	logger   *log.Logger
}

// NewEngine creates an engine for the given provider and rule list.
func NewEngine(provider cppast.Provider, rules []Rule) *Engine {
	return &Engine{
		provider: provider,
		rules:    rules,
		logger:   log.Default(),
	}
}

// SetLogger replaces the engine's logger, which is also handed to each unit
// for overlap warnings.
func (e *Engine) SetLogger(logger *log.Logger) {
	e.logger = logger
}

// FileReport summarizes one transformed file.
type FileReport struct {
	// Input and Output are the source and destination paths.
	Input  string
	Output string

	// Replacements is the total number of pending replacements the rules
	// produced, across all parse generations.
	Replacements int

	// Diff is the unified diff between the first-generation input and the
	// final output. Nil when the output is byte-identical to the input.
	Diff *edit.Diff
}

// TransformFile parses the input file, runs the configured rules in order,
// and saves the result to the output path. A rule returning a ShapeError (or
// any other error) aborts the file: no output is written.
func (e *Engine) TransformFile(ctx context.Context, inputPath, outputPath string) (*FileReport, error) {
	u, err := unit.New(e.provider, inputPath, nil)
	if err != nil {
		return nil, err
	}
	return e.transform(ctx, u, inputPath, outputPath)
}

// TransformFileArgs is TransformFile with explicit compiler arguments for the
// provider.
func (e *Engine) TransformFileArgs(ctx context.Context, inputPath, outputPath string, args []string) (*FileReport, error) {
	u, err := unit.New(e.provider, inputPath, args)
	if err != nil {
		return nil, err
	}
	return e.transform(ctx, u, inputPath, outputPath)
}

// TransformContent runs the rules against in-memory content and returns the
// materialized result without touching the filesystem.
func (e *Engine) TransformContent(path string, content []byte, args []string) ([]byte, *FileReport, error) {
	u, err := unit.NewFromContent(e.provider, path, content, args)
	if err != nil {
		return nil, nil, err
	}
	u.Logger = e.logger

	report := &FileReport{Input: path, Output: path}
	if err := e.runRules(u, report); err != nil {
		return nil, nil, err
	}

	out := u.Materialize()
	report.Diff = edit.GenerateDiff(path, content, out)
	return out, report, nil
}

func (e *Engine) transform(ctx context.Context, u *unit.Unit, inputPath, outputPath string) (*FileReport, error) {
	u.Logger = e.logger
	original := u.Content

	report := &FileReport{Input: inputPath, Output: outputPath}
	if err := e.runRules(u, report); err != nil {
		return nil, err
	}

	if err := u.Save(ctx, outputPath); err != nil {
		return nil, err
	}

	report.Diff = edit.GenerateDiff(inputPath, original, u.Materialize())
	return report, nil
}

func (e *Engine) runRules(u *unit.Unit, report *FileReport) error {
	for _, rule := range e.rules {
		before := u.Pending()
		e.logger.Debug("running rule", "rule", rule.Name(), "path", u.Path)

		if err := rule.Run(u); err != nil {
			return fmt.Errorf("run rule %s on %s: %w", rule.Name(), u.Path, err)
		}

		added := u.Pending() - before
		if added > 0 {
			e.logger.Debug("rule produced replacements", "rule", rule.Name(), "count", added)
		}
		report.Replacements += max(added, 0)
	}
	return nil
}
