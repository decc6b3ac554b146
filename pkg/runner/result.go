package runner

import "github.com/yaklabco/cxform/pkg/transform"

// FilePair maps one input file to its output destination.
type FilePair struct {
	Input  string
	Output string
}

// Options controls a batch run.
type Options struct {
	// Pairs are the files to transform, processed in order.
	Pairs []FilePair

	// CompilerArgs are passed to the parser provider for every file.
	CompilerArgs []string

	// Backup writes a sidecar backup before overwriting an existing output.
	Backup bool
}

// FileOutcome is the result of transforming one file.
type FileOutcome struct {
	Input  string
	Output string

	// Report is set on success.
	Report *transform.FileReport

	// Error is set when the file failed; the batch continues regardless.
	Error error
}

// Result aggregates a whole batch.
type Result struct {
	// Files holds per-file outcomes in processing order.
	Files []FileOutcome

	// Stats summarizes the batch.
	Stats Stats
}

// Stats are the aggregate counters of a batch run.
type Stats struct {
	FilesProcessed   int
	FilesFailed      int
	ReplacementsMade int
}

// Failed returns true when any file in the batch failed.
func (r *Result) Failed() bool {
	return r.Stats.FilesFailed > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.FilesProcessed++
	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}
	if outcome.Report != nil {
		r.Stats.ReplacementsMade += outcome.Report.Replacements
	}
}
