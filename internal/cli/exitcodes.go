package cli

import "github.com/yaklabco/cxform/pkg/runner"

// Exit codes for cxform.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitTransformFailed indicates that at least one file could not be
	// transformed.
	ExitTransformFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates rules-file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a batch result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.Failed() {
		return ExitSuccess
	}
	return ExitTransformFailed
}
