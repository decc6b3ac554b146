package logging

// Field name constants shared by all log call sites.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldRulesFile    = "rules_file"
	FieldCompilerArgs = "compiler_args"
	FieldBackup       = "backup"

	// Rule fields.
	FieldRule  = "rule"
	FieldLine  = "line"
	FieldCount = "count"
	FieldRange = "range"

	// Statistics fields.
	FieldFilesProcessed   = "files_processed"
	FieldFilesFailed      = "files_failed"
	FieldReplacementsMade = "replacements_made"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
