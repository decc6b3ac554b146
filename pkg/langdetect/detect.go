// Package langdetect guards the transform entry point against non-C++ input.
// It uses go-enry to detect the language of a source file from its name and
// content, so feeding the engine a Python script or a Markdown file produces
// a warning up front instead of a confusing no-op transform.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// cxxLanguages are the enry language names accepted as transformable input.
//
//nolint:gochecknoglobals // Read-only lookup table.
var cxxLanguages = map[string]bool{
	"C":   true,
	"C++": true,
	// Objective-C is what enry often reports for lone .h headers.
	"Objective-C": true,
}

// headerExtensions short-circuit detection: these are always treated as C++.
//
//nolint:gochecknoglobals // Read-only lookup table.
var headerExtensions = map[string]bool{
	".h": true, ".hh": true, ".hpp": true, ".hxx": true, ".h++": true,
	".ipp": true, ".inc": true, ".inl": true, ".tcc": true,
	".c": true, ".cc": true, ".cpp": true, ".cxx": true, ".c++": true,
}

// Detect returns the detected language name for a file, or "" when detection
// is inconclusive.
func Detect(path string, content []byte) string {
	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return lang
	}
	langs := enry.GetLanguages(filepath.Base(path), content)
	if len(langs) > 0 {
		return langs[0]
	}
	return ""
}

// IsCxxSource reports whether the file looks like C or C++ source. Unknown
// content with a recognized C/C++ extension passes; a confidently detected
// foreign language fails.
func IsCxxSource(path string, content []byte) bool {
	if headerExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}
	lang := Detect(path, content)
	if lang == "" {
		// Inconclusive detection is not grounds for refusing the file.
		return true
	}
	return cxxLanguages[lang]
}
