package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/cxform/pkg/config"
)

// ErrNoRulesFile is returned when no rules file exists in the working
// directory or any of its ancestors.
var ErrNoRulesFile = errors.New("no rules file found")

// Discover resolves the rules file to load. An explicit path is used as-is
// and must exist; otherwise the default file name is searched upward from
// workDir, so a repository-root rules file applies in subdirectories.
func Discover(workDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("rules file %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, config.DefaultRulesFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: searched for %s from %s upward",
				ErrNoRulesFile, config.DefaultRulesFile, workDir)
		}
		dir = parent
	}
}
