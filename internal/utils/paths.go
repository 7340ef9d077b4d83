package utils

import (
	"errors"
	"os"
	"path/filepath"
)

// ProjectRoot returns the directory holding go.mod, searching upwards from
// the working directory.
func ProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("could not find project root (no go.mod file found in parent directories)")
		}
		dir = parent
	}
}
