package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fzipp/gocyclo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxComplexity is the highest cyclomatic complexity allowed for any
// function in the module.
const maxComplexity = 10

func TestProjectRoot(t *testing.T) {
	root, err := ProjectRoot()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "internal", "utils", "paths.go"))
}

func TestCyclomaticComplexity(t *testing.T) {
	root, err := ProjectRoot()
	require.NoError(t, err)

	paths := []string{filepath.Join(root, "cmd"), filepath.Join(root, "internal")}
	stats := gocyclo.Analyze(paths, regexp.MustCompile(`_test\.go$`))
	require.NotEmpty(t, stats, "no functions analyzed")

	for _, s := range stats.SortAndFilter(-1, maxComplexity) {
		t.Errorf("function too complex: %s", s)
	}
}
