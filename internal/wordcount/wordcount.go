package wordcount

import (
	"github.com/sirupsen/logrus"

	"github.com/IgorBayerl/wordcount/internal/counter"
	"github.com/IgorBayerl/wordcount/internal/filesystem"
	"github.com/IgorBayerl/wordcount/internal/logging"
	"github.com/IgorBayerl/wordcount/internal/reporter"
	"github.com/IgorBayerl/wordcount/internal/tokenizer"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// RunResult is the outcome of one invocation: the process exit code and the
// text to print on standard output.
type RunResult struct {
	Code    int
	Message string
}

// Runner counts the words of one file and renders the result.
type Runner struct {
	source   filesystem.FileSource
	reporter reporter.Reporter
	logger   *logrus.Logger
}

// NewRunner wires a runner. A nil logger discards all diagnostics.
func NewRunner(source filesystem.FileSource, rep reporter.Reporter, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{source: source, reporter: rep, logger: logger}
}

// Run never returns an error: every failure becomes a RunResult with
// ExitFailure and the failure's own message, and no partial report.
func (r *Runner) Run(path string) RunResult {
	log := r.logger.WithField("path", path)
	log.Debug("Counting words")

	counts, err := CountFile(path, r.source)
	if err != nil {
		log.WithError(err).Info("Word count failed")
		return RunResult{Code: ExitFailure, Message: err.Error()}
	}
	log.WithFields(logrus.Fields{
		"distinct": counts.Len(),
		"total":    counts.Total(),
	}).Debug("Counted words")

	out, err := r.reporter.Format(counts.Entries())
	if err != nil {
		log.WithError(err).WithField("format", r.reporter.Name()).Info("Report formatting failed")
		return RunResult{Code: ExitFailure, Message: err.Error()}
	}
	return RunResult{Code: ExitSuccess, Message: out}
}

// CountFile opens path through source and counts every word of every line.
// The reader is closed before CountFile returns, whatever the outcome.
func CountFile(path string, source filesystem.FileSource) (*counter.CountMap, error) {
	reader, err := source.OpenText(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	counts := counter.New()
	for line := range reader.Lines() {
		counts.Accumulate(tokenizer.Tokenize(line))
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
