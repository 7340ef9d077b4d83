package runconfig

import (
	"flag"
	"io"

	"github.com/IgorBayerl/wordcount/internal/logging"
	"github.com/IgorBayerl/wordcount/internal/reporter"
	"github.com/IgorBayerl/wordcount/internal/wordcount"
)

// IRunConfiguration is the configuration of a single word count run.
type IRunConfiguration interface {
	InputFile() string
	ReportFormat() string
	VerbosityLevel() logging.VerbosityLevel
}

// RunConfiguration is a concrete implementation of IRunConfiguration.
type RunConfiguration struct {
	File   string
	Format string
	VLevel logging.VerbosityLevel
}

func (rc *RunConfiguration) InputFile() string                      { return rc.File }
func (rc *RunConfiguration) ReportFormat() string                   { return rc.Format }
func (rc *RunConfiguration) VerbosityLevel() logging.VerbosityLevel { return rc.VLevel }

// NewRunConfiguration is a constructor for RunConfiguration. An empty format
// selects reporter.DefaultFormat.
func NewRunConfiguration(file, format string, verbosity logging.VerbosityLevel) *RunConfiguration {
	if format == "" {
		format = reporter.DefaultFormat
	}
	return &RunConfiguration{File: file, Format: format, VLevel: verbosity}
}

// Parse reads the command line (without the program name). Flag problems are
// described on errOut. A positional argument count other than one yields a
// *wordcount.UsageError before anything else is validated.
func Parse(args []string, errOut io.Writer) (*RunConfiguration, error) {
	fset := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	fset.SetOutput(errOut)
	format := fset.String("format", reporter.DefaultFormat, "Report format (text, html, table)")
	verbosityStr := fset.String("verbosity", logging.Warning.String(), "Logging verbosity level on stderr (Verbose, Info, Warning, Error, Off)")
	fset.Usage = func() {
		io.WriteString(errOut, "Usage: wordcount [-format <format>] [-verbosity <level>] <FILEPATH>\n")
		fset.PrintDefaults()
	}

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if fset.NArg() != 1 {
		return nil, &wordcount.UsageError{Got: fset.NArg()}
	}

	verbosity, err := logging.ParseVerbosity(*verbosityStr)
	if err != nil {
		return nil, err
	}
	if _, err := reporter.ForFormat(*format); err != nil {
		return nil, err
	}
	return NewRunConfiguration(fset.Arg(0), *format, verbosity), nil
}
