package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/IgorBayerl/wordcount/internal/filesystem"
	"github.com/IgorBayerl/wordcount/internal/logging"
	"github.com/IgorBayerl/wordcount/internal/reporter"
	"github.com/IgorBayerl/wordcount/internal/runconfig"
	"github.com/IgorBayerl/wordcount/internal/wordcount"

	// Register the available report formats.
	_ "github.com/IgorBayerl/wordcount/internal/reporter/htmlreport"
	_ "github.com/IgorBayerl/wordcount/internal/reporter/tablereport"
	_ "github.com/IgorBayerl/wordcount/internal/reporter/textreport"
)

func main() {
	os.Exit(run(os.Args[1:], filesystem.OSFileSource{}, os.Stdout, os.Stderr))
}

// run is main without the process exit, so the command line contract can be tested.
func run(args []string, source filesystem.FileSource, stdout, stderr io.Writer) int {
	cfg, err := runconfig.Parse(args, stderr)
	if err != nil {
		var usageErr *wordcount.UsageError
		switch {
		case errors.As(err, &usageErr):
			fmt.Fprintln(stdout, usageErr.Error())
		case errors.Is(err, flag.ErrHelp):
			return wordcount.ExitSuccess
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return wordcount.ExitFailure
	}

	rep, err := reporter.ForFormat(cfg.ReportFormat())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return wordcount.ExitFailure
	}
	logger := logging.NewLogger(cfg.VerbosityLevel(), stderr)

	result := wordcount.NewRunner(source, rep, logger).Run(cfg.InputFile())
	fmt.Fprint(stdout, result.Message)
	return result.Code
}
