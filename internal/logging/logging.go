package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "Verbose"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Off:
		return "Off"
	default:
		return fmt.Sprintf("VerbosityLevel(%d)", int(v))
	}
}

// ParseVerbosity accepts the level names case-insensitively.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return Verbose, nil
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "off":
		return Off, nil
	}
	return Off, fmt.Errorf("invalid verbosity level '%s'. Valid levels are Verbose, Info, Warning, Error, Off", s)
}

// NewLogger returns a logger writing plain text to out at the given verbosity.
// Off discards everything.
func NewLogger(level VerbosityLevel, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	if level == Off {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return logger
	}
	logger.SetOutput(out)
	logger.SetLevel(toLogrusLevel(level))
	return logger
}

// Discard returns a logger that drops every message.
func Discard() *logrus.Logger {
	return NewLogger(Off, io.Discard)
}

func toLogrusLevel(level VerbosityLevel) logrus.Level {
	switch level {
	case Verbose:
		return logrus.DebugLevel
	case Info:
		return logrus.InfoLevel
	case Warning:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
