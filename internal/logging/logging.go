// Package logging builds the structured logrus.Logger every ruleforge
// command shares, configured from plain string flags rather than a
// fuzzer's rotating-file setup: this tool is a one-shot batch job, so a
// single configured writer is all that's needed.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Level mirrors the subset of logrus levels the CLI exposes as a flag.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the logrus formatter.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds the settings a CLI command binds from flags/viper.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // defaults to os.Stderr when nil, set by caller
}

// New builds a configured logger. An unrecognized Level or Format is an
// error naming the bad value, matching the "fail loud on a bad flag"
// policy the rest of the CLI layer follows.
func New(cfg Config) (*logrus.Logger, error) {
	l := logrus.New()
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	}

	level, err := logrus.ParseLevel(string(levelOrDefault(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("unsupported log level %q: %w", cfg.Level, err)
	}
	l.SetLevel(level)

	switch formatOrDefault(cfg.Format) {
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	case FormatText:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}
	return l, nil
}

func levelOrDefault(l Level) Level {
	if l == "" {
		return LevelInfo
	}
	return l
}

func formatOrDefault(f Format) Format {
	if f == "" {
		return FormatText
	}
	return f
}
