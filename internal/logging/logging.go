// Package logging builds the application logger. The terminal belongs to the
// TUI, so everything goes to a rotated file unless a writer is supplied.
package logging

import (
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Waddenn/filmoria/internal/config"
)

type Options struct {
	Level      string
	FilePath   string // empty = <cache dir>/filmoria.log
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Output     io.Writer // overrides FilePath when set
}

func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if opts.Output != nil {
		log.SetOutput(opts.Output)
		return log, nil
	}

	path := opts.FilePath
	if path == "" {
		dir, err := config.CacheDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "filmoria.log")
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	maxBackups := opts.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}
	maxAge := opts.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 14
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	})
	return log, nil
}

// FromConfig builds the logger described by the [log] section.
func FromConfig(cfg config.LogConfig) (*logrus.Logger, error) {
	return New(Options{Level: cfg.Level, FilePath: cfg.File})
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that were not handed a logger.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// OrDiscard returns log, or a discarding logger when log is nil.
func OrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return Discard()
	}
	return log
}
