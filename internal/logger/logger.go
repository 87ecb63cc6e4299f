// Package logger configures the structured logger used across callboard.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger is a logrus entry carrying the service field.
type Logger struct {
	*logrus.Entry
}

// Options controls where and how much is logged.
type Options struct {
	Level  string
	Output io.Writer
}

// New builds a logger writing to opts.Output (stderr when nil).
func New(opts Options) *Logger {
	base := logrus.New()

	// Local env = pretty console; others = JSON
	env := os.Getenv("ENVIRONMENT")
	if env == "" || env == "local" {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	base.SetOutput(out)
	base.SetLevel(parseLevel(opts.Level))

	return &Logger{Entry: logrus.NewEntry(base).WithField("service", "callboard")}
}

// OpenFile builds a logger appending to path. The terminal belongs to the
// dashboard while it runs, so interactive sessions log here.
func OpenFile(path, level string) (*Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(Options{Level: level, Output: f}), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(Options{Output: io.Discard})
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithPoll tags an entry with the poll cycle it belongs to.
func (l *Logger) WithPoll(id uuid.UUID, seq int) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"poll_id": id.String(),
		"seq":     seq,
	})
}

// WithError standardizes error logging
func (l *Logger) WithError(err error) *logrus.Entry {
	if err == nil {
		return l.Entry
	}
	return l.Entry.WithField("error", err.Error())
}
