// Package logger implements ports.Logger on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"

	"go.trai.ch/gimmisn/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	jsonMode bool
}

// NewWithWriter creates a Logger writing to w, as JSON when jsonMode is set.
// A nil writer selects stderr.
func NewWithWriter(w io.Writer, jsonMode bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler), jsonMode: jsonMode}
}

var _ ports.Logger = (*Logger)(nil)

// Info logs an informational message with key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning with key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error. In pretty mode the error chain is printed as a
// "Caused by" hierarchy including zerr metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error())
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
