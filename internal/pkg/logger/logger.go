package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
)

// StdLogger implements ports.Logger on top of log/slog.
// Output goes to stderr so stdout stays free for the stdio MCP transport.
type StdLogger struct {
	log *slog.Logger
}

// NewStd creates a StdLogger writing to stderr. Debug records are dropped unless verbose.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing text records to w.
func New(w io.Writer, verbose bool) *StdLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &StdLogger{log: slog.New(handler)}
}

// NewNop returns a logger that discards everything.
func NewNop() *StdLogger {
	return &StdLogger{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, attrs(fields)...)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, attrs(fields)...)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, attrs(fields)...)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.log.Error(msg, args...)
}

// attrs converts the field map into slog attributes in a stable order.
func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
