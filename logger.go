package venn

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// CategoryKey is the log attribute key that classifies warnings.
const CategoryKey = "category"

// CategoryDeprecation marks warnings about deprecated API use.
const CategoryDeprecation = "deprecation"

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for venn and its sub-packages.
// By default, venn produces no log output. Pass nil to restore that.
//
// Log levels used by venn:
//   - [slog.LevelDebug]: verification progress (regions and points checked)
//   - [slog.LevelInfo]: notebook and fixture lifecycle
//   - [slog.LevelWarn]: deprecated API use, tagged with category=deprecation
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by venn.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func warnDeprecated(old, replacement string) {
	Logger().Warn(old+" is deprecated; use "+replacement,
		slog.String(CategoryKey, CategoryDeprecation))
}
