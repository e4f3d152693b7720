package gstyle

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. It is the only piece of package
// state that may be touched from goroutines other than the UI goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the style engine.
// By default, gstyle produces no log output.
// Pass nil to restore the default silent behavior.
//
// Log levels used by gstyle:
//   - [slog.LevelDebug]: cache hits and misses, area recomputation, pool evictions
//   - [slog.LevelWarn]: failing painters and recovered render steps
//
// Example:
//
//	gstyle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gstyle.
// Sub-packages (styledoc, cmd/gstyle) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
