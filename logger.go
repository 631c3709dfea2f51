package blitpass

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for blitpass and its sub-packages.
// By default, blitpass produces no log output. Pass nil to restore the
// default silent behavior.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
//
// Log levels used by blitpass:
//   - [slog.LevelDebug]: internal diagnostics (worker counts, pipeline state)
//   - [slog.LevelInfo]: lifecycle events (GPU adapter selected)
//   - [slog.LevelWarn]: non-fatal issues (resource release errors)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	blitpass.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by blitpass. Sub-packages
// (backend/native) call this to share the same logger configuration
// without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
