package brandmark

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so no record is
// built for fills and saves while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by the root package, logo and icon.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for brandmark and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Records emitted:
//   - "fill" at [slog.LevelDebug]: one per Fill or Stroke, with the element
//     count, color and anti-aliasing mode
//   - "saved png" at [slog.LevelDebug]: one per file written by SavePNG
//   - "logo generated" and "icon generated" at [slog.LevelInfo]: one per
//     finished artifact, with its path and size
//
// Example:
//
//	brandmark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by brandmark.
// Sub-packages (logo/, icon/) call this to share the same configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
