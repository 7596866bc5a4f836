package effects

import (
	"log/slog"

	"github.com/gogpu/effects/internal/logging"
)

// SetLogger configures the logger for effects and all its sub-packages.
// By default, effects produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by effects:
//   - [slog.LevelDebug]: blur setup (filter, radius, rectangles) and render regions
//   - [slog.LevelWarn]: non-fatal issues (unknown trailing bytes when decoding)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	effects.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by effects.
// Sub-packages (blur, preset) share the same logger configuration through
// internal/logging without importing this package.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
