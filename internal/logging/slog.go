// Package logging adapts log/slog to the ndspace Logger interface.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/ndspace/types"
)

// SlogLogger forwards ndspace log calls to a *slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

var _ types.Logger = (*SlogLogger)(nil)

// NewSlog wraps an existing slog logger.
//
// A nil logger falls back to slog.Default().
//
// Example:
//
//	handler := slog.NewJSONHandler(os.Stderr, nil)
//	logger := logging.NewSlog(slog.New(handler))
//	results, err := parallel.ForEach(ctx, plan, ndspace.RowMajor, fn, parallel.WithLogger(logger))
func NewSlog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// NewSlogText builds a text logger writing to w at the given level.
//
// Parameters:
//   - w: Destination writer (os.Stderr if nil)
//   - level: Minimum level that is emitted
//
// Returns:
//   - *SlogLogger: Logger with a slog.TextHandler
func NewSlogText(w io.Writer, level slog.Level) *SlogLogger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return &SlogLogger{logger: slog.New(handler)}
}

// NewSlogDefault wraps slog.Default().
func NewSlogDefault() *SlogLogger {
	return &SlogLogger{logger: slog.Default()}
}

// With returns a logger that adds keysAndValues to every record.
func (l *SlogLogger) With(keysAndValues ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(keysAndValues...)}
}

// Debug logs at debug level.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs at info level.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs at warn level.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs at error level.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs at error level and terminates the process with exit code 1.
//
// slog has no fatal level, so the record carries level=ERROR.
func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
	os.Exit(1) //nolint:revive // Fatal must exit
}
