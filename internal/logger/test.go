package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/ndspace/types"
)

// TestLogger writes records to a testing.TB and remembers them so tests
// can assert on what a worker logged.
type TestLogger struct {
	tb testing.TB

	mu      sync.Mutex
	entries []string
}

var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger bound to tb.
//
// Example:
//
//	func TestRegion(t *testing.T) {
//	    log := logger.NewTest(t)
//	    _, err := parallel.Region(t.Context(), 4, fn, parallel.WithLogger(log))
//	    require.True(t, log.Contains("region finished"))
//	}
func NewTest(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.record("DEBUG", msg, keysAndValues)
}

func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.record("INFO", msg, keysAndValues)
}

func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.record("WARN", msg, keysAndValues)
}

func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.record("ERROR", msg, keysAndValues)
}

// Fatal records the entry and fails the test immediately.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	line := l.record("FATAL", msg, keysAndValues)
	l.tb.Fatal(line)
}

// Entries returns a copy of every recorded line.
func (l *TestLogger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.entries))
	copy(out, l.entries)

	return out
}

// Contains reports whether any recorded line contains substr.
func (l *TestLogger) Contains(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e, substr) {
			return true
		}
	}

	return false
}

func (l *TestLogger) record(level, msg string, keysAndValues []any) string {
	line := level + ": " + msg + formatKeyValues(keysAndValues)

	l.mu.Lock()
	l.entries = append(l.entries, line)
	l.mu.Unlock()

	l.tb.Log(line)

	return line
}

// formatKeyValues renders pairs as " k=v"; a trailing key gets <missing>.
func formatKeyValues(keysAndValues []any) string {
	var sb strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&sb, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&sb, " %v=<missing>", keysAndValues[i])
		}
	}

	return sb.String()
}
