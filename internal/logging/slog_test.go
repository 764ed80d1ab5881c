package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ndspace/types"
)

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	var logger types.Logger = NewSlogDefault()
	require.NotNil(t, logger)
}

func TestNewSlog_NilFallsBackToDefault(t *testing.T) {
	logger := NewSlog(nil)

	require.NotNil(t, logger.logger)
	require.Same(t, slog.Default(), logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
		msg   string
	}{
		{name: "debug", log: func(l *SlogLogger) { l.Debug("slice started", "worker", 0) }, level: "level=DEBUG", msg: "slice started"},
		{name: "info", log: func(l *SlogLogger) { l.Info("region finished", "worker", 1) }, level: "level=INFO", msg: "region finished"},
		{name: "warn", log: func(l *SlogLogger) { l.Warn("idle worker", "worker", 2) }, level: "level=WARN", msg: "idle worker"},
		{name: "error", log: func(l *SlogLogger) { l.Error("element failed", "worker", 3) }, level: "level=ERROR", msg: "element failed"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewSlogText(buf, slog.LevelDebug)

			tt.log(logger)

			out := buf.String()
			require.Contains(t, out, tt.level)
			require.Contains(t, out, tt.msg)
			require.Contains(t, out, "worker="+string(rune('0'+i)))
		})
	}
}

func TestNewSlogText_FiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogText(buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown", "dimension", 1)
	require.Contains(t, buf.String(), "dimension=1")
}

func TestSlogLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogText(buf, slog.LevelInfo).With("plan", "grid")

	logger.Info("published", "workers", 4)

	out := buf.String()
	require.Contains(t, out, "plan=grid")
	require.Contains(t, out, "workers=4")
}
