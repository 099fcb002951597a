package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewZapAdapter(zap.New(core)), logs
}

func TestLogger_Fields(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)

	log.With(map[string]interface{}{"request_id": "abc"}).
		Warn("search failed", map[string]interface{}{"query": "코트", "error": errors.New("boom")})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "search failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "코트", fields["query"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLogger_WithErrorAndStack(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)

	log.WithError(errors.New("bad")).WithStack().Error("loop failure", nil)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "bad", fields["error"])
	assert.NotEmpty(t, fields["stack"])
}

func TestLogger_LevelFilter(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)

	log.Debug("hidden", nil)
	log.Info("shown", nil)

	assert.Equal(t, 1, logs.Len())
}

func TestNew_Levels(t *testing.T) {
	for _, tt := range []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	} {
		l, err := New(tt.level, "json")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(tt.want), tt.level)
		if tt.want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(tt.want-1), tt.level)
		}
	}
}

func TestNoOp(t *testing.T) {
	log := NewNoOp()

	assert.NotPanics(t, func() {
		log.With(map[string]interface{}{"k": "v"}).Info("ignored", nil)
	})
}
