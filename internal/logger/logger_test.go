package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestLogger_Levels(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	log.Debug("debug", "k", 1)
	log.Info("info", "k", 2)
	log.Warn("warn", "k", 3)
	log.Error("error", "k", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, entry := range entries {
		assert.Equal(t, wantLevels[i], entry.Level)
		assert.Equal(t, int64(i+1), entry.ContextMap()["k"])
	}
}

func TestLogger_With(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	log.With("account_id", int64(7)).Info("seats reserved", "seats", 2)
	log.Debug("dropped below level")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "seats reserved", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"account_id": int64(7), "seats": int64(2)}, entries[0].ContextMap())
}

func TestNew(t *testing.T) {
	tests := []struct {
		mode      string
		wantDebug bool
	}{
		{mode: "development", wantDebug: true},
		{mode: "", wantDebug: true},
		{mode: "production", wantDebug: false},
		{mode: "release", wantDebug: false},
		{mode: "PROD", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			log, err := New(tt.mode)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, log.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		log := NewNop()
		log.Info("ignored", "k", "v")
		log.Sync()
	})
}
