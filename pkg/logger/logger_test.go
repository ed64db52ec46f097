package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	prevInfo, prevFatal := InfoLogger, FatalLogger
	t.Cleanup(func() { InfoLogger, FatalLogger = prevInfo, prevFatal })

	require.NoError(t, Init(Config{Level: "debug", Development: true}))
	assert.True(t, InfoLogger.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init(Config{Level: "warn"}))
	assert.False(t, InfoLogger.Core().Enabled(zap.InfoLevel))

	assert.Error(t, Init(Config{Level: "loud"}))
}

func TestInfoTagsService(t *testing.T) {
	prevInfo := InfoLogger
	prevName := SetServiceName("breakout-test")
	t.Cleanup(func() {
		InfoLogger = prevInfo
		SetServiceName(prevName)
	})

	core, logs := observer.New(zap.InfoLevel)
	InfoLogger = zap.New(core)

	Info("signal for %s", "AAPL")
	Error("bad %d", 42)
	Debug("hidden")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "signal for AAPL", entries[0].Message)
	assert.Equal(t, "breakout-test", entries[0].ContextMap()["service"])
	assert.Equal(t, "bad 42", entries[1].Message)
}
