package logging

import (
	"context"
	"georemind/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEntriesBecomeFields(t *testing.T) {
	// Setup ---
	core, logs := observer.New(zapcore.InfoLevel)
	logger := newZapLogger(zap.New(core))

	// Exercise ---
	logger.Debug(context.Background(), "Hidden.")
	logger.Warning(context.Background(), "Reminder not found.", logging.Entry("id", "Pharmacy-40--3"))

	// Verify ---
	assert := require.New(t)
	assert.Equal(1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(zapcore.WarnLevel, entry.Level)
	assert.Equal("Reminder not found.", entry.Message)
	assert.Equal("Pharmacy-40--3", entry.ContextMap()["id"])
}

func TestInvalidLevel(t *testing.T) {
	_, err := NewZapLogger("loud")

	require.Error(t, err)
}
