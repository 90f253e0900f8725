package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_TIME_ZONE", "Asia/Jakarta")
	t.Setenv("STORAGE_DB_PATH", "/tmp/logbook.db")
	t.Setenv("CAPTURE_FRAMES_DIR", "/tmp/frames")
	t.Setenv("CAPTURE_FPS", "15")
	t.Setenv("RECOGNIZER_ENDPOINT", "http://localhost:8081")
	t.Setenv("RECOGNIZER_TIMEOUT", "3s")
	t.Setenv("RECOGNIZER_MIN_CONFIDENCE", "82.5")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "Asia/Jakarta", cfg.App.TimeZone)
	assert.Equal(t, "/tmp/logbook.db", cfg.Storage.DB.Path)
	assert.Equal(t, "/tmp/frames", cfg.Capture.FramesDir)
	assert.Equal(t, 15, cfg.Capture.FPS)
	assert.Equal(t, "http://localhost:8081", cfg.Recognizer.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Recognizer.Timeout)
	assert.Equal(t, 82.5, cfg.Recognizer.MinConfidence)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("CAPTURE_FPS", "not-a-number")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.DB.Path)
	assert.Zero(t, cfg.Capture.FPS)
}
