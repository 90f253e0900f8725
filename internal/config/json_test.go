package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"time_zone": "Asia/Jakarta"},
		"storage": {"db": {"path": "/data/logbook.db"}},
		"capture": {"frames_dir": "/data/frames", "fps": 12},
		"recognizer": {"endpoint": "http://alpr:8081", "timeout": "4s", "min_confidence": 80}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "Asia/Jakarta", cfg.App.TimeZone)
	assert.Equal(t, "/data/logbook.db", cfg.Storage.DB.Path)
	assert.Equal(t, "/data/frames", cfg.Capture.FramesDir)
	assert.Equal(t, 12, cfg.Capture.FPS)
	assert.Equal(t, "http://alpr:8081", cfg.Recognizer.Endpoint)
	assert.Equal(t, 4*time.Second, cfg.Recognizer.Timeout)
	assert.Equal(t, 80.0, cfg.Recognizer.MinConfidence)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	path := writeTempJSON(t, `{"recognizer": {"timeout": 5000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Recognizer.Timeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"storage": `)
	_, err := parseJSON(path)
	assert.Error(t, err)
}
