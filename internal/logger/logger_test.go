package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/TDL-133/ai-weekly-fr/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter("warn", &buf)
	log.Info("hidden")
	log.Warn("shown", "file", "index.html")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "file=index.html")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter("debug", &buf).With("cmd", "generate")
	log.Debug("step")

	assert.Contains(t, buf.String(), "cmd=generate")
}

func TestNewLoggerWithConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "newsletter.log")

	log := NewLoggerWithConfig(config.LoggingConfig{Level: "info", File: path, MaxSizeMB: 1})
	log.Info("written to file")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewLoggerWithConfig_NoFile(t *testing.T) {
	log := NewLoggerWithConfig(config.LoggingConfig{Level: "info"})
	assert.NoError(t, log.Close())
}
