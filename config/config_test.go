package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
app:
  language: pt
engine:
  tick_interval: 500ms
storage:
  driver: memory
alerts:
  sound: false
  tone_length: 1s
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pt", cfg.App.Language)
	assert.Equal(t, 500*time.Millisecond, cfg.Engine.TickInterval)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.False(t, cfg.Alerts.Sound)
	assert.Equal(t, time.Second, cfg.Alerts.ToneLength)
	assert.Equal(t, "timer_history.json", cfg.Export.FileName)
	assert.Equal(t, 880.0, cfg.Alerts.CompletedToneHz)
}

func TestLoadSanitizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  tick_interval: -1s\nstorage:\n  driver: mongo\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Engine.TickInterval)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o644))

	cfg, err := Load(path)
	assert.ErrorContains(t, err, "parse config yaml")
	assert.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := Default()
	want.App.Language = "es"
	want.Engine.TickInterval = 2 * time.Second
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TIMERBOARD_LANG":      "ru",
		"TIMERBOARD_DATA_DIR":  "/tmp/tb",
		"TIMERBOARD_STORAGE":   "memory",
		"TIMERBOARD_LOG_LEVEL": "debug",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "ru", cfg.App.Language)
	assert.Equal(t, "/tmp/tb", cfg.Storage.DataDir)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	path, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/tb", "timerboard.db"), path)
}

func TestSlogLevel(t *testing.T) {
	for level, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		cfg := Default()
		cfg.Log.Level = level
		assert.Equal(t, want, cfg.SlogLevel(), level)
	}
}
