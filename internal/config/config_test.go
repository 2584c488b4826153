package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvTheme, "")
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, Default(dir), cfg)
	assert.Equal(t, filepath.Join(dir, "things"), cfg.ThingsPath())
	assert.Equal(t, filepath.Join(dir, "hist"), cfg.HistoryPath())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.False(t, cfg.Locking)
}

func TestLoad_ReadsYAML(t *testing.T) {
	t.Setenv(EnvTheme, "")
	dir := t.TempDir()
	yml := "theme: neon\nlog_level: debug\nlocking: true\nthings_file: todo.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.Locking)
	assert.Equal(t, filepath.Join(dir, "todo.txt"), cfg.ThingsPath())
	assert.Equal(t, filepath.Join(dir, DefaultHistoryFile), cfg.HistoryPath())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("theme: [\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_ThemeFromEnv(t *testing.T) {
	t.Setenv(EnvTheme, "mono")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestDefaultDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvDir, "/tmp/ihft-test")
		d, err := DefaultDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/ihft-test", d)
	})

	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvDir, "")
		t.Setenv("HOME", home)
		d, err := DefaultDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".ihft"), d)
	})

	t.Run("no home", func(t *testing.T) {
		t.Setenv(EnvDir, "")
		t.Setenv("HOME", "")
		_, err := DefaultDir()
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvTheme, "")
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := Default(dir)
	cfg.Theme = "neon"
	cfg.Locking = true
	require.NoError(t, cfg.Save())

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn,
		"error": slog.LevelError, "bogus": slog.LevelInfo,
	} {
		c := &Config{LogLevel: in}
		assert.Equal(t, want, c.Level(), in)
	}
}
