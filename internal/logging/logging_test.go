package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	defer Discard()

	c, err := Init(dir, slog.LevelInfo)
	require.NoError(t, err)

	slog.Debug("hidden")
	slog.Info("thing added", "item", "walk dog")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(filepath.Join(dir, "ihft.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `msg="thing added" item="walk dog"`)
	assert.NotContains(t, string(b), "hidden")
}
