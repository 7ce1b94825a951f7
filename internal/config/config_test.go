package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9999"
canvas:
  width: 1920
  height: 1080
sync:
  quiescence: 500ms
  handwritten_text: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, 1920.0, cfg.Canvas.Width)
	assert.Equal(t, "500ms", cfg.Sync.Quiescence)
	assert.True(t, cfg.Sync.HandwrittenText)
	// Untouched fields keep their defaults.
	assert.Equal(t, "sharedslate.sqlite3", cfg.DatabasePath)
	assert.Equal(t, "10s", cfg.Sync.MaxWait)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [not: closed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, Duration("2s", time.Minute))
	assert.Equal(t, time.Minute, Duration("", time.Minute))
	assert.Equal(t, time.Minute, Duration("soon", time.Minute))
}
