package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbdlayer/layerz/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverlaysFileOntoDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\ndevice: /dev/input/event3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/dev/input/event3", cfg.Device)
	assert.Equal(t, config.Default().PollTimeoutMs, cfg.PollTimeoutMs)
}

func TestPollTimeoutConvertsMillisecondsToDuration(t *testing.T) {
	t.Parallel()

	cfg := config.Config{PollTimeoutMs: 250}
	assert.Equal(t, int64(250), cfg.PollTimeout().Milliseconds())
}
