package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkcode/mkcode/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8640, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1.0, cfg.BarcodeScale)
	assert.Equal(t, 2, cfg.QRBoxSize)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout.Duration)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("port: 9000\nlog_level: debug\nbarcode_scale: 2.5\nqr_box_size: 4\nread_timeout: 5s\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2.5, cfg.BarcodeScale)
	assert.Equal(t, 4, cfg.QRBoxSize)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout.Duration)
	// Unset keys keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout.Duration)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0o644))

	t.Setenv("MKCODE_PORT", "9100")
	t.Setenv("MKCODE_LOG_LEVEL", "warn")
	t.Setenv("MKCODE_BARCODE_SCALE", "3")
	t.Setenv("MKCODE_QR_BOX_SIZE", "8")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3.0, cfg.BarcodeScale)
	assert.Equal(t, 8, cfg.QRBoxSize)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a number\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("read_timeout: soon\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
