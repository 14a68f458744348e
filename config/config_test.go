package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
manifest_dir: /var/lib/manifests
verbose: true
manifest:
  chunk_size: 65536
  algorithm: crc32-ieee
  compress: false
  compression_level: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/manifests", cfg.ManifestDir)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, uint32(65536), cfg.Manifest.ChunkSize)
	assert.False(t, cfg.Manifest.Compress)
	assert.Equal(t, uint8(2), cfg.Manifest.CompressionLevel)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `verbose: true`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.ManifestDir, cfg.ManifestDir)
	assert.Equal(t, defaults.Manifest, cfg.Manifest)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, `
manifest:
  compression_level: 9
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
