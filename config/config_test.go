package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1000, cfg.ChunkSize)
	assert.Equal(t, 100, cfg.ChunkOverlap)
	assert.True(t, cfg.IncludeLinks)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 100, cfg.MaxPages)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		reason string
	}{
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, "chunk_size"},
		{"negative overlap", func(c *Config) { c.ChunkOverlap = -1 }, "chunk_overlap"},
		{"overlap equals size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }, "chunk_overlap"},
		{"overlap exceeds size", func(c *Config) { c.ChunkSize = 50; c.ChunkOverlap = 60 }, "chunk_overlap"},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, "concurrency"},
		{"zero max pages", func(c *Config) { c.MaxPages = 0 }, "max_pages"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, cfgErr.Error(), tc.reason)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragpipe.yaml")
	data := "chunk_size: 500\nchunk_overlap: 50\ninclude_links: false\noutput_dir: out\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.ChunkOverlap)
	assert.False(t, cfg.IncludeLinks)
	assert.Equal(t, "out", cfg.OutputDir)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 100, cfg.MaxPages)
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: [not an int"), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
