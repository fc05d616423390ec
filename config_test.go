package tegaki

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops YAML into a fresh temp file and returns its path.
func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tegaki.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("TEGAKI_DEBUG", "")
	cfg := DefaultConfig()

	assert.Equal(t, DefaultMaxCacheSize, cfg.MaxCacheSize)
	assert.Equal(t, ModeLenient, cfg.DefaultMode)
	assert.Equal(t, DefaultWarmConcurrency, cfg.WarmConcurrency)
	assert.False(t, cfg.Debug)

	t.Setenv("TEGAKI_DEBUG", "1")
	assert.True(t, DefaultConfig().Debug)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultMaxCacheSize, cfg.MaxCacheSize)
	assert.Equal(t, ModeLenient, cfg.DefaultMode)
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	path := writeConfig(t, `
max_cache_size: 10
default_mode: strict
warm_concurrency: 2
debug: true
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxCacheSize)
	assert.Equal(t, ModeStrict, cfg.DefaultMode)
	assert.Equal(t, 2, cfg.WarmConcurrency)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "debug: true\n")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultMaxCacheSize, cfg.MaxCacheSize)
	assert.Equal(t, ModeLenient, cfg.DefaultMode)
	assert.Equal(t, DefaultWarmConcurrency, cfg.WarmConcurrency)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "max_cache_size: [not a number\n")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadConfig_UnreadablePath(t *testing.T) {
	_, err := LoadConfig(t.TempDir()) // a directory, not a file

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_ReplacesOutOfRangeValues(t *testing.T) {
	path := writeConfig(t, `
max_cache_size: 2
warm_concurrency: -3
default_mode: fuzzy
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultMaxCacheSize, cfg.MaxCacheSize,
		"a cache bound below the basic set is unusable")
	assert.Equal(t, DefaultWarmConcurrency, cfg.WarmConcurrency)
	assert.Equal(t, ModeLenient, cfg.DefaultMode)
}
