package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv("DATEPICKER_DATA_DIR", dir)

	got, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigName), path)

	logDir, err := LogDir()
	require.NoError(t, err)
	assert.DirExists(t, logDir)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DATEPICKER_DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigName)
	content := "theme:\n  accent: \"212\"\nshow_status: false\ninitial_value: 02/14/2025\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "212", cfg.Theme.Accent)
	assert.Equal(t, Default().Theme.Muted, cfg.Theme.Muted)
	assert.False(t, cfg.ShowStatus)
	assert.Equal(t, "02/14/2025", cfg.InitialValue)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigName)
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigName)
	cfg := Default()
	cfg.InitialValue = "12/25/2025"

	require.NoError(t, Save(path, cfg))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
