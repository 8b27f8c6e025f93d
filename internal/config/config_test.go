package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.DataDir = "/tmp/canto-data"
	cfg.Display.Mandarin = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/canto-data", loaded.DataDir)
	assert.True(t, loaded.Display.Mandarin)
	assert.Equal(t, DefaultCharsURL, loaded.Sources.Chars)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Display.Yale)
	assert.Equal(t, DefaultWordsURL, cfg.Sources.Words)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /somewhere\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/somewhere", cfg.DataDir)
	assert.Equal(t, DefaultFreqURL, cfg.Sources.Freq, "unset fields fall back to defaults")
}
