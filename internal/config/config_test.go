package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "picklist", "config.toml")

	cfg := &Config{
		Version:     1,
		Items:       []string{"milk", "eggs", "bread"},
		Multiselect: true,
		UISettings: UISettings{
			Marker:         "*",
			AutosaveOnExit: false,
		},
	}
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cs := NewConfigService()

	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFromPathBadToml(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("items = {{"), 0644))

	_, err := cs.LoadFromPath(path)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestLoadFillsMissingMarker(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\nitems = [\"a\"]\n"), 0644))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().UISettings.Marker, loaded.UISettings.Marker)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.Multiselect)
	require.True(t, cfg.UISettings.AutosaveOnExit)
	require.NotEmpty(t, cfg.UISettings.Marker)
	require.Empty(t, cfg.Items)
}
