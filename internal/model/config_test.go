package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope", "config.yaml"))

	require.NoError(t, err)
	require.Len(t, cfg.Technicians, 1)
	assert.Equal(t, "tech_default_001", cfg.Technicians[0].ID)
	assert.True(t, cfg.Sound.Enabled)
	assert.NotEmpty(t, cfg.Log.Path)
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "somfix", "config.yaml")

	cfg := &AppConfig{
		Technicians: []Technician{
			{ID: "tech_a", Name: "Asha Omar"},
			{ID: "tech_b", Name: "Bashir Ali"},
		},
		Sound: SoundConfig{BellPath: "/tmp/bell.mp3", Enabled: false},
		Log:   LogConfig{Path: "/tmp/somfix.log"},
	}

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Technicians, loaded.Technicians)
	assert.Equal(t, cfg.Sound.BellPath, loaded.Sound.BellPath)
	assert.False(t, loaded.Sound.Enabled)
	assert.Equal(t, cfg.Log.Path, loaded.Log.Path)
}

func TestLoadConfigEmptyRosterFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveConfig(path, &AppConfig{
		Sound: SoundConfig{BellPath: "bell.mp3", Enabled: true},
		Log:   LogConfig{Path: "somfix.log"},
	}))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, loaded.Technicians, 1)
	assert.Equal(t, "tech_default_001", loaded.Technicians[0].ID)
}
