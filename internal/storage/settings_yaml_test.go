package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justmeditation/internal/core/model"
	"justmeditation/internal/ui/preferences"
)

func TestLoadSettingsFile_DefaultsWhenMissing(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsFile_ParsesYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := strings.TrimSpace(`
duration_minutes: 25
bell_interval_minutes: 2.5
ambient: waves
sounds_dir: /tmp/sounds
player: ffplay
verbose: true
`)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, 25, settings.DurationMinutes)
	assert.Equal(t, 2.5, settings.BellIntervalMinutes)
	assert.Equal(t, model.AmbientWaves, settings.Ambient)
	assert.Equal(t, "/tmp/sounds", settings.SoundsDir)
	assert.Equal(t, "ffplay", settings.Player)
	assert.True(t, settings.Verbose)
}

func TestLoadSettingsFile_ClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "duration_minutes: 999\nbell_interval_minutes: -1\nambient: thunder\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, preferences.MaxDurationMinutes, settings.DurationMinutes)
	assert.Equal(t, preferences.DefaultSettings().BellIntervalMinutes, settings.BellIntervalMinutes)
	assert.Equal(t, model.AmbientSilence, settings.Ambient)
}

func TestLoadSettingsFile_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration_minutes: [1, 2"), 0o644))

	settings, err := LoadSettingsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveSettingsFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	saved := preferences.Settings{
		DurationMinutes:     45,
		BellIntervalMinutes: 0.75,
		Ambient:             model.AmbientForest,
		Player:              "paplay",
	}

	require.NoError(t, SaveSettingsFile(path, saved))
	loaded, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, saved, loaded)
}
