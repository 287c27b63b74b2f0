package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_SaveTrimsAndKeepsTimerFields(t *testing.T) {
	initial := DefaultSettings()
	initial.DurationMinutes = 25

	var saved []Settings
	prefs := New(test.NewTempApp(t), initial, func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.soundsDir.SetText("  /tmp/sounds ")
	prefs.player.SetText("ffplay -nodisp ")
	prefs.verbose.SetChecked(true)
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, "/tmp/sounds", saved[0].SoundsDir)
	assert.Equal(t, "ffplay -nodisp", saved[0].Player)
	assert.True(t, saved[0].Verbose)
	assert.Equal(t, 25, saved[0].DurationMinutes)
}

func TestWindow_UpdateSettingsRefreshesFields(t *testing.T) {
	prefs := New(test.NewTempApp(t), DefaultSettings(), nil)

	updated := DefaultSettings()
	updated.Player = "paplay"
	prefs.UpdateSettings(updated)

	assert.Equal(t, "paplay", prefs.player.Text)
	assert.Empty(t, prefs.soundsDir.Text)
	assert.False(t, prefs.verbose.Checked)
}
