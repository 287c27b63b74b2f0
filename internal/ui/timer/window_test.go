package timer

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justmeditation/internal/core/model"
	"justmeditation/internal/core/session"
	"justmeditation/internal/ui/preferences"
)

func TestWindow_InitialRenderShowsFullDuration(t *testing.T) {
	timer := New(test.NewTempApp(t), preferences.DefaultSettings(), Actions{})

	assert.Equal(t, "10:00", timer.clockText.Text)
	assert.Equal(t, "Remaining time", timer.statusText.Text)
	assert.Equal(t, "10", timer.duration.Text)
	assert.Equal(t, "1", timer.interval.Text)
	assert.Equal(t, "Silence", timer.ambient.Selected)
	assert.Equal(t, "Start", timer.toggle.Text)
}

func TestWindow_StartAppliesFormValues(t *testing.T) {
	var started []preferences.Settings
	timer := New(test.NewTempApp(t), preferences.DefaultSettings(), Actions{
		OnStart: func(settings preferences.Settings) { started = append(started, settings) },
	})

	timer.duration.SetText("25")
	timer.interval.SetText("0.25")
	test.Tap(timer.toggle)

	require.Len(t, started, 1)
	assert.Equal(t, 25, started[0].DurationMinutes)
	assert.Equal(t, 0.25, started[0].BellIntervalMinutes)
	assert.Equal(t, model.AmbientSilence, started[0].Ambient)
}

func TestWindow_RunningStateLocksInputsAndPauses(t *testing.T) {
	paused := 0
	timer := New(test.NewTempApp(t), preferences.DefaultSettings(), Actions{
		OnPause: func() { paused++ },
	})

	timer.Render(session.State{Status: session.StatusRunning, Remaining: 59, Total: 60, Progress: session.Progress(59, 60)})
	assert.Equal(t, "00:59", timer.clockText.Text)
	assert.Equal(t, "Pause", timer.toggle.Text)
	assert.True(t, timer.duration.Disabled())
	assert.True(t, timer.interval.Disabled())
	assert.True(t, timer.pacer.Running())

	test.Tap(timer.toggle)
	assert.Equal(t, 1, paused)

	timer.Render(session.State{Status: session.StatusIdle, Remaining: 59, Total: 60})
	assert.Equal(t, "Paused", timer.statusText.Text)
	assert.False(t, timer.duration.Disabled())
	assert.False(t, timer.pacer.Running())
	assert.Zero(t, timer.faceLayout.level)
}

func TestWindow_CompletedState(t *testing.T) {
	timer := New(test.NewTempApp(t), preferences.DefaultSettings(), Actions{})

	timer.Render(session.State{Status: session.StatusCompleted, Remaining: 0, Total: 60, Progress: 1})
	assert.Equal(t, "00:00", timer.clockText.Text)
	assert.Equal(t, "Session complete", timer.statusText.Text)
	assert.Equal(t, 1.0, timer.progress.Value)
}

func TestWindow_AmbientSelectionNotifiesOnlyUserChanges(t *testing.T) {
	var tracks []model.AmbientID
	timer := New(test.NewTempApp(t), preferences.DefaultSettings(), Actions{
		OnAmbient: func(track model.AmbientID) { tracks = append(tracks, track) },
	})

	timer.ambient.SetSelected("Rain")
	timer.Render(session.State{Status: session.StatusRunning, Remaining: 60, Total: 60, Ambient: model.AmbientWaves})

	assert.Equal(t, []model.AmbientID{model.AmbientRain}, tracks)
	assert.Equal(t, "Waves", timer.ambient.Selected)
}
