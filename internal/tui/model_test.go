package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justmeditation/internal/core/model"
	"justmeditation/internal/core/session"
	"justmeditation/internal/ui/preferences"
)

type fakeSession struct {
	state session.State
	calls []string
}

func newFakeSession(total int) *fakeSession {
	return &fakeSession{state: session.State{Status: session.StatusIdle, Remaining: total, Total: total}}
}

func (fake *fakeSession) RequestStart() bool {
	fake.calls = append(fake.calls, "start")
	if fake.state.Status != session.StatusIdle {
		return false
	}
	fake.state.Status = session.StatusRunning
	return true
}

func (fake *fakeSession) RequestPause() bool {
	fake.calls = append(fake.calls, "pause")
	fake.state.Status = session.StatusIdle
	return true
}

func (fake *fakeSession) RequestReset() {
	fake.calls = append(fake.calls, "reset")
	fake.state = session.State{Status: session.StatusIdle, Remaining: fake.state.Total, Total: fake.state.Total}
}

func (fake *fakeSession) State() session.State {
	return fake.state
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, value := range keys {
		var msg tea.KeyMsg
		switch value {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
		}
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func TestModel_SpaceTogglesStartAndPause(t *testing.T) {
	fake := newFakeSession(600)
	m := New(fake, Options{Settings: preferences.DefaultSettings()})

	m = press(t, m, " ")
	assert.Equal(t, session.StatusRunning, m.state.Status)
	m = press(t, m, " ")
	assert.Equal(t, session.StatusIdle, m.state.Status)
	assert.Equal(t, []string{"start", "pause"}, fake.calls)
}

func TestModel_SpaceAfterCompletionStartsOver(t *testing.T) {
	fake := newFakeSession(60)
	fake.state = session.State{Status: session.StatusCompleted, Total: 60, Progress: 1}
	m := New(fake, Options{Settings: preferences.DefaultSettings()})
	m.bells = 3

	m = press(t, m, " ")
	assert.Equal(t, []string{"reset", "start"}, fake.calls)
	assert.Equal(t, session.StatusRunning, m.state.Status)
	assert.Equal(t, 0, m.bells)
}

func TestModel_ResetClearsBellCount(t *testing.T) {
	fake := newFakeSession(600)
	m := New(fake, Options{Settings: preferences.DefaultSettings()})

	updated, _ := m.Update(eventMsg{Type: session.EventBell, State: session.State{Status: session.StatusRunning, Remaining: 540, Total: 600}})
	m = updated.(Model)
	assert.Equal(t, 1, m.bells)

	m = press(t, m, "r")
	assert.Equal(t, 0, m.bells)
	assert.Equal(t, []string{"reset"}, fake.calls)
}

func TestModel_SettingsKeysWhileIdle(t *testing.T) {
	var applied []preferences.Settings
	m := New(newFakeSession(600), Options{
		Settings:   preferences.DefaultSettings(),
		OnSettings: func(settings preferences.Settings) { applied = append(applied, settings) },
	})

	m = press(t, m, "+", "+", "-", "]", "a", "A", "A")

	require.Len(t, applied, 7)
	assert.Equal(t, 11, m.settings.DurationMinutes)
	assert.Equal(t, 1.25, m.settings.BellIntervalMinutes)
	assert.Equal(t, model.AmbientWaves, m.settings.Ambient)
}

func TestModel_BellIntervalNeverBelowStep(t *testing.T) {
	settings := preferences.DefaultSettings()
	settings.BellIntervalMinutes = 0.25
	m := New(newFakeSession(600), Options{Settings: settings})

	m = press(t, m, "[", "[")
	assert.Equal(t, 0.25, m.settings.BellIntervalMinutes)
}

func TestModel_DurationLockedWhileRunning(t *testing.T) {
	var applied []preferences.Settings
	m := New(newFakeSession(600), Options{
		Settings:   preferences.DefaultSettings(),
		OnSettings: func(settings preferences.Settings) { applied = append(applied, settings) },
	})

	m = press(t, m, " ", "+", "]", "a")

	assert.Equal(t, 10, m.settings.DurationMinutes)
	assert.Equal(t, 1.0, m.settings.BellIntervalMinutes)
	require.Len(t, applied, 1)
	assert.Equal(t, model.AmbientRain, applied[0].Ambient)
}

func TestModel_EventsUpdateStateAndView(t *testing.T) {
	events := make(chan session.Event, 1)
	m := New(newFakeSession(60), Options{Settings: preferences.DefaultSettings(), Events: events})

	events <- session.Event{Type: session.EventComplete, State: session.State{Status: session.StatusCompleted, Total: 60, Progress: 1}}
	msg := m.Init()()
	updated, next := m.Update(msg)
	m = updated.(Model)

	assert.NotNil(t, next)
	assert.Equal(t, session.StatusCompleted, m.state.Status)
	view := m.View()
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "Session complete")

	close(events)
	assert.Equal(t, eventsClosedMsg{}, next())
}

func TestModel_QuitKey(t *testing.T) {
	m := New(newFakeSession(60), Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewShowsSettings(t *testing.T) {
	settings := preferences.Settings{DurationMinutes: 20, BellIntervalMinutes: 2.5, Ambient: model.AmbientForest}
	view := New(newFakeSession(1200), Options{Settings: settings}).View()

	assert.Contains(t, view, "20:00")
	assert.Contains(t, view, "Duration 20 min")
	assert.Contains(t, view, "Bell every 2.5 min")
	assert.Contains(t, view, "Ambient Forest")
}
