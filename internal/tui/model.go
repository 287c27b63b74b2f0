package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"justmeditation/internal/core/model"
	"justmeditation/internal/core/session"
	"justmeditation/internal/ui/preferences"
)

// Session is the part of the driver the terminal UI controls.
type Session interface {
	RequestStart() bool
	RequestPause() bool
	RequestReset()
	State() session.State
}

// Options configure a Model.
type Options struct {
	Settings preferences.Settings
	Events   <-chan session.Event
	// OnSettings receives every settings change made from the keyboard.
	OnSettings func(preferences.Settings)
}

type eventMsg session.Event

type eventsClosedMsg struct{}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	clockStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(1, 0, 0, 0)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	settingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	frameStyle   = lipgloss.NewStyle().Padding(1, 2)
)

// Model is the bubbletea model of the terminal timer.
type Model struct {
	session    Session
	events     <-chan session.Event
	onSettings func(preferences.Settings)
	settings   preferences.Settings
	state      session.State
	keys       keyMap
	help       help.Model
	progress   progress.Model
	bells      int
}

// New creates the terminal UI model.
func New(driver Session, options Options) Model {
	return Model{
		session:    driver,
		events:     options.Events,
		onSettings: options.OnSettings,
		settings:   options.Settings.Normalized(),
		state:      driver.State(),
		keys:       defaultKeys(),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40)),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = clampWidth(msg.Width - 4)
		return m, nil

	case eventMsg:
		m.state = msg.State
		if msg.Type == session.EventBell {
			m.bells++
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		if m.state.Status == session.StatusRunning {
			m.session.RequestPause()
		} else {
			if m.state.Status == session.StatusCompleted {
				m.session.RequestReset()
			}
			if m.session.State().Remaining == m.state.Total {
				m.bells = 0
			}
			m.session.RequestStart()
		}
		m.state = m.session.State()
	case key.Matches(msg, m.keys.Reset):
		m.session.RequestReset()
		m.bells = 0
		m.state = m.session.State()
	case key.Matches(msg, m.keys.Ambient):
		m.settings.Ambient = cycleAmbient(m.settings.Ambient, 1)
		m.applySettings()
	case key.Matches(msg, m.keys.AmbientBack):
		m.settings.Ambient = cycleAmbient(m.settings.Ambient, -1)
		m.applySettings()
	case m.state.Status == session.StatusRunning:
	case key.Matches(msg, m.keys.Longer):
		m.settings.DurationMinutes++
		m.applySettings()
	case key.Matches(msg, m.keys.Shorter):
		m.settings.DurationMinutes--
		m.applySettings()
	case key.Matches(msg, m.keys.BellLonger):
		m.settings.BellIntervalMinutes += preferences.BellIntervalStep
		m.applySettings()
	case key.Matches(msg, m.keys.BellShorter):
		m.settings.BellIntervalMinutes -= preferences.BellIntervalStep
		if m.settings.BellIntervalMinutes < preferences.MinBellIntervalMinutes {
			m.settings.BellIntervalMinutes = preferences.MinBellIntervalMinutes
		}
		m.applySettings()
	}
	return m, nil
}

func (m *Model) applySettings() {
	m.settings = m.settings.Normalized()
	if m.onSettings != nil {
		m.onSettings(m.settings)
	}
	m.state = m.session.State()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Just Meditation"))
	b.WriteString("\n")
	b.WriteString(clockStyle.Render(session.FormatClock(m.state.Remaining)))
	b.WriteString("\n")
	b.WriteString(m.caption())
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(m.state.Progress))
	b.WriteString("\n\n")
	b.WriteString(settingStyle.Render(fmt.Sprintf("Duration %d min · Bell every %s min · Ambient %s",
		m.settings.DurationMinutes,
		preferences.FormatMinutes(m.settings.BellIntervalMinutes),
		m.settings.Ambient.Label())))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return frameStyle.Render(b.String())
}

func (m Model) caption() string {
	switch m.state.Status {
	case session.StatusRunning:
		return captionStyle.Render(fmt.Sprintf("Meditating · bells %d", m.bells))
	case session.StatusCompleted:
		return doneStyle.Render("Session complete")
	}
	if m.state.Remaining < m.state.Total {
		return captionStyle.Render("Paused")
	}
	return captionStyle.Render("Remaining time")
}

func waitForEvent(events <-chan session.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func cycleAmbient(current model.AmbientID, step int) model.AmbientID {
	tracks := model.AmbientTracks
	for i, track := range tracks {
		if track == current {
			return tracks[(i+step+len(tracks))%len(tracks)]
		}
	}
	return tracks[0]
}

func clampWidth(width int) int {
	if width < 10 {
		return 10
	}
	if width > 60 {
		return 60
	}
	return width
}
