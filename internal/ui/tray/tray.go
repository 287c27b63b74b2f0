package tray

import (
	"fmt"

	"justmeditation/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Just Meditation"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnTips        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	status     session.Status
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    session.StatusIdle,
	}

	manager.statusItem = fyne.NewMenuItem("Ready", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggle))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))

	manager.refreshMenu()
	return manager
}

// SetState updates the status line and the start/pause label.
func (manager *Manager) SetState(state session.State) {
	manager.status = state.Status
	manager.statusItem.Label = statusLine(state)
	if state.Status == session.StatusRunning {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.toggleItem.Disabled = state.Status == session.StatusCompleted
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItem("Tips", invoke(&manager.callbacks.OnTips)),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	))
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

func statusLine(state session.State) string {
	remaining := session.FormatClock(state.Remaining)
	switch state.Status {
	case session.StatusRunning:
		return fmt.Sprintf("Meditating: %s left", remaining)
	case session.StatusCompleted:
		return "Session complete"
	}
	if state.Remaining < state.Total {
		return fmt.Sprintf("Paused: %s left", remaining)
	}
	return fmt.Sprintf("Ready: %s", remaining)
}
