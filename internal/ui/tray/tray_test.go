package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"justmeditation/internal/core/session"
)

func TestManager_SetStateUpdatesItems(t *testing.T) {
	manager := New(nil, Callbacks{})

	manager.SetState(session.State{Status: session.StatusRunning, Remaining: 125, Total: 600})
	assert.Equal(t, "Meditating: 02:05 left", manager.statusItem.Label)
	assert.Equal(t, "Pause", manager.toggleItem.Label)

	manager.SetState(session.State{Status: session.StatusIdle, Remaining: 125, Total: 600})
	assert.Equal(t, "Paused: 02:05 left", manager.statusItem.Label)
	assert.Equal(t, "Start", manager.toggleItem.Label)

	manager.SetState(session.State{Status: session.StatusCompleted, Total: 600})
	assert.Equal(t, "Session complete", manager.statusItem.Label)
	assert.True(t, manager.toggleItem.Disabled)

	manager.SetState(session.State{Status: session.StatusIdle, Remaining: 600, Total: 600})
	assert.Equal(t, "Ready: 10:00", manager.statusItem.Label)
	assert.False(t, manager.toggleItem.Disabled)
}

func TestManager_ItemsInvokeCallbacks(t *testing.T) {
	toggled, reset := 0, 0
	manager := New(nil, Callbacks{
		OnToggle: func() { toggled++ },
		OnReset:  func() { reset++ },
	})

	manager.toggleItem.Action()
	manager.resetItem.Action()
	manager.resetItem.Action()

	assert.Equal(t, 1, toggled)
	assert.Equal(t, 2, reset)
}
