package session

import (
	"fmt"
	"time"

	"justmeditation/internal/core/model"
)

// Status represents the current session mode.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// EventType defines the type of driver event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventBell        EventType = "bell"
	EventComplete    EventType = "complete"
)

// State is the read-only view of a session published to the UI.
type State struct {
	Status    Status
	Remaining int
	Progress  float64
	Total     int
	Ambient   model.AmbientID
}

// Event represents a driver update for observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}

// PollResult is the outcome of a single clock poll.
type PollResult struct {
	Remaining    int
	Elapsed      time.Duration
	CrossedBells int
	Complete     bool
}

// Progress returns the completed fraction of a session with the given remaining seconds.
func Progress(remaining, total int) float64 {
	if total <= 0 {
		total = 1
	}
	progress := 1 - float64(remaining)/float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatClock renders seconds as MM:SS. Minutes are not wrapped at an hour.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
