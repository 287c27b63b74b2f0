package session

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"justmeditation/internal/core/model"
)

// Audio is the fire-and-forget playback collaborator. Implementations absorb their own failures.
type Audio interface {
	PlayBellOnce()
	StartAmbientLoop(track model.AmbientID)
	StopAmbient()
	StopBell()
}

// Options contains runtime collaborators for Driver. Zero values select the system defaults.
type Options struct {
	TimeSource TimeSource
	Scheduler  Scheduler
	Logger     *slog.Logger
	Ambient    model.AmbientID
}

// Driver polls a Clock once per frame and turns its signals into audio effects and events.
type Driver struct {
	mu          sync.Mutex
	clock       *Clock
	audio       Audio
	source      TimeSource
	scheduler   Scheduler
	logger      *slog.Logger
	ambient     model.AmbientID
	cancelFrame CancelFunc
	generation  uint64
	events      []chan Event
	closed      bool
}

// NewDriver creates an idle driver for the provided configuration.
func NewDriver(config model.SessionConfig, audio Audio, options Options) *Driver {
	if audio == nil {
		audio = silentAudio{}
	}
	if options.TimeSource == nil {
		options.TimeSource = NewSystemTimeSource()
	}
	if options.Scheduler == nil {
		options.Scheduler = NewFrameScheduler(DefaultFrameInterval)
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if options.Ambient == "" {
		options.Ambient = model.AmbientSilence
	}

	return &Driver{
		clock:     NewClock(config),
		audio:     audio,
		source:    options.TimeSource,
		scheduler: options.Scheduler,
		logger:    options.Logger,
		ambient:   options.Ambient,
	}
}

// Subscribe registers a new observer channel.
func (driver *Driver) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.closed {
		close(ch)
		return ch
	}
	driver.events = append(driver.events, ch)
	return ch
}

// State returns the current published state.
func (driver *Driver) State() State {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.stateLocked()
}

// RequestStart starts or resumes an idle session.
func (driver *Driver) RequestStart() bool {
	driver.mu.Lock()
	if driver.closed || !driver.clock.Start(driver.source.Now()) {
		driver.mu.Unlock()
		return false
	}
	ambient := driver.ambient
	driver.armLocked()
	driver.emitLocked(EventStateChange)
	driver.logger.Debug("session started",
		slog.Int("remaining", driver.clock.Remaining()),
		slog.String("ambient", string(ambient)))
	driver.mu.Unlock()

	if ambient.HasSound() {
		driver.audio.StartAmbientLoop(ambient)
	}
	return true
}

// RequestPause pauses a running session.
func (driver *Driver) RequestPause() bool {
	driver.mu.Lock()
	if !driver.clock.Pause(driver.source.Now()) {
		driver.mu.Unlock()
		return false
	}
	driver.haltLocked()
	driver.emitLocked(EventStateChange)
	driver.logger.Debug("session paused", slog.Int("remaining", driver.clock.Remaining()))
	driver.mu.Unlock()

	driver.audio.StopAmbient()
	return true
}

// RequestReset abandons the current session and restores the full duration.
func (driver *Driver) RequestReset() {
	driver.mu.Lock()
	driver.clock.Reset()
	driver.haltLocked()
	driver.emitLocked(EventStateChange)
	driver.logger.Debug("session reset", slog.Int("remaining", driver.clock.Remaining()))
	driver.mu.Unlock()

	driver.audio.StopAmbient()
	driver.audio.StopBell()
}

// Configure applies a new configuration unless a session is running.
// A completed session is discarded first.
func (driver *Driver) Configure(config model.SessionConfig) bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.clock.Status() == StatusCompleted {
		driver.clock.Reset()
	}
	if !driver.clock.Configure(config) {
		return false
	}
	driver.emitLocked(EventStateChange)
	return true
}

// SetAmbient selects the ambient track, switching playback immediately when running.
func (driver *Driver) SetAmbient(track model.AmbientID) {
	driver.mu.Lock()
	if track == "" {
		track = model.AmbientSilence
	}
	if driver.ambient == track {
		driver.mu.Unlock()
		return
	}
	driver.ambient = track
	running := driver.clock.Status() == StatusRunning
	driver.emitLocked(EventStateChange)
	driver.mu.Unlock()

	if !running {
		return
	}
	driver.audio.StopAmbient()
	if track.HasSound() {
		driver.audio.StartAmbientLoop(track)
	}
}

// Close halts the poll loop and closes all observer channels.
func (driver *Driver) Close() {
	driver.mu.Lock()
	if driver.closed {
		driver.mu.Unlock()
		return
	}
	driver.closed = true
	driver.haltLocked()
	running := driver.clock.Status() == StatusRunning
	if running {
		driver.clock.Pause(driver.source.Now())
	}
	events := driver.events
	driver.events = nil
	driver.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	if running {
		driver.audio.StopAmbient()
	}
}

func (driver *Driver) frame(generation uint64) {
	driver.mu.Lock()
	if generation != driver.generation || driver.clock.Status() != StatusRunning {
		driver.mu.Unlock()
		return
	}

	previous := driver.clock.Remaining()
	result := driver.clock.Poll(driver.source.Now())

	if result.Complete {
		driver.cancelFrame = nil
		driver.emitLocked(EventComplete)
		driver.emitLocked(EventStateChange)
		driver.logger.Info("session completed", slog.Int("total_seconds", driver.clock.Config().TotalSeconds))
		driver.mu.Unlock()

		driver.audio.PlayBellOnce()
		driver.audio.StopAmbient()
		return
	}

	ringBell := result.CrossedBells > 0
	if ringBell {
		driver.emitLocked(EventBell)
	}
	if result.Remaining != previous {
		driver.emitLocked(EventProgress)
	}
	driver.armLocked()
	driver.mu.Unlock()

	if ringBell {
		driver.audio.PlayBellOnce()
	}
}

func (driver *Driver) armLocked() {
	generation := driver.generation
	driver.cancelFrame = driver.scheduler.Schedule(func() {
		driver.frame(generation)
	})
}

func (driver *Driver) haltLocked() {
	driver.generation++
	if driver.cancelFrame != nil {
		driver.cancelFrame()
		driver.cancelFrame = nil
	}
}

func (driver *Driver) stateLocked() State {
	config := driver.clock.Config()
	return State{
		Status:    driver.clock.Status(),
		Remaining: driver.clock.Remaining(),
		Progress:  driver.clock.Progress(),
		Total:     config.TotalSeconds,
		Ambient:   driver.ambient,
	}
}

func (driver *Driver) emitLocked(eventType EventType) {
	event := Event{
		Type:  eventType,
		State: driver.stateLocked(),
		At:    time.Now(),
	}
	for _, ch := range driver.events {
		select {
		case ch <- event:
		default:
		}
	}
}

type silentAudio struct{}

func (silentAudio) PlayBellOnce() {}

func (silentAudio) StartAmbientLoop(model.AmbientID) {}

func (silentAudio) StopAmbient() {}

func (silentAudio) StopBell() {}
