package session

import (
	"time"

	"justmeditation/internal/core/model"
)

// Clock converts monotonic timestamps into session elapsed and remaining time.
// It holds no goroutines and is not safe for concurrent use; Driver serializes access.
type Clock struct {
	config        model.SessionConfig
	status        Status
	accumulated   time.Duration
	startedAt     time.Duration
	lastElapsed   time.Duration
	lastBellIndex int64
	remaining     int
}

// NewClock creates an idle clock with the provided configuration.
func NewClock(config model.SessionConfig) *Clock {
	clock := &Clock{status: StatusIdle}
	clock.applyConfig(config)
	return clock
}

// Configure replaces the configuration while the clock is idle.
func (clock *Clock) Configure(config model.SessionConfig) bool {
	if clock.status != StatusIdle {
		return false
	}
	clock.applyConfig(config)
	return true
}

// Start begins a running span at now, keeping previously accumulated time.
func (clock *Clock) Start(now time.Duration) bool {
	if clock.status != StatusIdle {
		return false
	}
	clock.status = StatusRunning
	clock.startedAt = now
	clock.lastElapsed = clock.accumulated
	clock.lastBellIndex = clock.bellIndex(clock.accumulated)
	return true
}

// Pause folds the current running span into the accumulated time.
func (clock *Clock) Pause(now time.Duration) bool {
	if clock.status != StatusRunning {
		return false
	}
	elapsed := clock.elapsedAt(now)
	clock.accumulated = elapsed
	clock.lastElapsed = elapsed
	clock.remaining = clock.remainingAt(elapsed)
	clock.status = StatusIdle
	return true
}

// Reset returns the clock to idle with the full configured duration remaining.
func (clock *Clock) Reset() {
	clock.status = StatusIdle
	clock.accumulated = 0
	clock.startedAt = 0
	clock.lastElapsed = 0
	clock.lastBellIndex = 0
	clock.remaining = clock.config.TotalSeconds
}

// Poll computes the session state at now and advances the bell cursor.
// Complete is reported by exactly one poll; polls outside a running span report a snapshot.
func (clock *Clock) Poll(now time.Duration) PollResult {
	if clock.status != StatusRunning {
		return PollResult{Remaining: clock.remaining, Elapsed: clock.accumulated}
	}

	elapsed := clock.elapsedAt(now)
	clock.lastElapsed = elapsed
	total := clock.config.Total()

	if elapsed >= total {
		clock.status = StatusCompleted
		clock.accumulated = total
		clock.remaining = 0
		return PollResult{Remaining: 0, Elapsed: elapsed, Complete: true}
	}

	crossed := 0
	index := clock.bellIndex(elapsed)
	if index > clock.lastBellIndex {
		crossed = int(index - clock.lastBellIndex)
		clock.lastBellIndex = index
	}
	clock.remaining = clock.remainingAt(elapsed)

	return PollResult{
		Remaining:    clock.remaining,
		Elapsed:      elapsed,
		CrossedBells: crossed,
	}
}

// Status returns the current clock mode.
func (clock *Clock) Status() Status {
	return clock.status
}

// Config returns the active configuration.
func (clock *Clock) Config() model.SessionConfig {
	return clock.config
}

// Remaining returns the remaining seconds observed at the last transition or poll.
func (clock *Clock) Remaining() int {
	return clock.remaining
}

// Progress returns the completed fraction of the session.
func (clock *Clock) Progress() float64 {
	return Progress(clock.remaining, clock.config.TotalSeconds)
}

func (clock *Clock) applyConfig(config model.SessionConfig) {
	clock.config = config.Normalize()
	clock.Reset()
}

// elapsedAt never goes below the last observed elapsed time, so a regressing
// time source cannot move the countdown backwards.
func (clock *Clock) elapsedAt(now time.Duration) time.Duration {
	delta := now - clock.startedAt
	if delta < 0 {
		delta = 0
	}
	elapsed := clock.accumulated + delta
	if elapsed < clock.lastElapsed {
		elapsed = clock.lastElapsed
	}
	return elapsed
}

func (clock *Clock) bellIndex(elapsed time.Duration) int64 {
	return int64(elapsed / clock.config.BellInterval())
}

func (clock *Clock) remainingAt(elapsed time.Duration) int {
	left := clock.config.Total() - elapsed
	if left <= 0 {
		return 0
	}
	seconds := left / time.Second
	if left%time.Second != 0 {
		seconds++
	}
	return int(seconds)
}
