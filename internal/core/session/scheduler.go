package session

import "time"

// DefaultFrameInterval approximates a 60 Hz refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// CancelFunc revokes a scheduled callback. Calling it more than once is safe.
type CancelFunc func()

// Scheduler requests a single callback "soon", typically on the next frame.
type Scheduler interface {
	Schedule(callback func()) CancelFunc
}

// FrameScheduler fires each requested callback once after a fixed frame interval.
type FrameScheduler struct {
	interval time.Duration
}

// NewFrameScheduler creates a scheduler with the given frame interval.
func NewFrameScheduler(interval time.Duration) *FrameScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameScheduler{interval: interval}
}

// Schedule arms a one-shot timer for callback.
func (scheduler *FrameScheduler) Schedule(callback func()) CancelFunc {
	timer := time.AfterFunc(scheduler.interval, callback)
	return func() {
		timer.Stop()
	}
}
