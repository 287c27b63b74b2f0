package session

import "time"

// TimeSource returns a non-decreasing timestamp measured from an arbitrary epoch.
type TimeSource interface {
	Now() time.Duration
}

// SystemTimeSource measures time since its creation using the runtime monotonic clock.
type SystemTimeSource struct {
	epoch time.Time
}

// NewSystemTimeSource creates a time source anchored at the current instant.
func NewSystemTimeSource() *SystemTimeSource {
	return &SystemTimeSource{epoch: time.Now()}
}

// Now returns the monotonic duration since the epoch. Wall clock adjustments do not affect it.
func (source *SystemTimeSource) Now() time.Duration {
	return time.Since(source.epoch)
}
