package platform

import "errors"

// ErrWakeLockUnsupported indicates the platform offers no way to keep the screen awake.
var ErrWakeLockUnsupported = errors.New("wake lock unsupported")

// WakeLock keeps the display from sleeping while held. Acquire and Release are
// idempotent.
type WakeLock interface {
	Acquire() error
	Release() error
}

// NewWakeLock returns a platform-specific wake lock. reason is shown by
// inhibitor tools that support it.
func NewWakeLock(appName, reason string) WakeLock {
	return newWakeLock(appName, reason)
}
