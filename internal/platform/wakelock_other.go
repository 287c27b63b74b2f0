//go:build !linux && !darwin && !windows

package platform

type unsupportedWakeLock struct{}

func newWakeLock(_, _ string) WakeLock {
	return unsupportedWakeLock{}
}

func (unsupportedWakeLock) Acquire() error { return ErrWakeLockUnsupported }

func (unsupportedWakeLock) Release() error { return nil }
