package platform

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
)

const (
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
	esContinuous      = 0x80000000
)

// threadWakeLock pins a goroutine to one OS thread, since the execution state
// belongs to the thread that set it.
type threadWakeLock struct {
	mu      sync.Mutex
	release chan struct{}
	done    chan struct{}
}

func newWakeLock(_, _ string) WakeLock {
	return &threadWakeLock{}
}

func (lock *threadWakeLock) Acquire() error {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	if lock.release != nil {
		return nil
	}

	release := make(chan struct{})
	done := make(chan struct{})
	result := make(chan error, 1)
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := setThreadExecutionState(esContinuous | esSystemRequired | esDisplayRequired); err != nil {
			result <- err
			return
		}
		result <- nil
		<-release
		_ = setThreadExecutionState(esContinuous)
	}()

	if err := <-result; err != nil {
		return err
	}
	lock.release = release
	lock.done = done
	return nil
}

func (lock *threadWakeLock) Release() error {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	if lock.release == nil {
		return nil
	}
	close(lock.release)
	<-lock.done
	lock.release = nil
	lock.done = nil
	return nil
}

func setThreadExecutionState(flags uint32) error {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	proc := kernel32.NewProc("SetThreadExecutionState")
	previous, _, err := proc.Call(uintptr(flags))
	if previous == 0 {
		return fmt.Errorf("set thread execution state: %w", err)
	}
	return nil
}
