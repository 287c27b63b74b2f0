//go:build linux || darwin

package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// processWakeLock holds an inhibitor process for as long as the lock is held.
type processWakeLock struct {
	mu      sync.Mutex
	command []string
	cmd     *exec.Cmd
}

func (lock *processWakeLock) Acquire() error {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	if lock.cmd != nil {
		return nil
	}
	if len(lock.command) == 0 {
		return ErrWakeLockUnsupported
	}

	cmd := exec.Command(lock.command[0], lock.command[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", lock.command[0], err)
	}
	lock.cmd = cmd
	return nil
}

func (lock *processWakeLock) Release() error {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	if lock.cmd == nil {
		return nil
	}
	cmd := lock.cmd
	lock.cmd = nil

	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop %s: %w", lock.command[0], err)
	}
	_ = cmd.Wait()
	return nil
}

func (lock *processWakeLock) held() bool {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	return lock.cmd != nil
}
