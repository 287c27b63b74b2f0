package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceLock is held by the first running desktop instance. Later instances
// knock on it so the holder can bring its window forward.
type InstanceLock struct {
	listener net.Listener
	knocks   chan struct{}
	once     sync.Once
}

// LockInstance binds a localhost port derived from appName. When the port is
// taken, the current holder is notified and ErrAlreadyRunning is returned.
func LockInstance(appName string) (*InstanceLock, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		knock(address)
		return nil, fmt.Errorf("lock %s: %w", address, ErrAlreadyRunning)
	}

	lock := &InstanceLock{listener: listener, knocks: make(chan struct{}, 1)}
	go lock.accept()
	return lock, nil
}

// Knocks delivers one value per later launch attempt. Bursts are coalesced.
func (lock *InstanceLock) Knocks() <-chan struct{} {
	return lock.knocks
}

// Address returns the bound address.
func (lock *InstanceLock) Address() string {
	if lock == nil || lock.listener == nil {
		return ""
	}
	return lock.listener.Addr().String()
}

// Unlock frees the port.
func (lock *InstanceLock) Unlock() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	var err error
	lock.once.Do(func() {
		err = lock.listener.Close()
	})
	return err
}

func (lock *InstanceLock) accept() {
	for {
		conn, err := lock.listener.Accept()
		if err != nil {
			return
		}
		_ = conn.Close()
		select {
		case lock.knocks <- struct{}{}:
		default:
		}
	}
}

func knock(address string) {
	conn, err := net.DialTimeout("tcp", address, 500*time.Millisecond)
	if err == nil {
		_ = conn.Close()
	}
}

func instanceAddress(appName string) string {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	port := minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
	return fmt.Sprintf("127.0.0.1:%d", port)
}
