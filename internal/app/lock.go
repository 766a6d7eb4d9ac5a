package app

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning means another controller serves the same socket.
var ErrAlreadyRunning = errors.New("another mpv-context-menu instance is attached to this socket")

// LockPath returns the lock file guarding socket.
func LockPath(socket string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(socket))
	return filepath.Join(os.TempDir(), fmt.Sprintf("mpv-context-menu-%08x.lock", h.Sum32()))
}

// acquireLock takes the per-socket lock without blocking.
func acquireLock(socket string) (*flock.Flock, error) {
	lock := flock.New(LockPath(socket))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return lock, nil
}
