// Package lock serialises invocations that share a data directory.
//
// Stores are not safe for concurrent use across processes. Locking is
// opt-in (config "locking: true") and advisory only.
package lock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const fileName = ".lock"

// ErrLocked is returned by TryAcquire when another process holds the lock.
var ErrLocked = errors.New("data directory is locked by another process")

// Lock is an exclusive advisory lock on a data directory.
type Lock struct {
	fl *flock.Flock
}

func path(dir string) string { return filepath.Join(dir, fileName) }

// TryAcquire takes the lock without waiting.
func TryAcquire(dir string) (*Lock, error) {
	fl := flock.New(path(dir))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", dir, err)
	}
	if !ok {
		_ = fl.Close()
		return nil, ErrLocked
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. The lock file stays on disk.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
