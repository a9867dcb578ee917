// Package lockfile provides exclusive advisory locking for the report file
// dustbench writes, so concurrent runs against the same path don't
// interleave writes.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"
)

// ErrWouldBlock is returned by TryAcquire when the lock is already held.
var ErrWouldBlock = errors.New("lockfile: would block")

// Lock represents a held exclusive lock. Call Close to release it.
type Lock struct {
	file *os.File
}

// lockPath returns path with a ".lock" suffix, the dedicated, stable file
// flock is taken on — never the report file itself, so a concurrent writer
// replacing the report doesn't race the lock's own inode.
func lockPath(path string) string {
	return path + ".lock"
}

// Acquire blocks until an exclusive lock on path's lock file is obtained,
// creating the lock file and its parent directory if necessary.
func Acquire(path string) (*Lock, error) {
	return acquire(path, unix.LOCK_EX)
}

// TryAcquire attempts to obtain the lock without blocking, returning
// ErrWouldBlock if it is already held.
func TryAcquire(path string) (*Lock, error) {
	return acquire(path, unix.LOCK_EX|unix.LOCK_NB)
}

func acquire(path string, how int) (*Lock, error) {
	lp := lockPath(path)

	if err := os.MkdirAll(filepath.Dir(lp), 0o755); err != nil {
		return nil, fmt.Errorf("lockfile: creating lock dir: %w", err)
	}

	f, err := os.OpenFile(lp, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("lockfile: opening %s: %w", lp, err)
	}

	if err := unix.Flock(int(f.Fd()), how); err != nil {
		f.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, ErrWouldBlock
		}
		return nil, fmt.Errorf("lockfile: flock %s: %w", lp, err)
	}

	return &Lock{file: f}, nil
}

// Close releases the lock and closes its file descriptor. Idempotent.
func (l *Lock) Close() error {
	if l.file == nil {
		return nil
	}

	unlockErr := unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		return fmt.Errorf("lockfile: unlocking: %w", unlockErr)
	}
	if closeErr != nil {
		return fmt.Errorf("lockfile: closing: %w", closeErr)
	}
	return nil
}
