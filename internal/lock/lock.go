package lock

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	pollInterval   = 500 * time.Millisecond
)

// Lock serializes environment mutation for one project directory, using
// mkdir atomicity in the system temp dir.
type Lock struct {
	dir string
}

// New creates a lock scoped to the given project directory.
func New(projectDir string) *Lock {
	hash := fmt.Sprintf("%x", md5.Sum([]byte(projectDir)))
	return &Lock{dir: filepath.Join(os.TempDir(), "algolab-lock-"+hash)}
}

// Acquire blocks until the lock is held or timeout passes. Locks left by
// dead processes are broken; a lock held by a live process makes Acquire
// fail after the timeout rather than stealing it.
func (l *Lock) Acquire(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if err := os.Mkdir(l.dir, 0755); err == nil {
			_ = os.WriteFile(filepath.Join(l.dir, "pid"), []byte(strconv.Itoa(os.Getpid())), 0644)
			return nil
		}

		if l.isStale() {
			os.RemoveAll(l.dir)
			continue
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("another setup run holds %s (gave up after %s)", l.dir, timeout)
		}

		time.Sleep(pollInterval)
	}
}

// Release releases the lock.
func (l *Lock) Release() {
	os.RemoveAll(l.dir)
}

// isStale reports whether the lock holder is gone.
func (l *Lock) isStale() bool {
	data, err := os.ReadFile(filepath.Join(l.dir, "pid"))
	if err != nil {
		return false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return true // corrupt PID file
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return true
	}
	// On Unix, signal 0 checks existence without sending a signal
	err = proc.Signal(syscall.Signal(0))
	return err != nil
}
