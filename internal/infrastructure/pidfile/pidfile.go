package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// ErrAlreadyRunning is returned when a live process holds the lock
var ErrAlreadyRunning = errors.New("another sushibar server is running")

// Lock keeps one `sushibar serve` per pid file so two servers never write
// the same database run tables
type Lock struct {
	path string
}

func New(path string) *Lock {
	return &Lock{path: path}
}

// Owner returns the pid recorded in the file, if the file holds a valid one
func (l *Lock) Owner() (int, bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// Acquire writes the current pid. A stale or unreadable file is replaced.
func (l *Lock) Acquire() error {
	if pid, ok := l.Owner(); ok && pid != os.Getpid() && isAlive(pid) {
		return fmt.Errorf("%w (pid %d, %s)", ErrAlreadyRunning, pid, l.path)
	}
	if err := os.WriteFile(l.path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644); err != nil {
		return fmt.Errorf("failed to write pid file: %w", err)
	}
	return nil
}

// Release removes the file if this process still owns it
func (l *Lock) Release() error {
	if pid, ok := l.Owner(); ok && pid != os.Getpid() {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove pid file: %w", err)
	}
	return nil
}

// isAlive probes with signal 0. EPERM means the process exists under another user.
func isAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
