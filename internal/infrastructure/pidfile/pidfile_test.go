package pidfile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/infrastructure/pidfile"
)

func TestLock_AcquireAndRelease(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "sushibar.pid")
	lock := pidfile.New(path)

	// Act
	require.NoError(t, lock.Acquire())
	pid, ok := lock.Owner()

	// Assert
	assert.True(t, ok)
	assert.Equal(t, os.Getpid(), pid)
	require.NoError(t, lock.Release())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLock_ReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sushibar.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0644))

	err := pidfile.New(path).Acquire()

	assert.NoError(t, err)
}

func TestLock_RefusesLiveOwner(t *testing.T) {
	// Arrange: the parent process is alive for the whole test
	path := filepath.Join(t.TempDir(), "sushibar.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getppid())), 0644))

	// Act
	err := pidfile.New(path).Acquire()

	// Assert
	assert.ErrorIs(t, err, pidfile.ErrAlreadyRunning)
}

func TestLock_ReleaseLeavesForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sushibar.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getppid())), 0644))

	require.NoError(t, pidfile.New(path).Release())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
