// pattern: Imperative Shell
package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
)

const (
	lockFileName = "twoface.lock"
	pidFileName  = "twoface.pid"
)

// Lock acquires an exclusive file lock so only one client drives a data
// directory. Returns the flock handle (caller must defer Cleanup) or an
// error if another instance already holds the lock.
func Lock(dataDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	lockPath := filepath.Join(dataDir, lockFileName)
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another twoface instance is already running")
	}
	return fl, nil
}

// WritePID records the current process ID next to the lock.
func WritePID(dataDir string) error {
	pidPath := filepath.Join(dataDir, pidFileName)
	return os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0600)
}

// Cleanup removes the pid file and releases the file lock.
func Cleanup(dataDir string, fl *flock.Flock) {
	pidPath := filepath.Join(dataDir, pidFileName)
	_ = os.Remove(pidPath)
	if fl != nil {
		_ = fl.Unlock()
	}
}
