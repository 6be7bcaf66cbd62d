// pattern: Imperative Shell
package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
)

// Running reports whether another instance holds the lock for dataDir and,
// if its pid file is readable, that instance's process ID (0 otherwise).
func Running(dataDir string) (bool, int, error) {
	// Try to acquire the lock; if we succeed, no instance is running.
	lockPath := filepath.Join(dataDir, lockFileName)
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		return false, 0, nil
	}
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check lock: %w", err)
	}
	if locked {
		_ = fl.Unlock()
		return false, 0, nil
	}

	data, err := os.ReadFile(filepath.Join(dataDir, pidFileName))
	if err != nil {
		return true, 0, nil
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return true, 0, nil
	}
	return true, pid, nil
}
