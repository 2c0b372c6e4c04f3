// Package storage provides the best-score backends: a raw record file, the
// platform data directory through gdata, and SQLite with run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/score"
)

// ErrNoRecord is returned by LoadBest when no best score was saved yet.
var ErrNoRecord = errors.New("storage: no best score saved")

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return nil
}

// LoadBestOrZero reads the best score from b. A missing record yields 0
// silently; any other failure is logged and also yields 0.
func LoadBestOrZero(b registry.Backend, logger *log.Logger) uint32 {
	if b == nil {
		return 0
	}
	best, err := b.LoadBest()
	if errors.Is(err, ErrNoRecord) {
		logger.Debug("no best score saved yet", "backend", b.Name())
		return 0
	}
	if err != nil {
		logger.Warn("could not load best score, starting from 0", "backend", b.Name(), "error", err)
		return 0
	}
	return best
}

// SaverOrDiscard returns b as a score.Saver. Without a backend the returned
// saver accepts and drops every value.
func SaverOrDiscard(b registry.Backend) score.Saver {
	if b == nil {
		return discard{}
	}
	return b
}

type discard struct{}

func (discard) SaveBest(uint32) error { return nil }
