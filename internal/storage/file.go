package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/score"
)

func init() {
	registry.Register("file", func(cfg config.PersistenceConfig) (registry.Backend, error) {
		s, err := OpenFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// FileStore keeps the best score as a bare 4-byte big-endian file.
type FileStore struct {
	path string
}

// OpenFile prepares a file store at path. The file itself is created on
// the first save.
func OpenFile(path string) (*FileStore, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, errors.New("storage: empty best score path")
	}
	return &FileStore{path: p}, nil
}

// Name implements registry.Backend.
func (f *FileStore) Name() string { return "file" }

// Path returns the resolved record path.
func (f *FileStore) Path() string { return f.path }

// LoadBest implements registry.Backend.
func (f *FileStore) LoadBest() (uint32, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s", ErrNoRecord, f.path)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	best, err := score.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt record %s: %w", f.path, err)
	}
	return best, nil
}

// SaveBest implements registry.Backend. The record is written to a
// temporary file and renamed into place so a crash never leaves a
// truncated record behind.
func (f *FileStore) SaveBest(best uint32) error {
	if err := ensureDir(f.path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".best_score-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(score.Encode(best)); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("storage: cannot write best score: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("storage: cannot sync best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// ResetBest implements registry.Backend.
func (f *FileStore) ResetBest() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove %s: %w", f.path, err)
	}
	return nil
}

// Close implements registry.Backend.
func (f *FileStore) Close() error { return nil }
