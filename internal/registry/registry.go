// Package registry provides a global registry of best-score backends.
// Backends register themselves in init() functions, allowing the commands
// to pick one by name from configuration without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/flappy-pebble/internal/config"
)

// Backend is durable storage for the best score.
type Backend interface {
	// Name returns the identifier the backend was registered under.
	Name() string

	// LoadBest reads the persisted best score. Implementations return
	// an error wrapping storage.ErrNoRecord when nothing was saved yet.
	LoadBest() (uint32, error)

	// SaveBest overwrites the persisted best score.
	SaveBest(best uint32) error

	// ResetBest removes the persisted best score.
	ResetBest() error

	// Close releases any resources held by the backend.
	Close() error
}

// Run is one finished run as recorded by backends with history support.
type Run struct {
	ID        int64
	Score     uint32
	NewBest   bool
	Seed      int64
	Ticks     int
	CreatedAt time.Time
}

// RunRecorder is implemented by backends that also keep run history.
type RunRecorder interface {
	SaveRun(run Run) (int64, error)
	TopRuns(limit int) ([]Run, error)
}

// Factory opens a backend from the persistence configuration.
type Factory func(cfg config.PersistenceConfig) (Backend, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
}

// List returns the names of all registered backends, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for name := range factories {
		result = append(result, name)
	}

	sort.Strings(result)

	return result
}

// Create opens the backend named by cfg.Backend.
// Returns an error if the backend is not registered or fails to open.
func Create(cfg config.PersistenceConfig) (Backend, error) {
	mu.RLock()
	f, ok := factories[cfg.Backend]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", cfg.Backend)
	}

	return f(cfg)
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
