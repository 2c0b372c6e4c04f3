package storage

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/score"
)

// Location of the record inside the gdata namespace.
const (
	gdataObject   = "score"
	gdataProperty = "best"
)

func init() {
	registry.Register("gdata", func(cfg config.PersistenceConfig) (registry.Backend, error) {
		s, err := OpenGdata(cfg.AppName)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// GdataStore keeps the best score in the platform data directory.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata namespace for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	if appName == "" {
		return nil, errors.New("storage: empty gdata app name")
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata %q: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

// Name implements registry.Backend.
func (g *GdataStore) Name() string { return "gdata" }

// LoadBest implements registry.Backend.
func (g *GdataStore) LoadBest() (uint32, error) {
	if !g.m.ObjectPropExists(gdataObject, gdataProperty) {
		return 0, ErrNoRecord
	}
	data, err := g.m.LoadObjectProp(gdataObject, gdataProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load gdata record: %w", err)
	}
	best, err := score.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt gdata record: %w", err)
	}
	return best, nil
}

// SaveBest implements registry.Backend.
func (g *GdataStore) SaveBest(best uint32) error {
	if err := g.m.SaveObjectProp(gdataObject, gdataProperty, score.Encode(best)); err != nil {
		return fmt.Errorf("storage: cannot save gdata record: %w", err)
	}
	return nil
}

// ResetBest implements registry.Backend by storing a zero record.
func (g *GdataStore) ResetBest() error {
	return g.SaveBest(0)
}

// Close implements registry.Backend.
func (g *GdataStore) Close() error { return nil }
