package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrNotLoaded is returned by Snapshot while no document is loaded: before the
// first load and after a failed one, where it wraps the load error.
var ErrNotLoaded = errors.New("store: document not loaded")

// Catalog owns the current Store for a session and swaps it wholesale on
// reload.
type Catalog interface {
	// Snapshot returns the current store, or the error of the last load.
	Snapshot() (*Store, error)
	// Reload fetches the source again and replaces the store.
	Reload(ctx context.Context) error
	// Watch reloads on source changes until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
	// Source names where the document comes from.
	Source() string
	// LoadedAt is the time of the last successful load.
	LoadedAt() time.Time
}

// Open builds a catalog for the configured source and performs the initial
// load. A failed load is not returned here; it becomes the catalog's state and
// is reported by Snapshot.
func Open(ctx context.Context, cfg Config) (Catalog, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	src, err := ParseSource(cfg.Source())
	if err != nil {
		return nil, err
	}
	if hs, ok := src.(HTTPSource); ok && cfg.CacheDir() != "" {
		hs.Cache = NewHTTPCache(cfg.CacheDir())
		src = hs
	}
	c := NewCatalog(src)
	if err := c.Reload(ctx); err != nil {
		slog.Error("store: initial load failed", "source", src.String(), "error", err)
	}
	return c, nil
}

// NewCatalog returns an empty catalog for src. Call Reload to load it.
func NewCatalog(src Source) Catalog {
	return &catalog{src: src, err: ErrNotLoaded}
}

type catalog struct {
	src Source

	mu       sync.RWMutex
	st       *Store
	err      error
	loadedAt time.Time
}

func (c *catalog) Snapshot() (*Store, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return nil, c.err
	}
	return c.st, nil
}

// Reload replaces the store on success. On failure the previous store is
// dropped so no stale data is shown next to the error.
func (c *catalog) Reload(ctx context.Context) error {
	st, err := Load(ctx, c.src)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.st = nil
		c.err = fmt.Errorf("%w: %w", ErrNotLoaded, err)
		return err
	}
	c.st = st
	c.err = nil
	c.loadedAt = time.Now()
	counts := st.Counts()
	slog.Debug("store: loaded", "source", c.src.String(),
		"teachers", counts.Teachers, "cards", counts.Cards)
	return nil
}

func (c *catalog) Source() string {
	return c.src.String()
}

func (c *catalog) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// Static wraps an already decoded store, mostly for tests and embedding.
func Static(st *Store) Catalog {
	return &static{st: st}
}

type static struct {
	st *Store
}

func (s *static) Snapshot() (*Store, error) {
	if s.st == nil {
		return nil, ErrNotLoaded
	}
	return s.st, nil
}

func (s *static) Reload(context.Context) error { return nil }

func (s *static) Watch(context.Context) (<-chan Event, error) {
	return nil, fmt.Errorf("store: static catalog cannot be watched")
}

func (s *static) Source() string { return "memory" }

func (s *static) LoadedAt() time.Time { return time.Time{} }
