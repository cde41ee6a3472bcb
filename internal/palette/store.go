package palette

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Store holds the current catalog snapshot. Readers never block; a reload
// builds a complete new snapshot and swaps it in.
type Store struct {
	current     atomic.Pointer[Catalog]
	overlayPath string
	logger      *slog.Logger

	mu        sync.Mutex // serializes reloads and listener registration
	listeners []func(*Catalog)
}

// NewStore creates a store seeded with the builtin catalog. If overlayPath
// is set the overlay is applied immediately; a broken overlay is an error
// at startup.
func NewStore(overlayPath string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{overlayPath: overlayPath, logger: logger}
	s.current.Store(Builtin())
	if overlayPath != "" {
		if err := s.Reload(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// OverlayPath returns the overlay file the store reloads from.
func (s *Store) OverlayPath() string {
	return s.overlayPath
}

// OnSwap registers fn to run after every swap with the new snapshot.
func (s *Store) OnSwap(fn func(*Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Swap installs c as the current snapshot and notifies listeners.
func (s *Store) Swap(c *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swapLocked(c)
}

func (s *Store) swapLocked(c *Catalog) {
	s.current.Store(c)
	for _, fn := range s.listeners {
		fn(c)
	}
}

// Reload rebuilds the catalog from the builtin data and the overlay file.
// On error the current snapshot is kept. A missing overlay file reverts to
// the builtin catalog.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := Builtin()
	if s.overlayPath == "" {
		s.swapLocked(base)
		return nil
	}

	o, found, err := LoadOverlay(s.overlayPath)
	if err != nil {
		s.logger.Warn("catalog overlay rejected, keeping current catalog",
			"path", s.overlayPath,
			"error", err,
		)
		return err
	}

	next, err := Merge(base, o)
	if err != nil {
		s.logger.Warn("catalog overlay rejected, keeping current catalog",
			"path", s.overlayPath,
			"error", err,
		)
		return err
	}

	palettes, themes := next.Len()
	s.swapLocked(next)
	s.logger.Info("catalog reloaded",
		"path", s.overlayPath,
		"overlay_found", found,
		"palettes", palettes,
		"themes", themes,
	)
	return nil
}
