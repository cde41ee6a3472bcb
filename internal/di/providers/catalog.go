package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/logger"
	"github.com/hueforge/hueforge/internal/palette"
)

// ProvideCatalogStore provides the palette catalog, with the overlay applied
// when one is configured.
func ProvideCatalogStore(i do.Injector) (*palette.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	store, err := palette.NewStore(cfg.Catalog.OverlayPath, log.Logger)
	if err != nil {
		return nil, err
	}

	palettes, themes := store.Catalog().Len()
	log.Info("Catalog loaded", "palettes", palettes, "themes", themes)

	return store, nil
}

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*palette.Index
}

// Shutdown implements do.Shutdowner.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the in-memory bleve index. It is rebuilt after
// every catalog swap.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	store := do.MustInvoke[*palette.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := palette.NewIndex(store.Catalog(), log.Logger)
	if err != nil {
		return nil, err
	}

	store.OnSwap(func(c *palette.Catalog) {
		if err := index.Rebuild(c); err != nil {
			log.Warn("Search index rebuild failed, keeping previous index", "error", err)
		}
	})

	return &SearchIndexHandle{Index: index}, nil
}

// CatalogWatcherHandle wraps the overlay watcher with shutdown capability.
// Watcher is nil when no overlay is configured or watching is disabled.
type CatalogWatcherHandle struct {
	*palette.Watcher
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdowner.
func (h *CatalogWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	h.cancel()
	return h.Watcher.Stop()
}

// ProvideCatalogWatcher provides the overlay file watcher.
func ProvideCatalogWatcher(i do.Injector) (*CatalogWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	store := do.MustInvoke[*palette.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	// The index must be subscribed before the first reload can happen.
	_ = do.MustInvoke[*SearchIndexHandle](i)

	if cfg.Catalog.OverlayPath == "" || !cfg.Catalog.Watch {
		log.Info("Catalog overlay watching disabled")
		return &CatalogWatcherHandle{}, nil
	}

	w, err := palette.NewWatcher(store, 0, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("Catalog watcher error", "error", err)
		}
	}()

	go func() {
		for {
			select {
			case err := <-w.Reloaded():
				if err != nil {
					log.Warn("Catalog reload failed, keeping previous catalog", "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return &CatalogWatcherHandle{Watcher: w, cancel: cancel}, nil
}
