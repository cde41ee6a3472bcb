package palette

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long the overlay file must stay quiet before a
// reload. Editors often write a file in several steps.
const DefaultSettleDelay = 200 * time.Millisecond

// Watcher reloads a Store when its overlay file changes.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file by rename are still seen.
type Watcher struct {
	store  *Store
	path   string
	settle time.Duration
	logger *slog.Logger
	fs     *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer

	reloaded chan error
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the store's overlay file. A zero settle
// delay uses DefaultSettleDelay.
func NewWatcher(store *Store, settle time.Duration, logger *slog.Logger) (*Watcher, error) {
	if store.OverlayPath() == "" {
		return nil, fmt.Errorf("catalog watcher: no overlay path configured")
	}
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	path := filepath.Clean(store.OverlayPath())
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		store:    store,
		path:     path,
		settle:   settle,
		logger:   logger,
		fs:       fw,
		reloaded: make(chan error, 1),
		done:     make(chan struct{}),
	}, nil
}

// Reloaded delivers the result of each reload triggered by a file change.
// Results are dropped if nobody reads them.
func (w *Watcher) Reloaded() <-chan error {
	return w.reloaded
}

// Start processes file events until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info("watching catalog overlay", "path", w.path, "settle", w.settle)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.done:
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.logger.Debug("catalog overlay changed", "path", w.path, "op", event.Op.String())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.settle, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}

	err := w.store.Reload()

	select {
	case w.reloaded <- err:
	default:
	}
}

// Stop releases the fsnotify watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		err = w.fs.Close()
	})
	return err
}
