package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/artshelf/internal/seed"
	"github.com/five82/artshelf/internal/state"
)

const reloadDelay = 150 * time.Millisecond

// SeedWatcher reloads the seed file into a store whenever it changes.
type SeedWatcher struct {
	path    string
	store   *state.Store
	watcher *fsnotify.Watcher
}

// NewSeedWatcher watches the directory holding path. Editors commonly save by
// renaming a temporary file over the original, which a watch on the file
// itself would miss.
func NewSeedWatcher(path string, store *state.Store) (*SeedWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve seed path %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &SeedWatcher{path: abs, store: store, watcher: w}, nil
}

// Run processes events until ctx is done. Bursts of events are coalesced into
// one reload.
func (sw *SeedWatcher) Run(ctx context.Context) {
	const op = "SeedWatcher.Run"
	log := slog.With("op", op)

	defer func() { _ = sw.watcher.Close() }()

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(reloadDelay)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "err", err)
		case <-timer.C:
			Reload(sw.path, sw.store)
		}
	}
}

// Reload reads path into store. A failed read keeps the previous catalog.
func Reload(path string, store *state.Store) error {
	const op = "server.Reload"
	log := slog.With("op", op)

	products, err := seed.LoadFile(path)
	store.Update(products, path, err)
	if err != nil {
		log.Error("seed reload failed, serving previous catalog", "path", path, "err", err)
		return err
	}
	log.Info("seed loaded", "path", path, "products", len(products))
	return nil
}
