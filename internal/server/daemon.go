package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/five82/artshelf/internal/state"
)

const closeTimeout = 5 * time.Second

// Run loads the seed, starts the optional watcher and serves until ctx is
// cancelled or the listener fails. A listener failure is returned; a
// cancelled ctx is a clean stop and returns nil.
func Run(ctx context.Context, cfg Config) error {
	store := &state.Store{}
	if err := Reload(cfg.SeedFile, store); err != nil {
		return fmt.Errorf("initial seed load: %w", err)
	}

	ctx, stop := context.WithCancelCause(ctx)
	defer stop(nil)

	if cfg.WatchSeed {
		w, err := NewSeedWatcher(cfg.SeedFile, store)
		if err != nil {
			return err
		}
		go w.Run(ctx)
	}

	srv := NewHTTPServer(cfg.Addr, NewRouter(store), cfg.ReadTimeout)
	go srv.Run(stop)

	<-ctx.Done()
	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	srv.Close(closeCtx)

	if cause := context.Cause(ctx); cause != nil &&
		!errors.Is(cause, context.Canceled) && !errors.Is(cause, context.DeadlineExceeded) {
		return cause
	}
	return nil
}
