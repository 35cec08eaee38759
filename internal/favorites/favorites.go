// Package favorites persists the favorite set as one JSON array of products
// under a single key.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/five82/artshelf/internal/catalog"
	"github.com/five82/artshelf/internal/gallery"
	"github.com/five82/artshelf/internal/kvstore"
)

// Key is the storage key of the favorites blob.
const Key = "favorites"

// Store reads and writes the favorite set.
type Store struct {
	kv kvstore.Store
}

var _ catalog.FavoritesStore = (*Store)(nil)

// New returns a Store over kv.
func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Load returns the persisted set. Missing, unreadable or corrupt data yields
// an empty set; the cause is logged.
func (s *Store) Load(ctx context.Context) catalog.FavoriteSet {
	const op = "favorites.Load"
	log := slog.With("op", op)

	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		log.Warn("failed to read favorites", "err", err)
		return catalog.FavoriteSet{}
	}
	if !ok || raw == "" {
		return catalog.FavoriteSet{}
	}
	var products []gallery.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Warn("discarding corrupt favorites", "err", err)
		return catalog.FavoriteSet{}
	}
	return catalog.NewFavoriteSet(products...)
}

// Save writes set, replacing whatever was stored.
func (s *Store) Save(ctx context.Context, set catalog.FavoriteSet) error {
	const op = "favorites.Save"

	items := set.Items()
	if items == nil {
		items = []gallery.Product{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear removes the stored set.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, Key); err != nil {
		return fmt.Errorf("favorites.Clear: %w", err)
	}
	return nil
}
