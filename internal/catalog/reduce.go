package catalog

import (
	"fmt"

	"github.com/five82/artshelf/internal/gallery"
)

// Signal discriminates the notifications a command can raise.
type Signal int

const (
	SignalNone Signal = iota
	SignalAdded
	SignalRemoved
	SignalCleared
)

func (s Signal) String() string {
	switch s {
	case SignalAdded:
		return "added"
	case SignalRemoved:
		return "removed"
	case SignalCleared:
		return "cleared"
	default:
		return "none"
	}
}

// Event is what a command reports besides the new state. Product is set for
// SignalAdded and SignalRemoved.
type Event struct {
	Signal  Signal
	Product gallery.Product
}

// FavoritesChanged reports whether the event requires persisting favorites.
func (e Event) FavoritesChanged() bool {
	return e.Signal != SignalNone
}

// Command is a state transition understood by Reduce.
type Command interface {
	apply(State) (State, Event)
}

// Load replaces the product snapshot. Filter and favorites are kept.
type Load struct{ Products []gallery.Product }

// SetBrand changes the brand selection.
type SetBrand struct{ Brand Brand }

// SetSearch changes the search text.
type SetSearch struct{ Text string }

// ResetFilters clears brand and search text.
type ResetFilters struct{}

// ToggleFavorite adds Product when absent and removes it when present.
type ToggleFavorite struct{ Product gallery.Product }

// RemoveFavorite removes the product with ID, if present.
type RemoveFavorite struct{ ID string }

// ClearFavorites empties the favorite set.
type ClearFavorites struct{}

// ReplaceFavorites installs a set read back from storage.
type ReplaceFavorites struct{ Set FavoriteSet }

// Reduce applies cmd to s and returns the fully recomputed state. It never
// mutates s, so callers may keep the previous state around.
func Reduce(s State, cmd Command) (State, Event) {
	if cmd == nil {
		return s.recompute(), Event{}
	}
	next, ev := cmd.apply(s)
	return next.recompute(), ev
}

// New returns the state for an initial snapshot.
func New(products []gallery.Product) State {
	s, _ := Reduce(State{}, Load{Products: products})
	return s
}

func (c Load) apply(s State) (State, Event) {
	s.Products = gallery.CloneProducts(c.Products)
	return s, Event{}
}

func (c SetBrand) apply(s State) (State, Event) {
	s.Filter.Brand = c.Brand
	return s, Event{}
}

func (c SetSearch) apply(s State) (State, Event) {
	s.Filter.SearchText = c.Text
	return s, Event{}
}

func (ResetFilters) apply(s State) (State, Event) {
	s.Filter = Filter{}
	return s, Event{}
}

func (c ToggleFavorite) apply(s State) (State, Event) {
	if next, removed, ok := s.Favorites.Without(c.Product.ID); ok {
		s.Favorites = next
		return s, Event{Signal: SignalRemoved, Product: removed}
	}
	s.Favorites = s.Favorites.With(c.Product)
	return s, Event{Signal: SignalAdded, Product: c.Product}
}

func (c RemoveFavorite) apply(s State) (State, Event) {
	next, removed, ok := s.Favorites.Without(c.ID)
	if !ok {
		return s, Event{}
	}
	s.Favorites = next
	return s, Event{Signal: SignalRemoved, Product: removed}
}

func (ClearFavorites) apply(s State) (State, Event) {
	if s.Favorites.Len() == 0 {
		return s, Event{}
	}
	s.Favorites = FavoriteSet{}
	return s, Event{Signal: SignalCleared}
}

func (c ReplaceFavorites) apply(s State) (State, Event) {
	s.Favorites = c.Set
	return s, Event{}
}

// String helpers keep command logs readable.

func (c Load) String() string           { return fmt.Sprintf("load(%d products)", len(c.Products)) }
func (c SetBrand) String() string       { return fmt.Sprintf("set-brand(%q, set=%v)", c.Brand.Name, c.Brand.Set) }
func (c SetSearch) String() string      { return fmt.Sprintf("set-search(%q)", c.Text) }
func (ResetFilters) String() string     { return "reset-filters" }
func (c ToggleFavorite) String() string { return fmt.Sprintf("toggle-favorite(%s)", c.Product.ID) }
func (c RemoveFavorite) String() string { return fmt.Sprintf("remove-favorite(%s)", c.ID) }
func (ClearFavorites) String() string   { return "clear-favorites" }
func (c ReplaceFavorites) String() string {
	return fmt.Sprintf("replace-favorites(%d)", c.Set.Len())
}
