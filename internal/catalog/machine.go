package catalog

import (
	"context"
	"log/slog"

	"github.com/five82/artshelf/internal/gallery"
)

// FavoritesStore is the durable side of the favorite set. Load never fails:
// unreadable data comes back as an empty set.
type FavoritesStore interface {
	Load(ctx context.Context) FavoriteSet
	Save(ctx context.Context, set FavoriteSet) error
}

// HistoryStore keeps committed search terms.
type HistoryStore interface {
	Load(ctx context.Context) []string
	Record(ctx context.Context, term string) ([]string, error)
}

// Machine is the library API for synchronous hosts: it holds one State and
// persists favorites inline after each command. Event-loop hosts such as the
// TUI reduce commands themselves and run the stores asynchronously; both
// apply the same focus rules through Refocus and ReplaceFavorites. Machine is
// not safe for concurrent use.
type Machine struct {
	state     State
	favorites FavoritesStore
	history   HistoryStore
	terms     []string
}

// NewMachine returns an empty machine. Either store may be nil, in which case
// that part of the state lives only in memory.
func NewMachine(favorites FavoritesStore, history HistoryStore) *Machine {
	return &Machine{
		state:     New(nil),
		favorites: favorites,
		history:   history,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// IsFavorite reports whether id is currently a favorite.
func (m *Machine) IsFavorite(id string) bool {
	return m.state.IsFavorite(id)
}

// History returns the search history as last loaded or recorded.
func (m *Machine) History() []string {
	return append([]string(nil), m.terms...)
}

// Apply reduces cmd and persists the favorite set when it changed. A failed
// save is logged and the in-memory result stands.
func (m *Machine) Apply(ctx context.Context, cmd Command) (State, Event) {
	const op = "catalog.Machine.Apply"

	next, ev := Reduce(m.state, cmd)
	m.state = next
	if ev.FavoritesChanged() && m.favorites != nil {
		if err := m.favorites.Save(ctx, next.Favorites); err != nil {
			slog.With("op", op).Error("failed to persist favorites",
				"signal", ev.Signal.String(),
				"favorites", next.Favorites.Len(),
				"err", err)
		}
	}
	return m.state, ev
}

// Load installs a fresh product snapshot.
func (m *Machine) Load(products []gallery.Product) State {
	s, _ := m.Apply(context.Background(), Load{Products: products})
	return s
}

// SetBrandFilter selects a brand; AllBrands() shows every brand.
func (m *Machine) SetBrandFilter(brand Brand) State {
	s, _ := m.Apply(context.Background(), SetBrand{Brand: brand})
	return s
}

// SetSearchText sets the name search.
func (m *Machine) SetSearchText(text string) State {
	s, _ := m.Apply(context.Background(), SetSearch{Text: text})
	return s
}

// ResetFilters clears brand and search.
func (m *Machine) ResetFilters() State {
	s, _ := m.Apply(context.Background(), ResetFilters{})
	return s
}

// ToggleFavorite adds or removes p and persists the result.
func (m *Machine) ToggleFavorite(ctx context.Context, p gallery.Product) (State, Event) {
	return m.Apply(ctx, ToggleFavorite{Product: p})
}

// RemoveFavorite removes id and persists the result when something changed.
func (m *Machine) RemoveFavorite(ctx context.Context, id string) (State, Event) {
	return m.Apply(ctx, RemoveFavorite{ID: id})
}

// ClearFavorites empties the favorite set and persists it.
func (m *Machine) ClearFavorites(ctx context.Context) (State, Event) {
	return m.Apply(ctx, ClearFavorites{})
}

// CommitSearch makes term the active search text and records it in the
// history store. The in-memory history follows the store's answer even when
// the write failed.
func (m *Machine) CommitSearch(ctx context.Context, term string) State {
	const op = "catalog.Machine.CommitSearch"

	s, _ := m.Apply(ctx, SetSearch{Text: term})
	if m.history == nil {
		return s
	}
	terms, err := m.history.Record(ctx, term)
	if err != nil {
		slog.With("op", op).Error("failed to persist search history", "err", err)
	}
	m.terms = terms
	return s
}

// Reactivate is the focus hook: it re-reads durable stores and clears the
// transient filter. The product snapshot is left to the caller's next Load.
func (m *Machine) Reactivate(ctx context.Context) State {
	if m.favorites != nil {
		m.state, _ = Reduce(m.state, ReplaceFavorites{Set: m.favorites.Load(ctx)})
	}
	if m.history != nil {
		m.terms = m.history.Load(ctx)
	}
	m.state = Refocus(m.state)
	return m.state
}

// Refocus applies what regaining focus does to the in-memory state: the
// transient filter is cleared, products and favorites are kept. Reloading the
// favorites from storage is the host's job and arrives as ReplaceFavorites.
func Refocus(s State) State {
	s, _ = Reduce(s, ResetFilters{})
	return s
}
