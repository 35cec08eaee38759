package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/artshelf/internal/catalog"
	"github.com/five82/artshelf/internal/gallery"
	"github.com/five82/artshelf/internal/logtail"
	"github.com/five82/artshelf/internal/prefs"
)

// HistoryStore is the search history as the UI uses it. *history.Store
// implements it.
type HistoryStore interface {
	Load(ctx context.Context) []string
	Record(ctx context.Context, term string) ([]string, error)
	Remove(ctx context.Context, term string) ([]string, error)
	Clear(ctx context.Context) error
}

// Messages

type productsMsg struct {
	products []gallery.Product
	err      error
}

type productMsg struct {
	id       string
	products []gallery.Product
	err      error
}

type favoritesLoadedMsg struct {
	set catalog.FavoriteSet
}

type favoritesSavedMsg struct {
	err error
}

type historyMsg struct {
	terms []string
	err   error
}

type logLinesMsg struct {
	entries []logtail.Entry
	err     error
}

type prefsSavedMsg struct {
	err error
}

type toastExpiredMsg struct {
	seq int
}

type confirmedMsg struct {
	cmd catalog.Command
}

// Commands

func fetchProductsCmd(ctx context.Context, client gallery.CatalogFetcher) tea.Cmd {
	return func() tea.Msg {
		const op = "ui.fetchProducts"
		log := slog.With("op", op)

		products, err := client.FetchProducts(ctx)
		if err != nil {
			log.Warn("failed to fetch products", "err", err)
			return productsMsg{err: err}
		}
		log.Debug("products fetched", "count", len(products))
		return productsMsg{products: products}
	}
}

func fetchProductCmd(ctx context.Context, client gallery.CatalogFetcher, id string) tea.Cmd {
	return func() tea.Msg {
		const op = "ui.fetchProduct"
		log := slog.With("op", op, "id", id)

		products, err := client.FetchProduct(ctx, id)
		if err != nil {
			log.Warn("failed to fetch product", "err", err)
		}
		return productMsg{id: id, products: products, err: err}
	}
}

func loadFavoritesCmd(ctx context.Context, store catalog.FavoritesStore) tea.Cmd {
	return func() tea.Msg {
		return favoritesLoadedMsg{set: store.Load(ctx)}
	}
}

// saveFavoritesCmd persists set. Saves are not serialized; the last one to
// reach storage wins.
func saveFavoritesCmd(ctx context.Context, store catalog.FavoritesStore, set catalog.FavoriteSet) tea.Cmd {
	return func() tea.Msg {
		const op = "ui.saveFavorites"
		log := slog.With("op", op)

		if err := store.Save(ctx, set); err != nil {
			log.Error("failed to save favorites", "err", err, "count", set.Len())
			return favoritesSavedMsg{err: err}
		}
		return favoritesSavedMsg{}
	}
}

func loadHistoryCmd(ctx context.Context, store HistoryStore) tea.Cmd {
	return func() tea.Msg {
		return historyMsg{terms: store.Load(ctx)}
	}
}

func recordSearchCmd(ctx context.Context, store HistoryStore, term string) tea.Cmd {
	return func() tea.Msg {
		const op = "ui.recordSearch"
		terms, err := store.Record(ctx, term)
		if err != nil {
			slog.With("op", op).Error("failed to save search history", "err", err)
		}
		return historyMsg{terms: terms, err: err}
	}
}

func forgetSearchCmd(ctx context.Context, store HistoryStore, term string) tea.Cmd {
	return func() tea.Msg {
		const op = "ui.forgetSearch"
		terms, err := store.Remove(ctx, term)
		if err != nil {
			slog.With("op", op).Error("failed to save search history", "err", err)
		}
		return historyMsg{terms: terms, err: err}
	}
}

func clearHistoryCmd(ctx context.Context, store HistoryStore) tea.Cmd {
	return func() tea.Msg {
		const op = "ui.clearHistory"
		if err := store.Clear(ctx); err != nil {
			slog.With("op", op).Error("failed to clear search history", "err", err)
			return historyMsg{err: err}
		}
		return historyMsg{}
	}
}

func readLogCmd(path string, maxLines int) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Tail(path, maxLines)
		return logLinesMsg{entries: entries, err: err}
	}
}

func savePrefsCmd(path string, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		const op = "ui.savePrefs"
		if err := prefs.Save(path, p); err != nil {
			slog.With("op", op).Warn("failed to save preferences", "err", err, "path", path)
			return prefsSavedMsg{err: err}
		}
		return prefsSavedMsg{}
	}
}

func toastExpireCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
