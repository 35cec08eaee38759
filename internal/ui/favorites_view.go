package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/artshelf/internal/catalog"
	"github.com/five82/artshelf/internal/gallery"
)

// handleFavoritesKey processes keyboard input for the favorites view.
func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.catalog.Favorites.Items()
	count := len(items)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.favoriteRow < count-1 {
			m.favoriteRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.favoriteRow > 0 {
			m.favoriteRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.favoriteRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.favoriteRow = maxInt(count-1, 0)

	case key.Matches(msg, m.keys.Open):
		if m.favoriteRow < count {
			m.openDetail(items[m.favoriteRow], ViewFavorites)
		}

	case key.Matches(msg, m.keys.Remove), key.Matches(msg, m.keys.ToggleFavorite):
		if m.favoriteRow < count {
			return m.requestRemoval(items[m.favoriteRow])
		}

	case key.Matches(msg, m.keys.RemoveAll):
		if count >= RemoveAllMinimum {
			return m.requestRemoveAll(count)
		}

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadFavorites()

	case key.Matches(msg, m.keys.Escape):
		return m.switchView(ViewCatalog)
	}

	return m, nil
}

// requestRemoval removes p, behind a confirmation when the preference asks
// for one.
func (m Model) requestRemoval(p gallery.Product) (tea.Model, tea.Cmd) {
	cmd := catalog.RemoveFavorite{ID: p.ID}
	if !m.prefs.ConfirmRemovals {
		return m.applyFavorites(cmd)
	}
	name := p.Name
	if name == "" {
		name = p.ID
	}
	m.modal = newConfirmModal("Remove favorite",
		fmt.Sprintf("Remove %q from your favorites?", name), cmd)
	return m, nil
}

func (m Model) requestRemoveAll(count int) (tea.Model, tea.Cmd) {
	cmd := catalog.ClearFavorites{}
	if !m.prefs.ConfirmRemovals {
		return m.applyFavorites(cmd)
	}
	m.modal = newConfirmModal("Remove all favorites",
		fmt.Sprintf("Remove all %d favorites? This cannot be undone.", count), cmd)
	return m, nil
}

// renderFavorites renders the favorites list in insertion order.
func (m Model) renderFavorites() string {
	height := m.contentHeight()
	inner := maxInt(m.width-2, 1)
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()

	items := m.catalog.Favorites.Items()
	title := fmt.Sprintf("Favorites (%d)", len(items))

	if len(items) == 0 {
		body := bg.FillLine(bg.Render("No favorites yet. Press f on a product in the catalog to add one.", styles.MutedText), inner)
		return m.renderBox(title, body, m.width, height, true)
	}

	visible := maxInt(height-3, 1)
	start := scrollStart(m.favoriteRow, visible)
	end := minInt(len(items), start+visible)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderProductRow(items[i], false, i == m.favoriteRow, inner))
	}
	return m.renderBox(title, strings.Join(rows, "\n"), m.width, height, true)
}
