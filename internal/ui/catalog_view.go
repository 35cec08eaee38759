package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artshelf/internal/catalog"
	"github.com/five82/artshelf/internal/gallery"
	"github.com/five82/artshelf/internal/searchbox"
)

// handleCatalogKey processes keyboard input for the catalog view.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.catalog.Filtered)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = maxInt(count-1, 0)

	case key.Matches(msg, m.keys.NextBrand):
		m.cycleBrand(1)
	case key.Matches(msg, m.keys.PrevBrand):
		m.cycleBrand(-1)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.search.Query())
		m.searchInput.CursorEnd()
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleFavorite):
		if p, ok := m.selectedProduct(); ok {
			return m.applyFavorites(catalog.ToggleFavorite{Product: p})
		}

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selectedProduct(); ok {
			m.openDetail(p, ViewCatalog)
		}

	case key.Matches(msg, m.keys.Reload):
		cmd := tea.Batch(m.refetchProducts(), m.reloadFavorites())
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if !m.catalog.Filter.IsZero() {
			m.catalog, _ = catalog.Reduce(m.catalog, catalog.ResetFilters{})
			m.search = m.search.Clear()
			m.searchInput.SetValue("")
			m.selectedRow = 0
		}
	}

	return m, nil
}

// cycleBrand steps through "all brands" followed by each brand option,
// wrapping at both ends.
func (m *Model) cycleBrand(delta int) {
	options := m.catalog.BrandOptions
	pos := 0
	if b := m.catalog.Filter.Brand; b.Set {
		for i, name := range options {
			if name == b.Name {
				pos = i + 1
				break
			}
		}
	}
	n := len(options) + 1
	pos = ((pos+delta)%n + n) % n

	brand := catalog.AllBrands()
	if pos > 0 {
		brand = catalog.OnlyBrand(options[pos-1])
	}
	m.catalog, _ = catalog.Reduce(m.catalog, catalog.SetBrand{Brand: brand})
	m.selectedRow = 0
}

// handleSearchKey processes keyboard input while the search field is open.
// Every edit filters the list live; Enter commits a term to history.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.closeSearch()
		m.search = m.search.Clear()
		m.searchInput.SetValue("")
		m.catalog, _ = catalog.Reduce(m.catalog, catalog.SetSearch{Text: ""})
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.SearchConfirm):
		return m.commitSearch()

	case key.Matches(msg, m.keys.SearchDown):
		m.search = m.search.Move(1)
		return m, nil

	case key.Matches(msg, m.keys.SearchUp):
		m.search = m.search.Move(-1)
		return m, nil

	case key.Matches(msg, m.keys.ForgetSearch):
		if term, ok := m.search.Highlighted(); ok && m.search.ShowsHistory() && m.history != nil {
			m.search = m.search.Move(0)
			return m, forgetSearchCmd(m.ctx, m.history, term)
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearHistory):
		if m.search.ShowsHistory() && m.history != nil {
			return m, clearHistoryCmd(m.ctx, m.history)
		}
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if text := m.searchInput.Value(); text != before {
		m.search = m.search.Input(text)
		m.catalog, _ = catalog.Reduce(m.catalog, catalog.SetSearch{Text: text})
		m.selectedRow = 0
	}
	return m, cmd
}

// commitSearch applies the highlighted suggestion, history entry or typed
// query and records it in the search history.
func (m Model) commitSearch() (tea.Model, tea.Cmd) {
	term, ok := m.search.Highlighted()
	m.closeSearch()
	if !ok {
		return m, nil
	}

	m.search = m.search.Select(term)
	m.searchInput.SetValue(m.search.Query())
	m.catalog, _ = catalog.Reduce(m.catalog, catalog.SetSearch{Text: m.search.Committed()})
	m.selectedRow = 0
	if m.history == nil {
		return m, nil
	}
	return m, recordSearchCmd(m.ctx, m.history, m.search.Committed())
}

func (m *Model) closeSearch() {
	m.searching = false
	m.searchInput.Blur()
}

func (m Model) selectedProduct() (gallery.Product, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.catalog.Filtered) {
		return gallery.Product{}, false
	}
	return m.catalog.Filtered[m.selectedRow], true
}

// renderCatalog renders the brand bar, search field and product list.
func (m Model) renderCatalog() string {
	height := m.contentHeight()
	inner := maxInt(m.width-2, 1)

	var lines []string
	lines = append(lines, m.renderBrandBar(inner))
	lines = append(lines, m.renderSearchPanel(inner)...)
	lines = append(lines, "")

	visible := maxInt(height-3-len(lines), 1)
	lines = append(lines, m.renderProductRows(inner, visible)...)

	counts := m.catalog.Counts()
	title := fmt.Sprintf("Catalog (%d/%d)", counts.Visible, counts.Total)
	return m.renderBox(title, strings.Join(lines, "\n"), m.width, height, !m.searching)
}

func (m Model) renderBrandBar(width int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	current := m.catalog.Filter.Brand

	labels := []string{"All"}
	labels = append(labels, m.catalog.BrandOptions...)
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		active := (i == 0 && !current.Set) || (i > 0 && current.Set && current.Name == label)
		if active {
			parts = append(parts, styles.Selected.Render(" "+label+" "))
			continue
		}
		parts = append(parts, bg.Render(" "+label+" ", styles.MutedText))
	}
	line := bg.Render("Brand", styles.FaintText) + bg.Spaces(1) + bg.Join(parts, " ")
	return bg.FillLine(line, width)
}

// renderSearchPanel renders the search field and, while it is open, the
// suggestions or history rows.
func (m Model) renderSearchPanel(width int) []string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()

	if !m.searching {
		query := m.search.Query()
		if query == "" {
			return []string{bg.FillLine(bg.Render("/ to search", styles.FaintText), width)}
		}
		return []string{bg.FillLine(bg.Render("Search", styles.FaintText)+bg.Space()+
			bg.Render(fmt.Sprintf("%q", query), styles.AccentText), width)}
	}

	alt := NewBgStyle(m.theme.SurfaceAlt)
	lines := []string{alt.FillLine(m.searchInput.View(), width)}

	options := m.search.Options()
	if len(options) == 0 {
		if m.search.Mode() == searchbox.Typing {
			lines = append(lines, alt.FillLine(alt.Render("  no matching names", styles.FaintText), width))
		}
		return lines
	}
	label := "  suggestions"
	if m.search.ShowsHistory() {
		label = "  recent searches (ctrl+d forget, ctrl+x clear)"
	}
	lines = append(lines, alt.FillLine(alt.Render(label, styles.FaintText), width))

	start := scrollStart(m.search.Cursor(), SearchOptionRows)
	end := minInt(len(options), start+SearchOptionRows)
	for i := start; i < end; i++ {
		text := "  " + truncate(options[i], width-4)
		if i == m.search.Cursor() {
			lines = append(lines, styles.Selected.Width(width).Render(text))
			continue
		}
		lines = append(lines, alt.FillLine(alt.Render(text, styles.Text), width))
	}
	return lines
}

// renderProductRows renders up to visible rows around the selection.
func (m Model) renderProductRows(width, visible int) []string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	products := m.catalog.Filtered

	if len(products) == 0 {
		var msg string
		switch {
		case m.fetchErr != nil && len(m.catalog.Products) == 0:
			msg = "Could not load the catalog: " + m.fetchErr.Error()
		case len(m.catalog.Products) == 0:
			msg = "Loading catalog..."
		default:
			msg = "No products match the current filters (esc clears them)"
		}
		return []string{bg.FillLine(bg.Render(truncate(msg, width), styles.MutedText), width)}
	}

	start := scrollStart(m.selectedRow, visible)
	end := minInt(len(products), start+visible)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := products[i]
		rows = append(rows, m.renderProductRow(p, m.catalog.IsFavorite(p.ID), i == m.selectedRow, width))
	}
	return rows
}

// renderProductRow lays out marker, name, brand and price columns.
func (m Model) renderProductRow(p gallery.Product, favorite, selected bool, width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)

	marker := "  "
	if favorite {
		marker = "♥ "
	}
	price := formatPrice(p.DiscountedPrice())
	if p.HasDeal() {
		price += " " + formatPercent(p.DiscountFraction)
	}
	const priceW = 16
	brandW := 0
	if width >= LayoutBrandWidth {
		brandW = 18
	}
	nameW := maxInt(width-len([]rune(marker))-priceW-brandW-2, 8)

	text := marker + padRight(truncate(p.Name, nameW), nameW) + " "
	if brandW > 0 {
		text += padRight(truncate(p.Brand, brandW-1), brandW)
	}
	text += padLeft(price, priceW)

	if selected {
		return styles.Selected.Width(width).Render(text)
	}

	heart := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Badges["favorite"]))
	row := bg.Render(marker, heart) +
		bg.Render(padRight(truncate(p.Name, nameW), nameW), styles.Text) + bg.Space()
	if brandW > 0 {
		row += bg.Render(padRight(truncate(p.Brand, brandW-1), brandW), styles.MutedText)
	}
	priceStyle := styles.Text
	if p.HasDeal() {
		priceStyle = styles.WarningText
	}
	row += bg.Render(padLeft(price, priceW), priceStyle)
	return bg.FillLine(row, width)
}
