package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastError
)

// toastState is the transient notice in the header. seq ties an expiry tick
// to the toast that scheduled it.
type toastState struct {
	text  string
	level toastLevel
	seq   int
}

// showToast replaces the current toast and schedules its expiry.
func (m *Model) showToast(text string, level toastLevel) tea.Cmd {
	if text == "" {
		return nil
	}
	m.toast.seq++
	m.toast.text = text
	m.toast.level = level
	return toastExpireCmd(m.toastTTL, m.toast.seq)
}

// renderHeader renders the status bar: logo, counts, active filters, fetch
// state and the toast.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	counts := m.catalog.Counts()
	parts := []string{
		bg.Render("artshelf", styles.Logo),
		bg.Render(fmt.Sprintf("%d/%d", counts.Visible, counts.Total), styles.Text) +
			bg.Space() + bg.Render("products", styles.MutedText),
		bg.Render(fmt.Sprintf("♥ %d", counts.Favorites), styles.AccentText),
	}

	if !compact {
		if b := m.catalog.Filter.Brand; b.Set {
			parts = append(parts, bg.Render("brand", styles.FaintText)+bg.Space()+bg.Render(truncate(b.Name, 20), styles.Text))
		}
		if q := m.catalog.Filter.SearchText; strings.TrimSpace(q) != "" {
			parts = append(parts, bg.Render("search", styles.FaintText)+bg.Space()+bg.Render(fmt.Sprintf("%q", truncate(q, 20)), styles.Text))
		}
	}

	switch {
	case m.loading:
		parts = append(parts, bg.Render("Loading...", styles.WarningText.Bold(true)))
	case m.fetchErr != nil:
		parts = append(parts, bg.Render("API error", styles.DangerText))
		if !compact {
			parts = append(parts, bg.Render(truncate(m.fetchErr.Error(), 40), styles.MutedText))
		}
	case !m.lastFetched.IsZero():
		parts = append(parts, bg.Render("updated", styles.FaintText)+bg.Space()+
			bg.Render(m.lastFetched.Format("15:04:05"), styles.MutedText))
	}

	if m.saveErr != nil && !compact {
		parts = append(parts, bg.Render("favorites unsaved", styles.DangerText))
	}

	if m.toast.text != "" {
		style := styles.SuccessText
		if m.toast.level == toastError {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(m.toast.text, style))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the command hints bar for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewFavorites:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Detail"},
			{"x", "Remove"},
		}
		if m.catalog.Favorites.Len() >= RemoveAllMinimum {
			commands = append(commands, cmd{"X", "Remove all"})
		}
		commands = append(commands, cmd{"c", "Catalog"}, cmd{"l", "Log"}, cmd{"?", "More"})
	case ViewDetail:
		favLabel := "Favorite"
		if m.catalog.IsFavorite(m.detail.product.ID) {
			favLabel = "Unfavorite"
		}
		commands = []cmd{
			{"f", favLabel},
			{"r", "Refresh"},
			{"j/k", "Scroll"},
			{"esc", "Back"},
			{"?", "More"},
		}
	case ViewLogs:
		commands = []cmd{
			{"r", "Refresh"},
			{"L", "Level"},
			{"j/k", "Scroll"},
			{"c", "Catalog"},
			{"v", "Favorites"},
			{"?", "More"},
		}
	default:
		if m.searching {
			commands = []cmd{
				{"enter", "Apply"},
				{"up/down", "Choose"},
				{"esc", "Clear"},
			}
			break
		}
		commands = []cmd{
			{"b/B", "Brand"},
			{"/", "Search"},
			{"f", "Favorite"},
			{"enter", "Detail"},
			{"r", "Reload"},
			{"v", "Favorites"},
			{"l", "Log"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
