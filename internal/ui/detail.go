package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artshelf/internal/catalog"
	"github.com/five82/artshelf/internal/gallery"
)

// detailState holds the product shown by the detail view.
type detailState struct {
	product  gallery.Product
	returnTo View
	loading  bool
	err      error
}

// openDetail shows p and remembers which list to return to.
func (m *Model) openDetail(p gallery.Product, from View) {
	m.detail = detailState{product: p, returnTo: from}
	m.currentView = ViewDetail
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Back to the list as it was; no activation.
		m.currentView = m.detail.returnTo
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		return m.applyFavorites(catalog.ToggleFavorite{Product: m.detail.product})

	case key.Matches(msg, m.keys.Reload):
		if m.client == nil || m.detail.product.ID == "" {
			return m, nil
		}
		m.detail.loading = true
		m.updateDetailViewport()
		return m, fetchProductCmd(m.ctx, m.client, m.detail.product.ID)

	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleProductMsg applies a single-product refresh. Results for a product
// that is no longer on screen are dropped.
func (m Model) handleProductMsg(msg productMsg) Model {
	if msg.id != m.detail.product.ID {
		return m
	}
	m.detail.loading = false
	switch {
	case msg.err != nil:
		m.detail.err = msg.err
	case len(msg.products) == 0:
		m.detail.err = errProductGone
	default:
		m.detail.product = msg.products[0]
		m.detail.err = nil
	}
	m.updateDetailViewport()
	return m
}

func (m *Model) updateDetailViewport() {
	if m.detail.product.ID == "" {
		return
	}
	m.detailViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.detailViewport.SetContent(m.renderDetailContent())
}

// renderDetail renders the detail box.
func (m Model) renderDetail() string {
	title := truncate(m.detail.product.Name, maxInt(m.width-20, 10))
	if title == "" {
		title = "Product"
	}
	switch {
	case m.detail.loading:
		title += " (refreshing...)"
	case m.detail.err != nil:
		title += " (refresh failed)"
	}
	return m.renderBox(title, m.detailViewport.View(), m.width, m.contentHeight(), true)
}

// renderDetailContent builds the scrollable detail body.
func (m Model) renderDetailContent() string {
	p := m.detail.product
	styles := m.theme.Styles()
	width := maxInt(m.detailViewport.Width-2, 20)

	label := func(s string) string {
		return styles.FaintText.Render(padRight(s, 10))
	}

	var b strings.Builder
	if m.detail.err != nil {
		b.WriteString(styles.DangerText.Render("Refresh failed: " + m.detail.err.Error()))
		b.WriteString("\n\n")
	}

	var badges []string
	if m.catalog.IsFavorite(p.ID) {
		badges = append(badges, styles.BadgeStyle("favorite").Render("FAVORITE"))
	}
	if p.HasDeal() {
		badges = append(badges, styles.BadgeStyle("deal").Render("DEAL "+formatPercent(p.DiscountFraction)))
	}
	if p.GlassSurface {
		badges = append(badges, styles.BadgeStyle("glass").Render("GLASS"))
	}
	if len(badges) > 0 {
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n\n")
	}

	b.WriteString(label("Brand") + styles.Text.Render(p.Brand) + "\n")
	if p.HasDeal() {
		b.WriteString(label("Price") +
			styles.MutedText.Strikethrough(true).Render(formatPrice(p.Price)) + " " +
			styles.WarningText.Bold(true).Render(formatPrice(p.DiscountedPrice())) + " " +
			styles.FaintText.Render("limited-time deal") + "\n")
	} else {
		b.WriteString(label("Price") + styles.Text.Render(formatPrice(p.Price)) + "\n")
	}
	b.WriteString(label("Glass") + styles.Text.Render(yesNo(p.GlassSurface)) + "\n")
	if n := len(p.Comments); n > 0 {
		b.WriteString(label("Rating") + styles.WarningText.Render(fmt.Sprintf("%.1f", p.AverageRating())) +
			styles.MutedText.Render(fmt.Sprintf(" from %d %s", n, plural(n, "review", "reviews"))) + "\n")
	}
	if p.ImageRef != "" {
		b.WriteString(label("Image") + styles.MutedText.Render(truncate(p.ImageRef, width-10)) + "\n")
	}

	if desc := strings.TrimSpace(p.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Width(width).Render(desc))
		b.WriteString("\n")
	}

	if len(p.Comments) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Reviews"))
		b.WriteString("\n")
		for _, c := range p.Comments {
			author := c.Author
			if author == "" {
				author = "anonymous"
			}
			b.WriteString(styles.WarningText.Render(stars(c.Rating)) + " " + styles.Text.Bold(true).Render(author) + "\n")
			if content := strings.TrimSpace(c.Content); content != "" {
				b.WriteString(styles.MutedText.Width(width).PaddingLeft(2).Render(content) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("id " + p.ID))
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
