package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artshelf/internal/catalog"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmModal asks before a destructive favorites command runs.
type confirmModal struct {
	title   string
	body    string
	command catalog.Command
}

func newConfirmModal(title, body string, cmd catalog.Command) confirmModal {
	return confirmModal{title: title, body: body, command: cmd}
}

// Update confirms with y/enter and cancels with n/esc. Other keys are ignored.
func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(km, keys.Confirm):
		command := c.command
		return c, func() tea.Msg { return confirmedMsg{cmd: command} }, true
	case key.Matches(km, keys.Cancel):
		return c, nil, true
	}
	return c, nil, false
}

// View renders the dialog centered over a blank screen.
func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(c.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(c.body))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("y") + styles.MutedText.Render(":Remove") + "  " +
		styles.AccentText.Render("n") + styles.MutedText.Render(":Keep"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(minInt(56, maxInt(width-4, 20))).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
