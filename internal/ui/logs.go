package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artshelf/internal/logtail"
)

// logLevels is the cycle for the minimum level filter.
var logLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

// logState holds log view state.
type logState struct {
	entries  []logtail.Entry
	err      error
	minLevel slog.Level
	loaded   bool
}

func newLogState() logState {
	return logState{minLevel: slog.LevelDebug}
}

// refreshLogs rereads the tail of the log file.
func (m *Model) refreshLogs() tea.Cmd {
	if m.logPath == "" {
		return nil
	}
	return readLogCmd(m.logPath, LogTailLines)
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logState.loaded = true
	m.logState.err = msg.err
	if msg.err == nil {
		m.logState.entries = msg.entries
	}
	m.updateLogViewport()
	m.logViewport.GotoBottom()
}

// visibleLogEntries applies the minimum level filter.
func (m Model) visibleLogEntries() []logtail.Entry {
	return logtail.AtLeast(m.logState.entries, m.logState.minLevel)
}

// cycleLogLevel raises the minimum level, wrapping back to debug.
func (m *Model) cycleLogLevel() {
	for i, l := range logLevels {
		if l == m.logState.minLevel {
			m.logState.minLevel = logLevels[(i+1)%len(logLevels)]
			return
		}
	}
	m.logState.minLevel = logLevels[0]
}

// handleLogsKey processes keyboard input for logs view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Reload):
		return m, m.refreshLogs()

	case key.Matches(msg, m.keys.CycleLevel):
		m.cycleLogLevel()
		m.updateLogViewport()
		m.logViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		return m.switchView(ViewCatalog)
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateLogViewport() {
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	title := fmt.Sprintf("artshelf log (%s and above)", m.logState.minLevel)
	return m.renderBox(title, m.logViewport.View(), m.width, m.contentHeight(), true)
}

// renderLogContent colors each parsed entry.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)

	switch {
	case m.logPath == "":
		return bg.Render("Logging to a file is disabled.", styles.MutedText)
	case m.logState.err != nil:
		return bg.Render("Could not read "+m.logPath+": "+m.logState.err.Error(), styles.DangerText)
	case !m.logState.loaded:
		return bg.Render("Reading "+m.logPath+"...", styles.MutedText)
	}

	entries := m.visibleLogEntries()
	if len(entries) == 0 {
		return bg.Render("No log entries.", styles.MutedText)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, m.renderLogEntry(e, styles, bg))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLogEntry(e logtail.Entry, styles Styles, bg BgStyle) string {
	if !e.HasLevel && e.Time.IsZero() {
		return bg.Render(e.Raw, styles.Text)
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(bg.Render(e.Time.Local().Format("15:04:05"), styles.FaintText))
		b.WriteString(bg.Space())
	}
	if e.HasLevel {
		b.WriteString(bg.Render(padRight(e.Level.String(), 5), levelStyle(e.Level, styles).Bold(true)))
		b.WriteString(bg.Space())
	}
	if op, ok := e.Attr("op"); ok {
		b.WriteString(bg.Render(op, styles.AccentText))
		b.WriteString(bg.Space())
	}
	b.WriteString(bg.Render(e.Message, styles.Text))
	for _, a := range e.Attrs {
		if a.Key == "op" {
			continue
		}
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(a.Key+"="+a.Value, styles.MutedText))
	}
	return b.String()
}

// levelStyle returns the style for a log level.
func levelStyle(level slog.Level, styles Styles) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return styles.DangerText
	case level >= slog.LevelWarn:
		return styles.WarningText
	case level >= slog.LevelInfo:
		return styles.SuccessText
	default:
		return styles.InfoText
	}
}
