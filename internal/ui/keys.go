package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	ViewCatalog   key.Binding
	ViewFavorites key.Binding
	ViewLogs      key.Binding

	// Catalog actions
	NextBrand      key.Binding
	PrevBrand      key.Binding
	Search         key.Binding
	ToggleFavorite key.Binding
	Open           key.Binding
	Reload         key.Binding

	// Favorites actions
	Remove    key.Binding
	RemoveAll key.Binding

	// Logs actions
	CycleLevel key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Search field
	SearchUp      key.Binding
	SearchDown    key.Binding
	ForgetSearch  key.Binding
	ClearHistory  key.Binding
	SearchConfirm key.Binding

	// Confirm modal
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / clear filters"),
		),

		ViewCatalog: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Catalog"),
		),
		ViewFavorites: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Favorites"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Log"),
		),

		NextBrand: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Next brand"),
		),
		PrevBrand: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "Previous brand"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search names"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("f", " "),
			key.WithHelp("f/Space", "Toggle favorite"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open detail"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),

		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove favorite"),
		),
		RemoveAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Remove all favorites"),
		),

		CycleLevel: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Cycle minimum level"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		SearchUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("up", "Previous suggestion"),
		),
		SearchDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("down", "Next suggestion"),
		),
		ForgetSearch: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Forget highlighted search"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Clear search history"),
		),
		SearchConfirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Apply search"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "Cancel"),
		),
	}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ViewCatalog, k.ViewFavorites, k.ViewLogs, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.NextBrand, k.PrevBrand, k.Search, k.ToggleFavorite, k.Open, k.Reload},
		{k.Remove, k.RemoveAll},
		{k.SearchUp, k.SearchDown, k.ForgetSearch, k.ClearHistory},
		{k.CycleLevel},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
