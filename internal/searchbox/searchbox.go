// Package searchbox is the state of the catalog search field: what the user
// has typed, which suggestions or history entries are offered, and which one
// is highlighted.
package searchbox

import (
	"strings"

	"github.com/five82/artshelf/internal/gallery"
)

// Mode is the search box state.
type Mode int

const (
	// Idle: empty query, history offered.
	Idle Mode = iota
	// Typing: non-empty query, name suggestions offered.
	Typing
	// Selected: a term was committed; nothing offered until the next edit.
	Selected
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case Selected:
		return "selected"
	default:
		return "idle"
	}
}

// Box is a value; every transition returns the next Box.
type Box struct {
	mode      Mode
	query     string
	names     []string
	history   []string
	cursor    int
	committed string
}

// New returns an idle box.
func New() Box {
	return Box{cursor: -1}
}

// WithCatalog replaces the names suggestions are drawn from. Names are
// distinct and keep catalog order.
func (b Box) WithCatalog(products []gallery.Product) Box {
	seen := make(map[string]struct{}, len(products))
	names := make([]string, 0, len(products))
	for _, p := range products {
		if p.Name == "" {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	b.names = names
	return b.clampCursor()
}

// WithHistory replaces the history entries offered while idle.
func (b Box) WithHistory(terms []string) Box {
	b.history = append([]string(nil), terms...)
	return b.clampCursor()
}

// Mode returns the current state.
func (b Box) Mode() Mode { return b.mode }

// Query returns the text as typed.
func (b Box) Query() string { return b.query }

// Committed returns the last selected term.
func (b Box) Committed() string { return b.committed }

// Cursor returns the highlighted row, or -1.
func (b Box) Cursor() int { return b.cursor }

// Input records an edit of the query text.
func (b Box) Input(text string) Box {
	b.query = text
	b.cursor = -1
	if strings.TrimSpace(text) == "" {
		b.mode = Idle
	} else {
		b.mode = Typing
	}
	return b
}

// Select commits term, typically a suggestion or history entry.
func (b Box) Select(term string) Box {
	term = strings.TrimSpace(term)
	if term == "" {
		return b.Clear()
	}
	b.mode = Selected
	b.query = term
	b.committed = term
	b.cursor = -1
	return b
}

// Clear empties the query and returns to Idle.
func (b Box) Clear() Box {
	b.mode = Idle
	b.query = ""
	b.committed = ""
	b.cursor = -1
	return b
}

// Options lists what the box currently offers.
func (b Box) Options() []string {
	switch b.mode {
	case Idle:
		return append([]string(nil), b.history...)
	case Typing:
		return b.Suggestions()
	default:
		return nil
	}
}

// Suggestions returns the names containing the query, ignoring case. A blank
// query suggests nothing.
func (b Box) Suggestions() []string {
	if strings.TrimSpace(b.query) == "" {
		return nil
	}
	needle := strings.ToLower(b.query)
	var out []string
	for _, name := range b.names {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}
	return out
}

// ShowsHistory reports whether the history list should be visible.
func (b Box) ShowsHistory() bool {
	return b.mode == Idle && len(b.history) > 0
}

// Move shifts the highlight by delta, wrapping at the ends. Moving from no
// highlight lands on the first row going down and the last row going up.
func (b Box) Move(delta int) Box {
	n := len(b.Options())
	if n == 0 || delta == 0 {
		b.cursor = -1
		return b
	}
	switch {
	case b.cursor < 0 && delta > 0:
		b.cursor = 0
	case b.cursor < 0:
		b.cursor = n - 1
	default:
		b.cursor = ((b.cursor+delta)%n + n) % n
	}
	return b
}

// Highlighted returns the term Enter would commit: the highlighted row if
// any, otherwise the typed query.
func (b Box) Highlighted() (string, bool) {
	if opts := b.Options(); b.cursor >= 0 && b.cursor < len(opts) {
		return opts[b.cursor], true
	}
	if b.mode == Typing {
		if q := strings.TrimSpace(b.query); q != "" {
			return q, true
		}
	}
	return "", false
}

func (b Box) clampCursor() Box {
	if b.cursor >= len(b.Options()) {
		b.cursor = -1
	}
	return b
}
