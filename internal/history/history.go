// Package history keeps the committed search terms, most recent first.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/five82/artshelf/internal/catalog"
	"github.com/five82/artshelf/internal/kvstore"
)

const (
	// Key is the storage key of the history blob.
	Key = "search_history"
	// Limit is the maximum number of remembered terms.
	Limit = 10
)

// Store is the search history. It keeps an in-memory copy that is the truth
// for the session; writes to kv are best effort. Store is safe for concurrent
// use.
type Store struct {
	kv kvstore.Store

	mu      sync.Mutex
	entries []string
}

var _ catalog.HistoryStore = (*Store)(nil)

// New returns an empty Store over kv. Call Load to read what was persisted.
func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Entries returns the in-memory history.
func (s *Store) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() []string {
	return append([]string(nil), s.entries...)
}

// Load reads the persisted history. Missing or corrupt data yields an empty
// history.
func (s *Store) Load(ctx context.Context) []string {
	const op = "history.Load"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		log.Warn("failed to read search history", "err", err)
		return s.snapshot()
	}
	if !ok || raw == "" {
		return s.snapshot()
	}
	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		log.Warn("discarding corrupt search history", "err", err)
		return s.snapshot()
	}
	s.entries = normalize(terms)
	return s.snapshot()
}

// Record moves term to the front, dropping an identical earlier entry and
// anything past Limit. Blank terms are ignored. The returned history is valid
// even when err is not nil.
func (s *Store) Record(ctx context.Context, term string) ([]string, error) {
	term = strings.TrimSpace(term)

	s.mu.Lock()
	defer s.mu.Unlock()

	if term == "" {
		return s.snapshot(), nil
	}
	next := make([]string, 0, Limit)
	next = append(next, term)
	for _, existing := range s.entries {
		if existing != term {
			next = append(next, existing)
		}
	}
	if len(next) > Limit {
		next = next[:Limit]
	}
	s.entries = next
	return s.snapshot(), s.persist(ctx)
}

// Remove drops term from the history. The term is trimmed as Record trims it.
func (s *Store) Remove(ctx context.Context, term string) ([]string, error) {
	term = strings.TrimSpace(term)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.entries))
	for _, existing := range s.entries {
		if existing != term {
			next = append(next, existing)
		}
	}
	if len(next) == len(s.entries) {
		return s.snapshot(), nil
	}
	s.entries = next
	return s.snapshot(), s.persist(ctx)
}

// Clear forgets every term.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	if err := s.kv.Remove(ctx, Key); err != nil {
		return fmt.Errorf("history.Clear: %w", err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	const op = "history.persist"

	terms := s.entries
	if terms == nil {
		terms = []string{}
	}
	data, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// normalize applies the Record rules to data read back from storage, so a
// hand-edited or older blob still honours the cap and uniqueness.
func normalize(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
		if len(out) == Limit {
			break
		}
	}
	return out
}
