// Package kvstore is the local durable key-value storage artshelf keeps its
// favorites and search history in. Values are opaque strings; callers own the
// serialization.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// Store is the storage contract consumed by the favorites and history stores.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// ErrEmptyKey is returned for blank keys.
var ErrEmptyKey = errors.New("key is empty")

// LevelDB is a Store backed by goleveldb.
type LevelDB struct {
	db    *leveldb.DB
	sync  bool
	label string
}

var _ Store = (*LevelDB)(nil)

// Open opens (creating if needed) a LevelDB store in dir. Writes are synced
// so a saved favorite survives a crash right after the command completes.
func Open(dir string) (*LevelDB, error) {
	const op = "kvstore.Open"

	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("%s: directory is empty", op)
	}
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return nil, fmt.Errorf("%s: create parent dir: %w", op, err)
	}
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: open %s: %w", op, dir, err)
	}
	slog.With("op", op).Debug("store opened", "dir", dir)
	return &LevelDB{db: db, sync: true, label: dir}, nil
}

// OpenMemory returns a store that lives only as long as the process.
func OpenMemory() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("kvstore.OpenMemory: %w", err)
	}
	return &LevelDB{db: db, label: "memory"}, nil
}

// Get implements Store.
func (s *LevelDB) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "LevelDB.Get"

	if err := checkCall(ctx, key); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	value, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: read %q: %w", op, key, err)
	}
	return string(value), true, nil
}

// Set implements Store.
func (s *LevelDB) Set(ctx context.Context, key, value string) error {
	const op = "LevelDB.Set"

	if err := checkCall(ctx, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Put([]byte(key), []byte(value), s.writeOptions()); err != nil {
		return fmt.Errorf("%s: write %q: %w", op, key, err)
	}
	return nil
}

// Remove implements Store.
func (s *LevelDB) Remove(ctx context.Context, key string) error {
	const op = "LevelDB.Remove"

	if err := checkCall(ctx, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Delete([]byte(key), s.writeOptions()); err != nil {
		return fmt.Errorf("%s: delete %q: %w", op, key, err)
	}
	return nil
}

// Close releases the underlying database. Calls after Close fail.
func (s *LevelDB) Close() error {
	const op = "LevelDB.Close"
	log := slog.With("op", op)

	if err := s.db.Close(); err != nil {
		log.Error("failed to close store", "store", s.label, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Debug("store closed", "store", s.label)
	return nil
}

func (s *LevelDB) writeOptions() *opt.WriteOptions {
	if !s.sync {
		return nil
	}
	return &opt.WriteOptions{Sync: true}
}

func checkCall(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// Prefixed namespaces every key of an underlying Store.
type Prefixed struct {
	Store  Store
	Prefix string
}

var _ Store = Prefixed{}

// Get implements Store.
func (p Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, ErrEmptyKey
	}
	return p.Store.Get(ctx, p.Prefix+key)
}

// Set implements Store.
func (p Prefixed) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return p.Store.Set(ctx, p.Prefix+key, value)
}

// Remove implements Store.
func (p Prefixed) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return p.Store.Remove(ctx, p.Prefix+key)
}
