package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDB_SetGetRemove(t *testing.T) {
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report absent")

	require.NoError(t, s.Set(ctx, "favorites", `[{"id":"1"}]`))
	value, ok, err := s.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)

	require.NoError(t, s.Set(ctx, "favorites", `[]`))
	value, _, err = s.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value, "Set should overwrite")

	require.NoError(t, s.Remove(ctx, "favorites"))
	_, ok, err = s.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.False(t, ok, "removed key should report absent")

	assert.NoError(t, s.Remove(ctx, "favorites"), "removing a missing key is not an error")
}

func TestLevelDB_RejectsEmptyKeyAndCancelledContext(t *testing.T) {
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.ErrorIs(t, s.Set(context.Background(), "  ", "x"), ErrEmptyKey)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLevelDB_PersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "store")
	ctx := context.Background()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "search_history", `["gold"]`))
	require.NoError(t, s.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := reopened.Get(ctx, "search_history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["gold"]`, value)
}

func TestOpen_EmptyDirFails(t *testing.T) {
	_, err := Open(" ")
	assert.Error(t, err)
}

func TestPrefixed_NamespacesKeys(t *testing.T) {
	base, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = base.Close() })
	ctx := context.Background()

	a := Prefixed{Store: base, Prefix: "a/"}
	b := Prefixed{Store: base, Prefix: "b/"}

	require.NoError(t, a.Set(ctx, "favorites", "A"))
	require.NoError(t, b.Set(ctx, "favorites", "B"))

	got, _, err := a.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	raw, ok, err := base.Get(ctx, "b/favorites")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "B", raw)

	require.NoError(t, a.Remove(ctx, "favorites"))
	_, ok, err = b.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, ok, "removing a/favorites must not touch b/favorites")

	assert.ErrorIs(t, a.Set(ctx, "", "x"), ErrEmptyKey)
}
