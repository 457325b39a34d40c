package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "profile.db"), "player-1")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_GetSetRemove(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "state:wolf_cull_1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "state:wolf_cull_1", "active"))
	val, ok, err := store.Get(ctx, "state:wolf_cull_1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "active", val)

	// Upsert overwrites
	require.NoError(t, store.Set(ctx, "state:wolf_cull_1", "claimed"))
	val, _, _ = store.Get(ctx, "state:wolf_cull_1")
	assert.Equal(t, "claimed", val)

	require.NoError(t, store.Remove(ctx, "state:wolf_cull_1"))
	_, ok, err = store.Get(ctx, "state:wolf_cull_1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_KeysByPrefix(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "state:a", "active"))
	require.NoError(t, store.Set(ctx, "state:b", "claimed"))
	require.NoError(t, store.Set(ctx, "progress:a", "3"))
	require.NoError(t, store.Set(ctx, "lastDay", "10"))

	keys, err := store.Keys(ctx, "state:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"state:a", "state:b"}, keys)
}

func TestSQLiteStore_PlayerScoping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.db")
	ctx := context.Background()

	one, err := NewSQLiteStore(path, "player-1")
	require.NoError(t, err)
	defer one.Close()

	two, err := NewSQLiteStore(path, "player-2")
	require.NoError(t, err)
	defer two.Close()

	require.NoError(t, one.Set(ctx, "bankBalance", "500"))

	_, ok, err := two.Get(ctx, "bankBalance")
	require.NoError(t, err)
	assert.False(t, ok, "player-2 must not see player-1 keys")
}

func TestNewSQLiteStore_EmptyPlayerID(t *testing.T) {
	_, err := NewSQLiteStore(filepath.Join(t.TempDir(), "p.db"), "")
	assert.Error(t, err)
}
