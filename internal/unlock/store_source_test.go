package unlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/profile"
)

func TestStoreSource_FlagLifecycle(t *testing.T) {
	ctx := context.Background()
	src := NewStoreSource(profile.NewMemoryStore())

	assert.False(t, src.IsUnlocked("defeated_fen_mother"))

	require.NoError(t, src.SetUnlocked(ctx, "defeated_fen_mother"))
	assert.True(t, src.IsUnlocked("defeated_fen_mother"))

	require.NoError(t, src.ClearUnlocked(ctx, "defeated_fen_mother"))
	assert.False(t, src.IsUnlocked("defeated_fen_mother"))
}

func TestStoreSource_EmptyKeyAlwaysUnlocked(t *testing.T) {
	src := NewStoreSource(profile.NewMemoryStore())
	assert.True(t, src.IsUnlocked(""))
}

func TestStoreSource_Unlocked(t *testing.T) {
	ctx := context.Background()
	src := NewStoreSource(profile.NewMemoryStore())

	require.NoError(t, src.SetUnlocked(ctx, "defeated_thicket_warden"))
	require.NoError(t, src.SetUnlocked(ctx, "defeated_fen_mother"))

	flags, err := src.Unlocked(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"defeated_thicket_warden", "defeated_fen_mother"}, flags)
}
