package unlock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachedSource_EmptyKeyAlwaysUnlocked(t *testing.T) {
	calls := 0
	src := SourceFunc(func(key string) bool {
		calls++
		return false
	})
	c := NewCachedSource(src, DefaultCacheSize, DefaultCacheTTL)

	assert.True(t, c.IsUnlocked(""))
	assert.Zero(t, calls, "empty key must not consult the source")
}

func TestCachedSource_CachesLookups(t *testing.T) {
	calls := 0
	src := SourceFunc(func(key string) bool {
		calls++
		return key == "defeated_fen_mother"
	})
	c := NewCachedSource(src, DefaultCacheSize, DefaultCacheTTL)

	assert.True(t, c.IsUnlocked("defeated_fen_mother"))
	assert.True(t, c.IsUnlocked("defeated_fen_mother"))
	assert.Equal(t, 1, calls)

	assert.False(t, c.IsUnlocked("defeated_ember_king"))
	assert.False(t, c.IsUnlocked("defeated_ember_king"))
	assert.Equal(t, 2, calls)
}

func TestCachedSource_InvalidateRefetches(t *testing.T) {
	unlocked := false
	c := NewCachedSource(SourceFunc(func(string) bool { return unlocked }), DefaultCacheSize, DefaultCacheTTL)

	assert.False(t, c.IsUnlocked("defeated_frost_jarl"))

	unlocked = true
	assert.False(t, c.IsUnlocked("defeated_frost_jarl"), "stale until invalidated or expired")

	c.Invalidate()
	assert.True(t, c.IsUnlocked("defeated_frost_jarl"))
}

func TestCachedSource_TTLExpiry(t *testing.T) {
	unlocked := false
	c := NewCachedSource(SourceFunc(func(string) bool { return unlocked }), DefaultCacheSize, 20*time.Millisecond)

	assert.False(t, c.IsUnlocked("defeated_dune_tyrant"))
	unlocked = true

	time.Sleep(50 * time.Millisecond)
	assert.True(t, c.IsUnlocked("defeated_dune_tyrant"))
}
