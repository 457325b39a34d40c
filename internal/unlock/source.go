// Package unlock exposes the game-progress flags that gate catalog
// content. The flag source is a host collaborator; the cached wrapper
// keeps per-frame visibility checks from hammering it.
package unlock

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Source reports whether a progression flag is set for the player.
type Source interface {
	IsUnlocked(key string) bool
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(key string) bool

func (f SourceFunc) IsUnlocked(key string) bool { return f(key) }

// Default cache sizing. Flags are few and flip rarely (a boss kill),
// so a short TTL is enough to pick up changes without an explicit
// invalidation channel from the host.
const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 30 * time.Second
)

// CachedSource wraps a Source with a TTL-bounded LRU.
type CachedSource struct {
	src Source
	lru *expirable.LRU[string, bool]
}

// NewCachedSource creates a caching wrapper around src.
// size: maximum number of cached flags
// ttl: time-to-live for cached entries
func NewCachedSource(src Source, size int, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src: src,
		lru: expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

// IsUnlocked answers from cache when possible. The empty key means "no
// requirement" and is always unlocked without consulting the source.
func (c *CachedSource) IsUnlocked(key string) bool {
	if key == "" {
		return true
	}
	if v, ok := c.lru.Get(key); ok {
		return v
	}
	v := c.src.IsUnlocked(key)
	c.lru.Add(key, v)
	return v
}

// Invalidate drops all cached flags. Called when the host signals a
// progression change so new unlocks show up immediately.
func (c *CachedSource) Invalidate() {
	c.lru.Purge()
}
