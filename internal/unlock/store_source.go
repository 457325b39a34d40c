package unlock

import (
	"context"

	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/profile"
)

// KeyPrefix scopes progression flags inside the profile store.
const KeyPrefix = "unlock:"

const flagSetValue = "1"

// StoreSource persists progression flags in the profile store. Hosts
// without their own progression system report boss kills through the
// admin API and this source remembers them.
type StoreSource struct {
	store profile.Store
}

// NewStoreSource creates a store-backed flag source.
func NewStoreSource(store profile.Store) *StoreSource {
	return &StoreSource{store: store}
}

// IsUnlocked implements Source.
func (s *StoreSource) IsUnlocked(key string) bool {
	if key == "" {
		return true
	}
	val, ok, err := s.store.Get(context.Background(), KeyPrefix+key)
	if err != nil {
		logger.Error("Failed to read unlock flag", "key", key, "error", err)
		return false
	}
	return ok && val == flagSetValue
}

// SetUnlocked persists a progression flag.
func (s *StoreSource) SetUnlocked(ctx context.Context, key string) error {
	return s.store.Set(ctx, KeyPrefix+key, flagSetValue)
}

// ClearUnlocked removes a progression flag.
func (s *StoreSource) ClearUnlocked(ctx context.Context, key string) error {
	return s.store.Remove(ctx, KeyPrefix+key)
}

// Unlocked lists all set flags.
func (s *StoreSource) Unlocked(ctx context.Context) ([]string, error) {
	keys, err := s.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}
	flags := make([]string, 0, len(keys))
	for _, k := range keys {
		flags = append(flags, k[len(KeyPrefix):])
	}
	return flags, nil
}
