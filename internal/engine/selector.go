package engine

import (
	"context"
	"math"
	"math/rand"

	"github.com/ironvale/bountyhall/internal/domain"
)

// daySeed derives the daily draw seed from the in-game day. The
// product is computed in 64-bit before the reduction so high day
// counts stay stable.
func daySeed(day int) int64 {
	return (int64(day) * daySeedPrime) % math.MaxInt32
}

// DailyBounties returns the rotation for the given day: a seeded
// shuffle-and-take over the unlocked catalog, partitioned by kind.
// The same day always produces the same draw, including across
// restarts. Pools smaller than their quota are returned whole.
func (e *Engine) DailyBounties(ctx context.Context, day int) []domain.BountyDefinition {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dailyLocked(day)
}

func (e *Engine) dailyLocked(day int) []domain.BountyDefinition {
	var kills, gathers, minibosses, raids []domain.BountyDefinition
	for _, def := range e.catalog.Entries() {
		if def.UnlockRequirement != "" && !e.unlocks.IsUnlocked(def.UnlockRequirement) {
			continue
		}
		switch {
		case def.IsMiniboss():
			minibosses = append(minibosses, def)
		case def.IsRaid():
			raids = append(raids, def)
		case def.Kind == domain.BountyKindGather:
			gathers = append(gathers, def)
		default:
			kills = append(kills, def)
		}
	}

	quotas := e.cfg.DailyQuotas
	if !e.cfg.GatherEnabled {
		gathers = nil
	}

	// One PRNG across all pools, consumed in a fixed order. Changing
	// the pool order would silently change every player's rotation.
	rng := rand.New(rand.NewSource(daySeed(day)))

	var out []domain.BountyDefinition
	out = append(out, take(rng, kills, quotas.Kill)...)
	out = append(out, take(rng, gathers, quotas.Gather)...)
	out = append(out, take(rng, minibosses, quotas.Miniboss)...)
	out = append(out, take(rng, raids, quotas.Raid)...)
	return out
}

// take shuffles the pool in place and returns the first n entries.
func take(rng *rand.Rand, pool []domain.BountyDefinition, n int) []domain.BountyDefinition {
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
