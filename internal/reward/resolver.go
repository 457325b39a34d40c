// Package reward derives the fixed reward menu offered for a bounty.
// Resolution is a pure function of the bounty's id and static fields:
// the menu is recomputed on every view and on claim, never cached, and
// is identical each time.
package reward

import (
	"fmt"
	"math/rand"

	"github.com/ironvale/bountyhall/internal/catalog"
	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/stablehash"
)

// Resolver draws reward options from stage-keyed candidate pools.
type Resolver struct {
	pools Pools
}

// NewResolver creates a Resolver over the built-in reward tables.
func NewResolver() *Resolver {
	return &Resolver{pools: DefaultPools()}
}

// NewResolverWithPools creates a Resolver over custom reward tables.
func NewResolverWithPools(pools Pools) *Resolver {
	return &Resolver{pools: pools}
}

// Resolve returns the four-option reward menu for a bounty: one
// currency option followed by one draw per item category. The PRNG is
// seeded from the bounty id, so the same definition always resolves to
// the same menu.
func (r *Resolver) Resolve(def domain.BountyDefinition) []domain.RewardOption {
	rng := rand.New(rand.NewSource(stablehash.Seed(def.ID)))
	mult := Multiplier(def.DifficultyTier)
	stage := catalog.StageIndex(def.UnlockRequirement)

	opts := make([]domain.RewardOption, 0, len(domain.RewardCategories))
	coins := int(float64(def.BaseReward) * mult)
	opts = append(opts, domain.RewardOption{
		Category:    domain.RewardCurrency,
		CoinAmount:  coins,
		DisplayText: fmt.Sprintf("%d coins", coins),
	})

	for _, cat := range domain.RewardCategories[1:] {
		opts = append(opts, r.drawOption(rng, cat, stage, mult))
	}
	return opts
}

// Multiplier returns the difficulty scaling for a tier.
func Multiplier(tier string) float64 {
	switch tier {
	case domain.TierMiniboss:
		return MultiplierMiniboss
	case domain.TierRaid:
		return MultiplierRaid
	default:
		return MultiplierNormal
	}
}

// drawOption picks one candidate and stack size for a category. A stage
// without candidates falls back to the lowest stage's pool; a category
// with no candidates at all yields a placeholder so the menu keeps its
// slot count.
func (r *Resolver) drawOption(rng *rand.Rand, cat domain.RewardCategory, stage int, mult float64) domain.RewardOption {
	stages := r.pools[cat]

	var candidates []PoolItem
	if stage >= 0 && stage < len(stages) {
		candidates = stages[stage]
	}
	if len(candidates) == 0 && len(stages) > 0 {
		candidates = stages[0]
	}
	if len(candidates) == 0 {
		return domain.RewardOption{Category: cat, DisplayText: PlaceholderDisplay}
	}

	item := candidates[rng.Intn(len(candidates))]
	stack := item.MinStack + rng.Intn(item.MaxStack-item.MinStack+1)
	stack = int(float64(stack) * mult)
	if stack < 1 {
		stack = 1
	}

	return domain.RewardOption{
		Category:    cat,
		ItemID:      item.ItemID,
		Stack:       stack,
		Quality:     item.Quality,
		DisplayText: fmt.Sprintf("%dx %s", stack, item.ItemID),
	}
}
