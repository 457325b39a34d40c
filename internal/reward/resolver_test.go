package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/domain"
)

func killDef(id string, baseReward int) domain.BountyDefinition {
	return domain.BountyDefinition{
		ID:             id,
		Kind:           domain.BountyKindKill,
		TargetID:       "Wolf",
		Amount:         5,
		BaseReward:     baseReward,
		DifficultyTier: domain.TierEasy,
	}
}

func TestResolve_FourOptionsInCategoryOrder(t *testing.T) {
	r := NewResolver()
	opts := r.Resolve(killDef("kill_wolves", 100))

	require.Len(t, opts, 4)
	for i, cat := range domain.RewardCategories {
		assert.Equal(t, cat, opts[i].Category)
	}
}

func TestResolve_MenuStability(t *testing.T) {
	r := NewResolver()
	def := killDef("kill_wolves", 100)

	first := r.Resolve(def)
	second := r.Resolve(def)
	assert.Equal(t, first, second)

	// A fresh resolver resolves identically: no hidden state.
	assert.Equal(t, first, NewResolver().Resolve(def))
}

func TestResolve_DifficultyMultiplier(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name      string
		tier      string
		wantCoins int
	}{
		{name: "normal", tier: domain.TierEasy, wantCoins: 100},
		{name: "raid", tier: domain.TierRaid, wantCoins: 125},
		{name: "miniboss", tier: domain.TierMiniboss, wantCoins: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := killDef("mb_test", 100)
			def.DifficultyTier = tt.tier
			opts := r.Resolve(def)
			assert.Equal(t, tt.wantCoins, opts[0].CoinAmount)
		})
	}
}

func TestResolve_StacksScaledAndAtLeastOne(t *testing.T) {
	pools := Pools{
		domain.RewardMaterials: {
			{{ItemID: "Scrap", MinStack: 1, MaxStack: 1, Quality: 1}},
		},
		domain.RewardResources: {
			{{ItemID: "Ore", MinStack: 2, MaxStack: 4, Quality: 1}},
		},
		domain.RewardConsumables: {
			{{ItemID: "Stew", MinStack: 1, MaxStack: 2, Quality: 1}},
		},
	}
	r := NewResolverWithPools(pools)

	def := killDef("mb_scaled", 10)
	def.DifficultyTier = domain.TierMiniboss
	for _, opt := range r.Resolve(def)[1:] {
		assert.GreaterOrEqual(t, opt.Stack, 1, "category %s", opt.Category)
	}

	// Miniboss multiplier scales the fixed 2..4 resource stack to 3..6.
	resources := r.Resolve(def)[2]
	assert.Equal(t, "Ore", resources.ItemID)
	assert.GreaterOrEqual(t, resources.Stack, 3)
	assert.LessOrEqual(t, resources.Stack, 6)
}

func TestResolve_UnknownStageFallsBackToLowest(t *testing.T) {
	r := NewResolver()

	def := killDef("kill_fallback", 50)
	def.UnlockRequirement = "defeated_something_unmapped"
	base := killDef("kill_fallback", 50)

	assert.Equal(t, r.Resolve(base), r.Resolve(def))
}

func TestResolve_EmptyPoolYieldsPlaceholder(t *testing.T) {
	pools := Pools{
		domain.RewardResources: {
			{{ItemID: "Ore", MinStack: 2, MaxStack: 4, Quality: 1}},
		},
	}
	r := NewResolverWithPools(pools)

	opts := r.Resolve(killDef("kill_sparse", 50))
	require.Len(t, opts, 4)

	materials := opts[1]
	assert.True(t, materials.IsPlaceholder())
	assert.Equal(t, PlaceholderDisplay, materials.DisplayText)

	resources := opts[2]
	assert.False(t, resources.IsPlaceholder())
	assert.Equal(t, "Ore", resources.ItemID)
}

func TestResolve_DifferentIDsDiffer(t *testing.T) {
	r := NewResolver()
	a := r.Resolve(killDef("kill_a", 100))

	varies := false
	for _, id := range []string{"kill_b", "kill_c", "kill_d", "kill_e"} {
		b := r.Resolve(killDef(id, 100))
		if a[1] != b[1] || a[2] != b[2] || a[3] != b[3] {
			varies = true
			break
		}
	}
	assert.True(t, varies, "item draws should depend on the bounty id")
}
