package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/domain"
)

func TestCatalog_ByID(t *testing.T) {
	c := New([]domain.BountyDefinition{
		{ID: "a", Kind: domain.BountyKindKill, TargetID: "Wolf", Amount: 5, DifficultyTier: domain.TierEasy},
		{ID: "b", Kind: domain.BountyKindKill, TargetID: "Boar", Amount: 3, DifficultyTier: domain.TierEasy},
	})

	def, ok := c.ByID("b")
	require.True(t, ok)
	assert.Equal(t, "Boar", def.TargetID)

	_, ok = c.ByID("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, c.Len())
	assert.Len(t, c.Entries(), 2)
}

func TestStageIndex(t *testing.T) {
	for i, key := range StageKeys {
		assert.Equal(t, i, StageIndex(key), "key %q", key)
	}
	assert.Equal(t, 0, StageIndex("not_a_real_flag"))
}
