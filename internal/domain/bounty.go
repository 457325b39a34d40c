package domain

// BountyKind identifies what a bounty counts: kills or gathered items.
// Gather bounties only participate when the engine config enables them.
const (
	BountyKindKill   = "Kill"
	BountyKindGather = "Gather"
)

// Difficulty tier constants. Miniboss and Raid bounties spawn a named,
// leveled encounter; the other tiers count ambient kills.
const (
	TierEasy     = "Easy"
	TierMedium   = "Medium"
	TierHard     = "Hard"
	TierMiniboss = "Miniboss"
	TierRaid     = "Raid"
)

// Gender tag constants constraining boss name generation.
const (
	GenderAny    = "Any"
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// BountyDefinition is an immutable catalog entry. Loaded once at startup,
// never mutated afterwards. IDs are catalog-unique and stable across
// versions - persisted player records key on them.
type BountyDefinition struct {
	ID                string `json:"id" validate:"required"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Kind              string `json:"kind" validate:"required,oneof=Kill Gather"`
	TargetID          string `json:"target_id" validate:"required"`
	Amount            int    `json:"amount" validate:"min=1"`
	BaseReward        int    `json:"base_reward" validate:"min=0"`
	UnlockRequirement string `json:"unlock_requirement,omitempty"`
	SpawnLevel        int    `json:"spawn_level" validate:"min=0"`
	DifficultyTier    string `json:"difficulty_tier" validate:"oneof=Easy Medium Hard Miniboss Raid"`
	GenderTag         string `json:"gender_tag,omitempty" validate:"omitempty,oneof=Any Male Female"`
}

// IsMiniboss reports whether the bounty spawns a single named encounter.
func (b BountyDefinition) IsMiniboss() bool {
	return b.DifficultyTier == TierMiniboss
}

// IsRaid reports whether the bounty spawns a named group encounter.
func (b BountyDefinition) IsRaid() bool {
	return b.DifficultyTier == TierRaid
}

// IsNamed reports whether the bounty requires a generated boss name and a
// spawned encounter.
func (b BountyDefinition) IsNamed() bool {
	return b.SpawnLevel > 0
}

// BountyState is the lifecycle state of a player's record for one bounty.
//
//	Available -> Active -> Ready -> Claimed -> (Available at next day boundary)
//
// Ready is derived on read (progress >= amount), never stored.
type BountyState string

const (
	StateAvailable BountyState = "available"
	StateActive    BountyState = "active"
	StateReady     BountyState = "ready"
	StateClaimed   BountyState = "claimed"
)

// Position is a world-space point reported back by the encounter spawner.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BountyRecord is the typed view of one player's sparse key/value record
// for a bounty. The profile store marshals it to/from flat string keys at
// the persistence boundary.
type BountyRecord struct {
	BountyID      string      `json:"bounty_id"`
	State         BountyState `json:"state"`
	Progress      int         `json:"progress"`
	GeneratedName string      `json:"generated_name,omitempty"`
	SpawnPos      *Position   `json:"spawn_pos,omitempty"`
}
