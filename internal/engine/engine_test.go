package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/capture"
	"github.com/ironvale/bountyhall/internal/catalog"
	"github.com/ironvale/bountyhall/internal/config"
	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/event"
	"github.com/ironvale/bountyhall/internal/profile"
	"github.com/ironvale/bountyhall/internal/unlock"
)

func testDefinitions() []domain.BountyDefinition {
	return []domain.BountyDefinition{
		{
			ID: "kill_thicket_boar", Title: "Boar Cull", Kind: domain.BountyKindKill,
			TargetID: "ThicketBoar", Amount: 5, BaseReward: 100, DifficultyTier: domain.TierEasy,
		},
		{
			ID: "kill_gloom_wolf", Title: "Wolf Hunt", Kind: domain.BountyKindKill,
			TargetID: "GloomWolf", Amount: 5, BaseReward: 120, DifficultyTier: domain.TierMedium,
		},
		{
			ID: "kill_marsh_crawler", Title: "Crawler Purge", Kind: domain.BountyKindKill,
			TargetID: "MarshCrawler", Amount: 8, BaseReward: 140, DifficultyTier: domain.TierMedium,
		},
		{
			ID: "gather_pine_resin", Title: "Resin Run", Kind: domain.BountyKindGather,
			TargetID: "PineResin", Amount: 10, BaseReward: 80, DifficultyTier: domain.TierEasy,
		},
		{
			ID: "mb_wolf_matriarch", Title: "The Matriarch", Kind: domain.BountyKindKill,
			TargetID: "GloomWolf", Amount: 1, BaseReward: 400, DifficultyTier: domain.TierMiniboss,
			SpawnLevel: 3, GenderTag: domain.GenderFemale,
		},
		{
			ID: "raid_cinder_fiends", Title: "Fiend Raid", Kind: domain.BountyKindKill,
			TargetID: "CinderFiend", Amount: 4, BaseReward: 500, DifficultyTier: domain.TierRaid,
			SpawnLevel: 1,
		},
		{
			ID: "kill_frost_drake", Title: "Drake Cull", Kind: domain.BountyKindKill,
			TargetID: "FrostDrake", Amount: 6, BaseReward: 300, DifficultyTier: domain.TierHard,
			UnlockRequirement: "defeated_fen_mother",
		},
	}
}

type fakeCalendar struct {
	day  int
	secs float64
}

func (f *fakeCalendar) CurrentDay() int              { return f.day }
func (f *fakeCalendar) SecondsUntilNextDay() float64 { return f.secs }

type fakeDelivery struct {
	fail      bool
	delivered []string
}

func (f *fakeDelivery) TryDeliver(itemID string, stack, quality int) bool {
	if f.fail {
		return false
	}
	f.delivered = append(f.delivered, itemID)
	return true
}

type fakeSpawner struct {
	fail  bool
	calls int
	level int
	count int
	name  string
}

func (f *fakeSpawner) Spawn(targetID string, level, count int, name string) (domain.Position, bool) {
	f.calls++
	f.level = level
	f.count = count
	f.name = name
	if f.fail {
		return domain.Position{}, false
	}
	return domain.Position{X: 10.5, Y: 31.0, Z: -4.5}, true
}

type fixture struct {
	engine   *Engine
	records  *profile.Records
	cal      *fakeCalendar
	delivery *fakeDelivery
	spawner  *fakeSpawner
	unlocked map[string]bool
	events   *[]event.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		cal:      &fakeCalendar{day: 10},
		delivery: &fakeDelivery{},
		spawner:  &fakeSpawner{},
		unlocked: map[string]bool{},
		events:   &[]event.Event{},
	}
	f.records = profile.NewRecords(profile.NewMemoryStore())

	bus := event.NewMemoryBus()
	record := func(ctx context.Context, evt event.Event) error {
		*f.events = append(*f.events, evt)
		return nil
	}
	for _, typ := range []event.Type{
		event.BountyAccepted, event.BountyAbandoned, event.BountyCompleted,
		event.BountyClaimed, event.BalanceChanged, event.DayReset,
	} {
		bus.Subscribe(typ, record)
	}

	eng, err := New(Deps{
		Catalog: catalog.New(testDefinitions()),
		Records: f.records,
		Calendar: f.cal,
		Unlocks: unlock.SourceFunc(func(key string) bool {
			return f.unlocked[key]
		}),
		Delivery: f.delivery,
		Spawner:  f.spawner,
		Bus:      bus,
		Config:   config.DefaultEngine(),
	})
	require.NoError(t, err)
	f.engine = eng
	return f
}

func (f *fixture) eventsOfType(typ event.Type) []event.Event {
	var out []event.Event
	for _, evt := range *f.events {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// acceptAndComplete drives a kill bounty from Available to Ready.
func (f *fixture) acceptAndComplete(t *testing.T, ctx context.Context, id string) {
	t.Helper()
	require.NoError(t, f.engine.AcceptBounty(ctx, id))
	def, ok := f.engine.catalog.ByID(id)
	require.True(t, ok)
	for i := 0; i < def.Amount; i++ {
		require.NoError(t, f.engine.OnKillEvent(ctx, capture.Event{
			TargetID:   def.TargetID,
			SpawnLevel: def.SpawnLevel,
		}))
	}
}

func TestEngine_New_RequiresCatalogAndRecords(t *testing.T) {
	_, err := New(Deps{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_AcceptBounty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_gloom_wolf"))

	state, err := f.engine.GetState(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, domain.StateActive, state)

	progress, err := f.engine.GetProgress(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, 0, progress)

	accepted := f.eventsOfType(event.BountyAccepted)
	require.Len(t, accepted, 1)

	// Plain kill bounties spawn nothing.
	assert.Equal(t, 0, f.spawner.calls)
}

func TestEngine_AcceptBounty_Unknown(t *testing.T) {
	f := newFixture(t)
	err := f.engine.AcceptBounty(context.Background(), "kill_nonexistent")
	require.ErrorIs(t, err, domain.ErrBountyNotFound)
}

func TestEngine_AcceptBounty_OnlyFromAvailable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_gloom_wolf"))

	err := f.engine.AcceptBounty(ctx, "kill_gloom_wolf")
	require.ErrorIs(t, err, domain.ErrBountyNotAvailable)
}

func TestEngine_AcceptBounty_LockedUntilProgressionFlag(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.engine.AcceptBounty(ctx, "kill_frost_drake")
	require.ErrorIs(t, err, domain.ErrBountyLocked)

	f.unlocked["defeated_fen_mother"] = true
	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_frost_drake"))
}

func TestEngine_AcceptBounty_MinibossSpawnsNamedEncounter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "mb_wolf_matriarch"))

	assert.Equal(t, 1, f.spawner.calls)
	assert.Equal(t, 3, f.spawner.level)
	assert.Equal(t, 1, f.spawner.count)
	assert.NotEmpty(t, f.spawner.name)

	name, err := f.engine.BossName(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	assert.Equal(t, f.spawner.name, name)

	pos, ok, err := f.engine.SpawnPosition(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 10.5, pos.X, 0.01)
}

func TestEngine_AcceptBounty_RaidSpawnsFullGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "raid_cinder_fiends"))

	assert.Equal(t, 1, f.spawner.calls)
	assert.Equal(t, 4, f.spawner.count)
}

func TestEngine_AcceptBounty_SpawnFailureDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.spawner.fail = true

	require.NoError(t, f.engine.AcceptBounty(ctx, "mb_wolf_matriarch"))

	state, err := f.engine.GetState(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	assert.Equal(t, domain.StateActive, state)

	_, ok, err := f.engine.SpawnPosition(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_BossName_FrozenAtAcceptance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "mb_wolf_matriarch"))
	name, err := f.engine.BossName(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	require.NotEmpty(t, name)

	// The preview name changes with the day; the accepted one must not.
	f.cal.day = 25
	after, err := f.engine.BossName(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	assert.Equal(t, name, after)
}

func TestEngine_BossName_PreviewChangesWithDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.engine.BossName(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)

	changed := false
	for day := 11; day < 30 && !changed; day++ {
		f.cal.day = day
		next, err := f.engine.BossName(ctx, "mb_wolf_matriarch")
		require.NoError(t, err)
		changed = next != first
	}
	assert.True(t, changed)
}

func TestEngine_BossName_EmptyForUnnamed(t *testing.T) {
	f := newFixture(t)
	name, err := f.engine.BossName(context.Background(), "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestEngine_AbandonBounty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_gloom_wolf"))
	require.NoError(t, f.engine.OnKillEvent(ctx, capture.Event{TargetID: "GloomWolf"}))
	require.NoError(t, f.engine.AbandonBounty(ctx, "kill_gloom_wolf"))

	state, err := f.engine.GetState(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAvailable, state)

	// Re-accepting starts from zero.
	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_gloom_wolf"))
	progress, err := f.engine.GetProgress(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, 0, progress)
}

func TestEngine_AbandonBounty_OnlyActive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.engine.AbandonBounty(ctx, "kill_gloom_wolf")
	require.ErrorIs(t, err, domain.ErrBountyNotActive)

	f.acceptAndComplete(t, ctx, "kill_gloom_wolf")
	err = f.engine.AbandonBounty(ctx, "kill_gloom_wolf")
	require.ErrorIs(t, err, domain.ErrBountyNotActive)
}

func TestEngine_Claim_Currency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.acceptAndComplete(t, ctx, "kill_gloom_wolf")
	require.NoError(t, f.engine.Claim(ctx, "kill_gloom_wolf", domain.RewardCurrency))

	state, err := f.engine.GetState(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, domain.StateClaimed, state)

	balance, err := f.records.BankBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, balance)

	require.Len(t, f.eventsOfType(event.BountyClaimed), 1)
	require.Len(t, f.eventsOfType(event.BalanceChanged), 1)
}

func TestEngine_Claim_ItemDelivery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.acceptAndComplete(t, ctx, "kill_gloom_wolf")
	require.NoError(t, f.engine.Claim(ctx, "kill_gloom_wolf", domain.RewardMaterials))

	require.Len(t, f.delivery.delivered, 1)
	state, err := f.engine.GetState(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, domain.StateClaimed, state)
}

func TestEngine_Claim_DeliveryFailureKeepsReady(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.acceptAndComplete(t, ctx, "kill_gloom_wolf")
	f.delivery.fail = true

	err := f.engine.Claim(ctx, "kill_gloom_wolf", domain.RewardMaterials)
	require.ErrorIs(t, err, domain.ErrDeliveryFailed)

	state, err := f.engine.GetState(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, state)

	// Retry after the inventory clears.
	f.delivery.fail = false
	require.NoError(t, f.engine.Claim(ctx, "kill_gloom_wolf", domain.RewardMaterials))
}

func TestEngine_Claim_OnlyReady(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.engine.Claim(ctx, "kill_gloom_wolf", domain.RewardCurrency)
	require.ErrorIs(t, err, domain.ErrBountyNotReady)

	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_gloom_wolf"))
	err = f.engine.Claim(ctx, "kill_gloom_wolf", domain.RewardCurrency)
	require.ErrorIs(t, err, domain.ErrBountyNotReady)
}

func TestEngine_Claim_ClearsEncounterButKeepsRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "mb_wolf_matriarch"))
	require.NoError(t, f.engine.OnKillEvent(ctx, capture.Event{TargetID: "GloomWolf", SpawnLevel: 3}))
	require.NoError(t, f.engine.Claim(ctx, "mb_wolf_matriarch", domain.RewardCurrency))

	_, ok, err := f.engine.SpawnPosition(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	assert.False(t, ok)

	state, err := f.engine.GetState(ctx, "mb_wolf_matriarch")
	require.NoError(t, err)
	assert.Equal(t, domain.StateClaimed, state)
}

func TestEngine_ResolveRewards_StableMenu(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.engine.ResolveRewards(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, domain.RewardCurrency, first[0].Category)
	assert.Equal(t, 120, first[0].CoinAmount)

	second, err := f.engine.ResolveRewards(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEngine_ResetAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.acceptAndComplete(t, ctx, "kill_gloom_wolf")
	require.NoError(t, f.engine.Claim(ctx, "kill_gloom_wolf", domain.RewardCurrency))
	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_thicket_boar"))

	removed, err := f.engine.ResetAll(ctx)
	require.NoError(t, err)
	assert.Greater(t, removed, 0)

	state, err := f.engine.GetState(ctx, "kill_thicket_boar")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAvailable, state)

	// The bank balance is player wealth, not bounty state.
	balance, err := f.records.BankBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, balance)
}

func TestEngine_SecondsUntilNextDay(t *testing.T) {
	f := newFixture(t)
	f.cal.secs = 432.5
	assert.InDelta(t, 432.5, f.engine.SecondsUntilNextDay(), 0.001)
}

func TestEngine_StatePersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.engine.AcceptBounty(ctx, "kill_gloom_wolf"))
	for i := 0; i < 4; i++ {
		require.NoError(t, f.engine.OnKillEvent(ctx, capture.Event{TargetID: "GloomWolf"}))
	}

	// A new engine over the same records picks up where the old one left off.
	restarted, err := New(Deps{
		Catalog:  catalog.New(testDefinitions()),
		Records:  f.records,
		Calendar: f.cal,
		Config:   config.DefaultEngine(),
	})
	require.NoError(t, err)

	progress, err := restarted.GetProgress(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, 4, progress)

	require.NoError(t, restarted.OnKillEvent(ctx, capture.Event{TargetID: "GloomWolf"}))
	state, err := restarted.GetState(ctx, "kill_gloom_wolf")
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, state)
}
