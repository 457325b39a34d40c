// Package engine implements the bounty progression core: the daily
// rotation, the per-bounty state machine, progress tracking and the
// claim flow. One Engine serves one player session; hosts construct it
// explicitly at session start and pass it to their glue code, there is
// no package-level instance.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/ironvale/bountyhall/internal/capture"
	"github.com/ironvale/bountyhall/internal/catalog"
	"github.com/ironvale/bountyhall/internal/config"
	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/event"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/metrics"
	"github.com/ironvale/bountyhall/internal/naming"
	"github.com/ironvale/bountyhall/internal/profile"
	"github.com/ironvale/bountyhall/internal/reward"
	"github.com/ironvale/bountyhall/internal/unlock"
)

// Engine is the per-session bounty engine. All state mutations go
// through the profile records; the active set and daily draw are
// rebuildable caches over them.
//
// The mutex serializes API calls from host glue (HTTP handlers, game
// callbacks). Events are published after the lock is released so a
// subscriber may re-enter the engine synchronously.
type Engine struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	records  *profile.Records
	cal      Calendar
	unlocks  unlock.Source
	delivery Delivery
	spawner  Spawner
	resolver *reward.Resolver
	names    *naming.Generator
	bus      event.Bus
	cfg      config.Engine

	captures *capture.Stack
	active   activeSet
}

// Deps bundles the collaborators an Engine is built from. Catalog and
// Records are required; nil optional collaborators degrade (no
// calendar means day 0, no spawner means ambient kills only, no bus
// means no notifications).
type Deps struct {
	Catalog  *catalog.Catalog
	Records  *profile.Records
	Calendar Calendar
	Unlocks  unlock.Source
	Delivery Delivery
	Spawner  Spawner
	Bus      event.Bus
	Config   config.Engine
}

// New constructs an Engine. The active set is built lazily on first
// use, so construction does no I/O.
func New(deps Deps) (*Engine, error) {
	if deps.Catalog == nil || deps.Records == nil {
		return nil, fmt.Errorf("%w: catalog and records are required", domain.ErrInvalidInput)
	}

	unlocks := deps.Unlocks
	if unlocks == nil {
		unlocks = unlock.SourceFunc(func(string) bool { return false })
	}

	return &Engine{
		catalog:  deps.Catalog,
		records:  deps.Records,
		cal:      deps.Calendar,
		unlocks:  unlocks,
		delivery: deps.Delivery,
		spawner:  deps.Spawner,
		resolver: reward.NewResolver(),
		names:    naming.NewGenerator(),
		bus:      deps.Bus,
		cfg:      deps.Config,
		captures: capture.NewStack(),
	}, nil
}

// currentDay reads the calendar, treating an absent one as day 0.
func (e *Engine) currentDay() int {
	if e.cal == nil {
		return 0
	}
	return e.cal.CurrentDay()
}

// Day returns the calendar's current in-game day, 0 without a calendar.
func (e *Engine) Day() int {
	return e.currentDay()
}

// SecondsUntilNextDay reports the time left before the next day
// boundary, 0 when no calendar is attached.
func (e *Engine) SecondsUntilNextDay() float64 {
	if e.cal == nil {
		return 0
	}
	return e.cal.SecondsUntilNextDay()
}

// publish sends events after a mutation. Called without the engine
// lock held.
func (e *Engine) publish(ctx context.Context, events ...event.Event) {
	if e.bus == nil {
		return
	}
	for _, evt := range events {
		if err := e.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn("Event publish failed", "event_type", evt.Type, "error", err)
		}
	}
}

// GetState returns the lifecycle state for a bounty id. Ready is
// derived on read: a stored Active record whose progress reached the
// required amount reports Ready without a separate persisted state.
func (e *Engine) GetState(ctx context.Context, id string) (domain.BountyState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked(ctx, id)
}

func (e *Engine) stateLocked(ctx context.Context, id string) (domain.BountyState, error) {
	state, err := e.records.StoredState(ctx, id)
	if err != nil {
		return domain.StateAvailable, err
	}
	if state != domain.StateActive {
		return state, nil
	}

	def, ok := e.catalog.ByID(id)
	if !ok {
		return state, nil
	}
	progress, err := e.records.Progress(ctx, id)
	if err != nil {
		return state, err
	}
	if progress >= def.Amount {
		return domain.StateReady, nil
	}
	return domain.StateActive, nil
}

// GetProgress returns the stored progress for a bounty id, 0 when no
// record exists.
func (e *Engine) GetProgress(ctx context.Context, id string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.records.Progress(ctx, id)
}

// BossName returns the name of the bounty's encounter. For an accepted
// bounty this is the name frozen at acceptance; otherwise it is the
// preview for today's acceptance. Unnamed bounties return "".
func (e *Engine) BossName(ctx context.Context, id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	def, ok := e.catalog.ByID(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrBountyNotFound, id)
	}
	if !def.IsNamed() {
		return "", nil
	}

	stored, err := e.records.BossName(ctx, id)
	if err != nil {
		return "", err
	}
	if stored != "" {
		return stored, nil
	}
	return e.names.Generate(id, def.GenderTag, e.currentDay()), nil
}

// AcceptBounty moves an Available bounty to Active. Named bounties get
// their boss name frozen and their encounter spawned here.
func (e *Engine) AcceptBounty(ctx context.Context, id string) error {
	e.mu.Lock()
	evt, err := e.acceptLocked(ctx, id)
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.publish(ctx, evt)
	return nil
}

func (e *Engine) acceptLocked(ctx context.Context, id string) (event.Event, error) {
	log := logger.FromContext(ctx)

	def, ok := e.catalog.ByID(id)
	if !ok {
		return event.Event{}, fmt.Errorf("%w: %s", domain.ErrBountyNotFound, id)
	}

	state, err := e.stateLocked(ctx, id)
	if err != nil {
		return event.Event{}, err
	}
	if state != domain.StateAvailable {
		return event.Event{}, fmt.Errorf("%w: %s is %s", domain.ErrBountyNotAvailable, id, state)
	}

	if def.UnlockRequirement != "" && !e.unlocks.IsUnlocked(def.UnlockRequirement) {
		return event.Event{}, fmt.Errorf("%w: %s requires %s", domain.ErrBountyLocked, id, def.UnlockRequirement)
	}

	if err := e.active.ensure(ctx, e.records); err != nil {
		return event.Event{}, err
	}

	day := e.currentDay()
	bossName := ""
	if def.IsNamed() {
		bossName = e.names.Generate(id, def.GenderTag, day)
		if err := e.records.SetBossName(ctx, id, bossName); err != nil {
			return event.Event{}, err
		}
		e.spawnEncounter(ctx, def, bossName)
	}

	if err := e.records.SetProgress(ctx, id, 0); err != nil {
		return event.Event{}, err
	}
	if err := e.records.SetState(ctx, id, domain.StateActive); err != nil {
		return event.Event{}, err
	}
	e.active.add(id)

	log.Info(LogMsgBountyAccepted, "bounty_id", id, "boss_name", bossName, "day", day)
	return event.NewBountyAcceptedEvent(id, bossName, day), nil
}

// spawnEncounter places the named encounter. Raids spawn the full
// group, minibosses a single creature. Spawn failure is tolerated:
// ambient kills of the target still count.
func (e *Engine) spawnEncounter(ctx context.Context, def domain.BountyDefinition, bossName string) {
	if e.spawner == nil {
		return
	}

	count := 1
	if def.IsRaid() {
		count = def.Amount
	}

	pos, ok := e.spawner.Spawn(def.TargetID, def.SpawnLevel, count, bossName)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgSpawnFailed, "bounty_id", def.ID, "target", def.TargetID)
		return
	}
	if err := e.records.SetSpawnPos(ctx, def.ID, pos); err != nil {
		logger.FromContext(ctx).Warn("Failed to store spawn position", "bounty_id", def.ID, "error", err)
	}
}

// SpawnPosition returns where the bounty's encounter was spawned, if
// one is outstanding.
func (e *Engine) SpawnPosition(ctx context.Context, id string) (domain.Position, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.records.SpawnPos(ctx, id)
}

// AbandonBounty drops an Active bounty back to Available, discarding
// progress, name and spawn position. Ready and Claimed bounties cannot
// be abandoned.
func (e *Engine) AbandonBounty(ctx context.Context, id string) error {
	e.mu.Lock()
	evt, err := e.abandonLocked(ctx, id)
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.publish(ctx, evt)
	return nil
}

func (e *Engine) abandonLocked(ctx context.Context, id string) (event.Event, error) {
	if _, ok := e.catalog.ByID(id); !ok {
		return event.Event{}, fmt.Errorf("%w: %s", domain.ErrBountyNotFound, id)
	}

	state, err := e.stateLocked(ctx, id)
	if err != nil {
		return event.Event{}, err
	}
	if state != domain.StateActive {
		return event.Event{}, fmt.Errorf("%w: %s is %s", domain.ErrBountyNotActive, id, state)
	}

	progress, err := e.records.Progress(ctx, id)
	if err != nil {
		return event.Event{}, err
	}
	if err := e.records.ClearBounty(ctx, id); err != nil {
		return event.Event{}, err
	}
	e.active.remove(id)

	logger.FromContext(ctx).Info(LogMsgBountyAbandoned, "bounty_id", id, "progress", progress)
	return event.NewBountyAbandonedEvent(id, progress), nil
}

// ResolveRewards returns the four-option reward menu for a bounty.
// Resolution is deterministic, so the menu is identical on every call.
func (e *Engine) ResolveRewards(ctx context.Context, id string) ([]domain.RewardOption, error) {
	def, ok := e.catalog.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBountyNotFound, id)
	}
	return e.resolver.Resolve(def), nil
}

// Claim finalizes a Ready bounty with the chosen reward category. The
// reward must be delivered before the Claimed state is persisted: a
// failed delivery leaves the bounty Ready so the player can retry.
func (e *Engine) Claim(ctx context.Context, id string, category domain.RewardCategory) error {
	e.mu.Lock()
	events, err := e.claimLocked(ctx, id, category)
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.publish(ctx, events...)
	return nil
}

func (e *Engine) claimLocked(ctx context.Context, id string, category domain.RewardCategory) ([]event.Event, error) {
	log := logger.FromContext(ctx)

	def, ok := e.catalog.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBountyNotFound, id)
	}

	state, err := e.stateLocked(ctx, id)
	if err != nil {
		return nil, err
	}
	if state != domain.StateReady {
		return nil, fmt.Errorf("%w: %s is %s", domain.ErrBountyNotReady, id, state)
	}

	var chosen *domain.RewardOption
	for _, opt := range e.resolver.Resolve(def) {
		if opt.Category == category {
			o := opt
			chosen = &o
			break
		}
	}
	if chosen == nil || chosen.IsPlaceholder() {
		return nil, fmt.Errorf("%w: %s has no %s option", domain.ErrRewardUnavailable, id, category)
	}

	var events []event.Event

	if chosen.Category == domain.RewardCurrency {
		balance, err := e.records.BankBalance(ctx)
		if err != nil {
			return nil, err
		}
		balance += chosen.CoinAmount
		if err := e.records.SetBankBalance(ctx, balance); err != nil {
			return nil, err
		}
		events = append(events, event.NewBalanceChangedEvent(balance, chosen.CoinAmount))
	} else {
		if e.delivery == nil || !e.delivery.TryDeliver(chosen.ItemID, chosen.Stack, chosen.Quality) {
			metrics.RewardDeliveries.WithLabelValues(metrics.ResultFailed).Inc()
			log.Warn(LogMsgDeliveryFailed, "bounty_id", id, "item", chosen.ItemID)
			return nil, fmt.Errorf("%w: %s", domain.ErrDeliveryFailed, chosen.ItemID)
		}
		metrics.RewardDeliveries.WithLabelValues(metrics.ResultDelivered).Inc()
	}

	if err := e.records.SetState(ctx, id, domain.StateClaimed); err != nil {
		return nil, err
	}
	if err := e.records.ClearEncounter(ctx, id); err != nil {
		return nil, err
	}
	e.active.remove(id)

	log.Info(LogMsgBountyClaimed, "bounty_id", id, "category", category, "reward", chosen.DisplayText)
	events = append(events, event.NewBountyClaimedEvent(id, category, chosen.DisplayText))
	return events, nil
}

// ResetAll wipes every bounty record and the stored day marker,
// returning the number of removed records. The bank balance survives.
func (e *Engine) ResetAll(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.records.ResetAll(ctx)
	if err != nil {
		return 0, err
	}
	e.active.invalidate()

	logger.FromContext(ctx).Info(LogMsgResetCompleted, "records_removed", removed)
	return removed, nil
}
