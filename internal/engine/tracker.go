package engine

import (
	"context"
	"strings"

	"github.com/ironvale/bountyhall/internal/capture"
	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/event"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/metrics"
)

// OnKillEvent credits a creature death against every active kill
// bounty that matches it. The host delivers death events serially, so
// the capture stack needs no locking of its own; it is pushed before
// the engine lock is taken and popped after the published handlers ran,
// keeping the frame visible to handlers that trigger nested deaths.
func (e *Engine) OnKillEvent(ctx context.Context, kill capture.Event) error {
	e.captures.Push(kill)
	defer e.captures.Pop()

	metrics.KillEvents.Inc()

	e.mu.Lock()
	events, err := e.creditKillLocked(ctx, kill)
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.publish(ctx, events...)
	return nil
}

func (e *Engine) creditKillLocked(ctx context.Context, kill capture.Event) ([]event.Event, error) {
	if err := e.active.ensure(ctx, e.records); err != nil {
		return nil, err
	}
	// Most deaths happen with nothing accepted; skip the per-bounty
	// work entirely then.
	if e.active.empty() {
		return nil, nil
	}

	var events []event.Event
	for _, id := range e.active.snapshot() {
		def, ok := e.catalog.ByID(id)
		if !ok || def.Kind != domain.BountyKindKill {
			continue
		}
		if !strings.EqualFold(def.TargetID, kill.TargetID) {
			continue
		}
		// Leveled bounties only accept kills of the exact level, so an
		// ambient low-level creature never completes a miniboss hunt.
		if def.SpawnLevel > 0 && kill.SpawnLevel != def.SpawnLevel {
			continue
		}

		evt, err := e.incrementLocked(ctx, def, 1)
		if err != nil {
			return events, err
		}
		if evt != nil {
			events = append(events, *evt)
		}
	}
	return events, nil
}

// OnGatherEvent credits picked-up items against active gather bounties.
// The count is the stack size of the pickup.
func (e *Engine) OnGatherEvent(ctx context.Context, itemID string, count int) error {
	if count <= 0 {
		return nil
	}

	metrics.GatherEvents.Inc()

	e.mu.Lock()
	events, err := e.creditGatherLocked(ctx, itemID, count)
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.publish(ctx, events...)
	return nil
}

func (e *Engine) creditGatherLocked(ctx context.Context, itemID string, count int) ([]event.Event, error) {
	if err := e.active.ensure(ctx, e.records); err != nil {
		return nil, err
	}
	if e.active.empty() {
		return nil, nil
	}

	var events []event.Event
	for _, id := range e.active.snapshot() {
		def, ok := e.catalog.ByID(id)
		if !ok || def.Kind != domain.BountyKindGather {
			continue
		}
		if !strings.EqualFold(def.TargetID, itemID) {
			continue
		}

		evt, err := e.incrementLocked(ctx, def, count)
		if err != nil {
			return events, err
		}
		if evt != nil {
			events = append(events, *evt)
		}
	}
	return events, nil
}

// incrementLocked advances one bounty's progress by delta, clamped to
// the required amount. A completed event is returned only on the
// transition into Ready; later matching events are no-ops.
func (e *Engine) incrementLocked(ctx context.Context, def domain.BountyDefinition, delta int) (*event.Event, error) {
	progress, err := e.records.Progress(ctx, def.ID)
	if err != nil {
		return nil, err
	}
	if progress >= def.Amount {
		return nil, nil
	}

	progress += delta
	if progress > def.Amount {
		progress = def.Amount
	}
	if err := e.records.SetProgress(ctx, def.ID, progress); err != nil {
		return nil, err
	}

	if progress < def.Amount {
		return nil, nil
	}

	logger.FromContext(ctx).Info(LogMsgBountyCompleted, "bounty_id", def.ID, "progress", progress)
	evt := event.NewBountyCompletedEvent(def.ID, def.Title, progress, def.Amount)
	return &evt, nil
}

// CurrentCapture exposes the innermost death event being processed.
// Host glue uses it to attribute secondary effects (loot multipliers,
// announcements) to the right creature when deaths nest.
func (e *Engine) CurrentCapture() (capture.Event, bool) {
	return e.captures.Current()
}
