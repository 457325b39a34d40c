package engine

import (
	"context"

	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/event"
	"github.com/ironvale/bountyhall/internal/logger"
)

// CheckDayReset runs the day-boundary sweep if the calendar moved past
// the last swept day. Claimed records are purged so those bounties can
// reappear in a future rotation; active and ready bounties survive the
// boundary untouched. Safe to call on every poll: the persisted
// lastDay marker makes repeat calls for the same day no-ops.
func (e *Engine) CheckDayReset(ctx context.Context) error {
	e.mu.Lock()
	evt, swept, err := e.sweepLocked(ctx)
	e.mu.Unlock()
	if err != nil {
		return err
	}
	if !swept {
		return nil
	}

	e.publish(ctx, evt)
	return nil
}

func (e *Engine) sweepLocked(ctx context.Context) (event.Event, bool, error) {
	if e.cal == nil {
		return event.Event{}, false, nil
	}

	day := e.cal.CurrentDay()
	lastDay, err := e.records.LastDay(ctx)
	if err != nil {
		return event.Event{}, false, err
	}
	if day == lastDay {
		return event.Event{}, false, nil
	}

	claimed, err := e.records.IDsInState(ctx, domain.StateClaimed)
	if err != nil {
		return event.Event{}, false, err
	}
	for _, id := range claimed {
		if err := e.records.ClearBounty(ctx, id); err != nil {
			return event.Event{}, false, err
		}
	}

	if err := e.records.SetLastDay(ctx, day); err != nil {
		return event.Event{}, false, err
	}

	// The claimed purge never touches active records, but rebuilding
	// from the store keeps the cache honest after external edits too.
	e.active.invalidate()
	if err := e.active.ensure(ctx, e.records); err != nil {
		return event.Event{}, false, err
	}
	activeCount := len(e.active.snapshot())

	logger.FromContext(ctx).Info(LogMsgDaySweepCompleted,
		"day", day, "claimed_swept", len(claimed), "active_bounties", activeCount)
	return event.NewDayResetEvent(day, len(claimed), activeCount), true, nil
}
