package engine

import (
	"context"

	"github.com/ironvale/bountyhall/internal/domain"
)

// VisibleBounty is one row of the board view: the catalog definition
// joined with the player's current record.
type VisibleBounty struct {
	Definition domain.BountyDefinition `json:"definition"`
	State      domain.BountyState      `json:"state"`
	Progress   int                     `json:"progress"`
	BossName   string                  `json:"boss_name,omitempty"`
}

// VisibleBounties returns what the board shows for the given day:
// today's rotation plus any accepted bounty that fell out of it. An
// active hunt never disappears from the board at the day boundary.
// Rotation entries come first in draw order; carried-over accepted
// bounties follow in catalog order.
func (e *Engine) VisibleBounties(ctx context.Context, day int) ([]VisibleBounty, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	drawn := e.dailyLocked(day)
	inDraw := make(map[string]bool, len(drawn))
	for _, def := range drawn {
		inDraw[def.ID] = true
	}

	out := make([]VisibleBounty, 0, len(drawn))
	for _, def := range drawn {
		row, err := e.visibleRowLocked(ctx, def)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if err := e.active.ensure(ctx, e.records); err != nil {
		return nil, err
	}
	for _, def := range e.catalog.Entries() {
		if inDraw[def.ID] {
			continue
		}
		state, err := e.stateLocked(ctx, def.ID)
		if err != nil {
			return nil, err
		}
		if state != domain.StateActive && state != domain.StateReady {
			continue
		}
		row, err := e.visibleRowLocked(ctx, def)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (e *Engine) visibleRowLocked(ctx context.Context, def domain.BountyDefinition) (VisibleBounty, error) {
	state, err := e.stateLocked(ctx, def.ID)
	if err != nil {
		return VisibleBounty{}, err
	}
	progress, err := e.records.Progress(ctx, def.ID)
	if err != nil {
		return VisibleBounty{}, err
	}
	name, err := e.records.BossName(ctx, def.ID)
	if err != nil {
		return VisibleBounty{}, err
	}
	return VisibleBounty{Definition: def, State: state, Progress: progress, BossName: name}, nil
}
