package engine

import (
	"context"

	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/profile"
)

// activeSet is the lazily-built index of bounty ids currently in state
// Active. It exists to make per-event progress updates proportional to
// the accepted-bounty count instead of the catalog size. The persisted
// records stay authoritative: the set is rebuilt from them on first use
// and after explicit invalidation, and updated incrementally on
// accept/abandon/claim/day-sweep in between.
type activeSet struct {
	ids    map[string]bool
	loaded bool
}

// ensure populates the set from the store on first use.
func (a *activeSet) ensure(ctx context.Context, records *profile.Records) error {
	if a.loaded {
		return nil
	}

	ids, err := records.IDsInState(ctx, domain.StateActive)
	if err != nil {
		return err
	}

	a.ids = make(map[string]bool, len(ids))
	for _, id := range ids {
		a.ids[id] = true
	}
	a.loaded = true

	logger.FromContext(ctx).Debug(LogMsgActiveSetRebuilt, "count", len(ids))
	return nil
}

func (a *activeSet) add(id string) {
	if a.loaded {
		a.ids[id] = true
	}
}

func (a *activeSet) remove(id string) {
	if a.loaded {
		delete(a.ids, id)
	}
}

// invalidate drops the cached set; the next use rescans the store.
func (a *activeSet) invalidate() {
	a.ids = nil
	a.loaded = false
}

func (a *activeSet) empty() bool {
	return a.loaded && len(a.ids) == 0
}

// snapshot returns the active ids. Callers may mutate records while
// iterating, so the ids are copied out.
func (a *activeSet) snapshot() []string {
	out := make([]string, 0, len(a.ids))
	for id := range a.ids {
		out = append(out, id)
	}
	return out
}
