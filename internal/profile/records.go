package profile

import (
	"context"
	"strconv"
	"strings"

	"github.com/ironvale/bountyhall/internal/domain"
)

// Records is the typed view over a Store. It is the only place that
// knows the flat key layout; everything above it works with states,
// counts, names and positions.
type Records struct {
	store Store
}

// NewRecords wraps a Store.
func NewRecords(store Store) *Records {
	return &Records{store: store}
}

// StoredState returns the raw persisted state for a bounty. An absent
// key means Available (no-row-means-default). Ready is never stored -
// the engine derives it from progress on read.
func (r *Records) StoredState(ctx context.Context, bountyID string) (domain.BountyState, error) {
	val, ok, err := r.store.Get(ctx, StateKey(bountyID))
	if err != nil {
		return domain.StateAvailable, err
	}
	if !ok {
		return domain.StateAvailable, nil
	}
	switch domain.BountyState(val) {
	case domain.StateActive:
		return domain.StateActive, nil
	case domain.StateClaimed:
		return domain.StateClaimed, nil
	default:
		// Unknown stored value degrades to Available.
		return domain.StateAvailable, nil
	}
}

// SetState persists a bounty's state.
func (r *Records) SetState(ctx context.Context, bountyID string, state domain.BountyState) error {
	return r.store.Set(ctx, StateKey(bountyID), string(state))
}

// Progress returns the persisted progress count, 0 when absent or
// unparseable.
func (r *Records) Progress(ctx context.Context, bountyID string) (int, error) {
	val, ok, err := r.store.Get(ctx, ProgressKey(bountyID))
	if err != nil || !ok {
		return 0, err
	}
	n, convErr := strconv.Atoi(val)
	if convErr != nil {
		return 0, nil
	}
	return n, nil
}

// SetProgress persists a bounty's progress count.
func (r *Records) SetProgress(ctx context.Context, bountyID string, progress int) error {
	return r.store.Set(ctx, ProgressKey(bountyID), strconv.Itoa(progress))
}

// BossName returns the frozen generated name for a bounty, empty when
// none was persisted.
func (r *Records) BossName(ctx context.Context, bountyID string) (string, error) {
	val, _, err := r.store.Get(ctx, NameKey(bountyID))
	return val, err
}

// SetBossName persists the generated name. Called exactly once per
// acceptance.
func (r *Records) SetBossName(ctx context.Context, bountyID, name string) error {
	return r.store.Set(ctx, NameKey(bountyID), name)
}

// SpawnPos returns the stored encounter position, if any.
func (r *Records) SpawnPos(ctx context.Context, bountyID string) (domain.Position, bool, error) {
	val, ok, err := r.store.Get(ctx, SpawnPosKey(bountyID))
	if err != nil || !ok {
		return domain.Position{}, false, err
	}
	pos, valid := ParseSpawnPos(val)
	return pos, valid, nil
}

// SetSpawnPos persists the encounter position for a named bounty.
func (r *Records) SetSpawnPos(ctx context.Context, bountyID string, pos domain.Position) error {
	return r.store.Set(ctx, SpawnPosKey(bountyID), FormatSpawnPos(pos))
}

// ClearBounty removes every key belonging to one bounty record.
func (r *Records) ClearBounty(ctx context.Context, bountyID string) error {
	for _, key := range []string{
		StateKey(bountyID),
		ProgressKey(bountyID),
		NameKey(bountyID),
		SpawnPosKey(bountyID),
	} {
		if err := r.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// ClearEncounter removes only the name and spawn position keys, used on
// claim where state and progress survive until the day sweep.
func (r *Records) ClearEncounter(ctx context.Context, bountyID string) error {
	if err := r.store.Remove(ctx, NameKey(bountyID)); err != nil {
		return err
	}
	return r.store.Remove(ctx, SpawnPosKey(bountyID))
}

// IDsInState scans the stored state keys and returns the bounty ids
// whose persisted value matches state. This is the cold-start path for
// the active-set cache and the day sweep's claimed scan.
func (r *Records) IDsInState(ctx context.Context, state domain.BountyState) ([]string, error) {
	keys, err := r.store.Keys(ctx, KeyPrefixState)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, key := range keys {
		val, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok && domain.BountyState(val) == state {
			ids = append(ids, strings.TrimPrefix(key, KeyPrefixState))
		}
	}
	return ids, nil
}

// LastDay returns the last day the sweep ran for, -1 when never stored.
func (r *Records) LastDay(ctx context.Context) (int, error) {
	val, ok, err := r.store.Get(ctx, KeyLastDay)
	if err != nil || !ok {
		return -1, err
	}
	day, convErr := strconv.Atoi(val)
	if convErr != nil {
		return -1, nil
	}
	return day, nil
}

// SetLastDay persists the day the sweep last completed for.
func (r *Records) SetLastDay(ctx context.Context, day int) error {
	return r.store.Set(ctx, KeyLastDay, strconv.Itoa(day))
}

// BankBalance returns the persisted currency balance, 0 when absent.
func (r *Records) BankBalance(ctx context.Context) (int, error) {
	val, ok, err := r.store.Get(ctx, KeyBankBalance)
	if err != nil || !ok {
		return 0, err
	}
	bal, convErr := strconv.Atoi(val)
	if convErr != nil {
		return 0, nil
	}
	return bal, nil
}

// SetBankBalance persists the currency balance.
func (r *Records) SetBankBalance(ctx context.Context, balance int) error {
	return r.store.Set(ctx, KeyBankBalance, strconv.Itoa(balance))
}

// ResetAll removes every bounty key and the lastDay marker. The bank
// balance survives a reset. Returns the number of keys removed.
func (r *Records) ResetAll(ctx context.Context) (int, error) {
	removed := 0
	for _, prefix := range []string{KeyPrefixState, KeyPrefixProgress, KeyPrefixName, KeyPrefixSpawnPos} {
		keys, err := r.store.Keys(ctx, prefix)
		if err != nil {
			return removed, err
		}
		for _, key := range keys {
			if err := r.store.Remove(ctx, key); err != nil {
				return removed, err
			}
			removed++
		}
	}
	if _, ok, _ := r.store.Get(ctx, KeyLastDay); ok {
		if err := r.store.Remove(ctx, KeyLastDay); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
