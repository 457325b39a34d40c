package engine

import "github.com/ironvale/bountyhall/internal/domain"

// Calendar is the host's in-game time source. A nil Calendar is treated
// as "very early startup": the engine answers with day 0 and defers
// day-dependent work instead of failing.
type Calendar interface {
	CurrentDay() int
	SecondsUntilNextDay() float64
}

// Delivery hands a resolved item reward to the player. Implementations
// fall back to a ground drop on a full inventory; a false return means
// the reward could not be delivered at all and the claim must not
// finalize.
type Delivery interface {
	TryDeliver(itemID string, stack, quality int) bool
}

// Spawner places the named encounter for a miniboss or raid bounty.
// Returns the spawn position and whether the spawn happened; a failed
// spawn does not block acceptance, the kill targets then come from
// ambient creatures.
type Spawner interface {
	Spawn(targetID string, level, count int, name string) (domain.Position, bool)
}
