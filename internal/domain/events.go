package domain

// Event type constants used across the engine for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "bounty.accepted")
const (
	// EventTypeBountyAccepted is published when a player accepts a bounty
	EventTypeBountyAccepted = "bounty.accepted"

	// EventTypeBountyAbandoned is published when a player abandons an active bounty
	EventTypeBountyAbandoned = "bounty.abandoned"

	// EventTypeBountyCompleted is published when progress reaches the required amount
	EventTypeBountyCompleted = "bounty.completed"

	// EventTypeBountyClaimed is published after a reward is delivered and the
	// record is persisted as claimed
	EventTypeBountyClaimed = "bounty.claimed"

	// EventTypeBalanceChanged is published when a currency reward lands in the
	// bank balance. Hosts subscribe to refresh any balance display - the engine
	// never reaches into UI internals.
	EventTypeBalanceChanged = "bank.balance_changed"

	// EventTypeDayReset is published once per day boundary after the claimed
	// sweep completes
	EventTypeDayReset = "day.reset"
)

// BountyAcceptedPayloadV1 is the typed payload for bounty accepted events
type BountyAcceptedPayloadV1 struct {
	BountyID string `json:"bounty_id"`
	BossName string `json:"boss_name,omitempty"`
	Day      int    `json:"day"`
}

// BountyAbandonedPayloadV1 is the typed payload for bounty abandoned events
type BountyAbandonedPayloadV1 struct {
	BountyID string `json:"bounty_id"`
	Progress int    `json:"progress"`
}

// BountyCompletedPayloadV1 is the typed payload for bounty completed events
type BountyCompletedPayloadV1 struct {
	BountyID string `json:"bounty_id"`
	Title    string `json:"title"`
	Progress int    `json:"progress"`
	Amount   int    `json:"amount"`
}

// BountyClaimedPayloadV1 is the typed payload for bounty claimed events
type BountyClaimedPayloadV1 struct {
	BountyID string `json:"bounty_id"`
	Category string `json:"category"`
	Display  string `json:"display"`
}

// BalanceChangedPayloadV1 is the typed payload for bank balance events
type BalanceChangedPayloadV1 struct {
	Balance int `json:"balance"`
	Delta   int `json:"delta"`
}

// DayResetPayloadV1 is the typed payload for day reset events
type DayResetPayloadV1 struct {
	Day            int `json:"day"`
	ClaimedSwept   int `json:"claimed_swept"`
	ActiveBounties int `json:"active_bounties"`
}
