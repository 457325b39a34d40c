package engine

// daySeedPrime turns a day number into a PRNG seed for the daily draw.
// The multiplication runs in 64-bit and is reduced mod MaxInt32 so
// large day values never overflow.
const daySeedPrime = 31337

// ==================== Log Messages ====================

const (
	LogMsgBountyAccepted    = "Bounty accepted"
	LogMsgBountyAbandoned   = "Bounty abandoned"
	LogMsgBountyCompleted   = "Bounty completed"
	LogMsgBountyClaimed     = "Bounty claimed"
	LogMsgSpawnFailed       = "Encounter spawn failed, counting ambient kills"
	LogMsgDeliveryFailed    = "Reward delivery failed, claim not finalized"
	LogMsgDaySweepCompleted = "Day sweep completed"
	LogMsgActiveSetRebuilt  = "Active set rebuilt from store"
	LogMsgResetCompleted    = "Player bounty state reset"
)
