package reward

// Difficulty multipliers applied to currency amounts and item stacks.
const (
	MultiplierNormal   = 1.0
	MultiplierRaid     = 1.25
	MultiplierMiniboss = 1.5
)

// PlaceholderDisplay fills a menu slot whose pool had no candidates.
const PlaceholderDisplay = "???"
