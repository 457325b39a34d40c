package catalog

import "github.com/ironvale/bountyhall/internal/domain"

// Catalog is the immutable, load-once set of bounty definitions with an
// O(1) id index built at construction. Never mutated after New.
type Catalog struct {
	entries []domain.BountyDefinition
	byID    map[string]int
}

// New builds a catalog over the given entries. Callers are expected to
// pass sanitized entries (unique ids); the loader guarantees this.
func New(entries []domain.BountyDefinition) *Catalog {
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
	}
	return &Catalog{entries: entries, byID: byID}
}

// Entries returns all definitions in document order. The returned slice
// must not be mutated.
func (c *Catalog) Entries() []domain.BountyDefinition {
	return c.entries
}

// ByID looks up a definition by bounty id.
func (c *Catalog) ByID(id string) (domain.BountyDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.BountyDefinition{}, false
	}
	return c.entries[i], true
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// StageKeys lists the progression flag keys that gate catalog content,
// in unlock order. Index 0 is the empty key: always unlocked.
var StageKeys = []string{
	"",
	"defeated_thicket_warden",
	"defeated_fen_mother",
	"defeated_frost_jarl",
	"defeated_dune_tyrant",
	"defeated_ember_king",
}

// StageIndex maps an unlock requirement to its progression stage.
// Unknown keys fall back to stage 0 so a content typo degrades to
// always-unlocked rather than never-unlocked rewards.
func StageIndex(unlockRequirement string) int {
	for i, k := range StageKeys {
		if k == unlockRequirement {
			return i
		}
	}
	return 0
}
