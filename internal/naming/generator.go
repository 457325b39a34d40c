// Package naming derives procedural boss names for named bounty
// encounters. Names are a pure function of (bounty id, gender tag, day):
// the same bounty accepted on the same day always yields the same name,
// across sessions and machines. The engine memoizes the name at
// acceptance so later day changes never rename a live encounter.
package naming

import (
	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/stablehash"
)

const daySalt = 7

// Generator produces deterministic boss names from fixed name pools.
type Generator struct {
	male     []string
	female   []string
	combined []string
}

// NewGenerator creates a Generator over the built-in name pools.
func NewGenerator() *Generator {
	combined := make([]string, 0, len(maleNames)+len(femaleNames))
	combined = append(combined, maleNames...)
	combined = append(combined, femaleNames...)
	return &Generator{
		male:     maleNames,
		female:   femaleNames,
		combined: combined,
	}
}

// Generate derives the boss name for a bounty on the given day. An
// unrecognized gender tag draws from the combined pool, same as Any.
func (g *Generator) Generate(bountyID, genderTag string, day int) string {
	pool := g.combined
	switch genderTag {
	case domain.GenderMale:
		pool = g.male
	case domain.GenderFemale:
		pool = g.female
	}

	seed := (int64(stablehash.Sum(bountyID)) + int64(day)*daySalt) & 0x7FFFFFFF
	return pool[seed%int64(len(pool))]
}
