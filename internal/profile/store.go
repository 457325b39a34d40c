// Package profile models the per-player persisted state. The external
// format is a flat string-keyed store owned by the host's player profile;
// the engine talks to it through the typed Records layer and only
// marshals to/from flat keys at this boundary.
package profile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ironvale/bountyhall/internal/domain"
)

// Flat key layout. One conceptual record per bounty id is persisted as
// sparse "prefix:id" pairs plus two global keys.
const (
	KeyPrefixState    = "state:"
	KeyPrefixProgress = "progress:"
	KeyPrefixName     = "name:"
	KeyPrefixSpawnPos = "spawnpos:"

	KeyLastDay     = "lastDay"
	KeyBankBalance = "bankBalance"
)

// Store is the flat key/value persistence surface the host profile owns.
// All implementations must treat a missing key as absent, not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Keys returns every stored key with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// StateKey returns the flat key holding a bounty's stored state.
func StateKey(bountyID string) string { return KeyPrefixState + bountyID }

// ProgressKey returns the flat key holding a bounty's progress count.
func ProgressKey(bountyID string) string { return KeyPrefixProgress + bountyID }

// NameKey returns the flat key holding a bounty's generated boss name.
func NameKey(bountyID string) string { return KeyPrefixName + bountyID }

// SpawnPosKey returns the flat key holding a bounty's spawn position.
func SpawnPosKey(bountyID string) string { return KeyPrefixSpawnPos + bountyID }

// FormatSpawnPos encodes a position as "x,y,z" with one decimal place,
// the wire form stored under spawnpos keys.
func FormatSpawnPos(pos domain.Position) string {
	return fmt.Sprintf("%.1f,%.1f,%.1f", pos.X, pos.Y, pos.Z)
}

// ParseSpawnPos decodes a stored "x,y,z" value. Malformed values return
// ok=false rather than an error - stale or hand-edited profiles must not
// break loading.
func ParseSpawnPos(s string) (domain.Position, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return domain.Position{}, false
	}
	x, err1 := strconv.ParseFloat(parts[0], 64)
	y, err2 := strconv.ParseFloat(parts[1], 64)
	z, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return domain.Position{}, false
	}
	return domain.Position{X: x, Y: y, Z: z}, true
}
