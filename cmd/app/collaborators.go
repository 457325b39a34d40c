package main

import (
	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/stream"
)

// Stream frame types for host glue instructions.
const (
	frameTypeDeliverReward  = "reward.deliver"
	frameTypeSpawnRequested = "encounter.spawn_requested"
)

// streamDelivery pushes item deliveries to the host glue over the
// event stream. The glue is responsible for the in-game handover and
// falls back to a ground drop on a full inventory, so delivery is
// reported as succeeded once the instruction is queued.
type streamDelivery struct {
	hub *stream.Hub
}

func (d *streamDelivery) TryDeliver(itemID string, stack, quality int) bool {
	d.hub.Broadcast(frameTypeDeliverReward, map[string]interface{}{
		"item_id": itemID,
		"stack":   stack,
		"quality": quality,
	})
	logger.Info("Reward delivery queued", "item", itemID, "stack", stack)
	return true
}

// streamSpawner asks the host glue to place the encounter. The glue
// picks the position, so none is known here; kill tracking proceeds on
// ambient matching until the glue reports kills back.
type streamSpawner struct {
	hub *stream.Hub
}

func (s *streamSpawner) Spawn(targetID string, level, count int, name string) (domain.Position, bool) {
	s.hub.Broadcast(frameTypeSpawnRequested, map[string]interface{}{
		"target_id": targetID,
		"level":     level,
		"count":     count,
		"name":      name,
	})
	return domain.Position{}, false
}
