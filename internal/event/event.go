package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/ironvale/bountyhall/internal/domain"
)

// Type represents the type of an event
type Type string

// Event types raised by the engine. Hosts subscribe to react (UI
// refresh, chat announcements) without the engine knowing about them.
const (
	BountyAccepted  Type = Type(domain.EventTypeBountyAccepted)
	BountyAbandoned Type = Type(domain.EventTypeBountyAbandoned)
	BountyCompleted Type = Type(domain.EventTypeBountyCompleted)
	BountyClaimed   Type = Type(domain.EventTypeBountyClaimed)
	BalanceChanged  Type = Type(domain.EventTypeBalanceChanged)
	DayReset        Type = Type(domain.EventTypeDayReset)
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Type-safe event constructors

// NewBountyAcceptedEvent creates a bounty accepted event
func NewBountyAcceptedEvent(bountyID, bossName string, day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BountyAccepted,
		Payload: domain.BountyAcceptedPayloadV1{
			BountyID: bountyID,
			BossName: bossName,
			Day:      day,
		},
	}
}

// NewBountyAbandonedEvent creates a bounty abandoned event
func NewBountyAbandonedEvent(bountyID string, progress int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BountyAbandoned,
		Payload: domain.BountyAbandonedPayloadV1{
			BountyID: bountyID,
			Progress: progress,
		},
	}
}

// NewBountyCompletedEvent creates a bounty completed event
func NewBountyCompletedEvent(bountyID, title string, progress, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BountyCompleted,
		Payload: domain.BountyCompletedPayloadV1{
			BountyID: bountyID,
			Title:    title,
			Progress: progress,
			Amount:   amount,
		},
	}
}

// NewBountyClaimedEvent creates a bounty claimed event
func NewBountyClaimedEvent(bountyID string, category domain.RewardCategory, display string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BountyClaimed,
		Payload: domain.BountyClaimedPayloadV1{
			BountyID: bountyID,
			Category: string(category),
			Display:  display,
		},
	}
}

// NewBalanceChangedEvent creates a bank balance changed event
func NewBalanceChangedEvent(balance, delta int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BalanceChanged,
		Payload: domain.BalanceChangedPayloadV1{
			Balance: balance,
			Delta:   delta,
		},
	}
}

// NewDayResetEvent creates a day reset event
func NewDayResetEvent(day, claimedSwept, activeBounties int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayReset,
		Payload: domain.DayResetPayloadV1{
			Day:            day,
			ClaimedSwept:   claimedSwept,
			ActiveBounties: activeBounties,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
