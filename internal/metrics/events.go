package metrics

import (
	"context"

	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/event"
)

// EventMetricsCollector subscribes to engine events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events the collector counts
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BountyAccepted,
		event.BountyAbandoned,
		event.BountyCompleted,
		event.BountyClaimed,
		event.BalanceChanged,
		event.DayReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent records counters for a published event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BountyAccepted:
		BountiesAccepted.Inc()

	case event.BountyAbandoned:
		BountiesAbandoned.Inc()

	case event.BountyCompleted:
		BountiesCompleted.Inc()

	case event.BountyClaimed:
		payload, err := event.DecodePayload[domain.BountyClaimedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		BountiesClaimed.WithLabelValues(payload.Category).Inc()

	case event.BalanceChanged:
		payload, err := event.DecodePayload[domain.BalanceChangedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		if payload.Delta > 0 {
			CoinsAwarded.Add(float64(payload.Delta))
		}

	case event.DayReset:
		DaySweeps.Inc()
	}

	return nil
}
