package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/domain"
)

func TestMemoryBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var got []Event
	bus.Subscribe(BountyAccepted, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := bus.Publish(context.Background(), NewBountyAcceptedEvent("mb_fen_stalker_alpha", "Katla", 12))
	require.NoError(t, err)
	require.Len(t, got, 1)

	payload, err := DecodePayload[domain.BountyAcceptedPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "mb_fen_stalker_alpha", payload.BountyID)
	assert.Equal(t, "Katla", payload.BossName)
	assert.Equal(t, 12, payload.Day)
}

func TestMemoryBus_NoSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewDayResetEvent(3, 2, 1)))
}

func TestMemoryBus_HandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(BalanceChanged, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	called := false
	bus.Subscribe(BalanceChanged, func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), NewBalanceChangedEvent(500, 150))
	assert.Error(t, err)
	assert.True(t, called, "later handlers still run after a failure")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"bounty_id": "kill_frost_wolf", "progress": float64(3)}

	payload, err := DecodePayload[domain.BountyAbandonedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "kill_frost_wolf", payload.BountyID)
	assert.Equal(t, 3, payload.Progress)
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.EqualValues(t, 2, int(CalculateRetryDelay(2, 1)))
	assert.EqualValues(t, 4, int(CalculateRetryDelay(2, 2)))
	assert.EqualValues(t, 8, int(CalculateRetryDelay(2, 3)))
	assert.EqualValues(t, 32, int(CalculateRetryDelay(2, 5)))
}
