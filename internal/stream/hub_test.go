package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/bountyhall/internal/event"
	"github.com/ironvale/bountyhall/internal/testing/leaktest"
)

func waitRegistered(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == n
	}, time.Second, 5*time.Millisecond)
}

func waitFrame(t *testing.T, client *Client) Frame {
	t.Helper()
	select {
	case frame := <-client.Frames:
		return frame
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return Frame{}
	}
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitRegistered(t, hub, 1)
	hub.Broadcast("bounty.completed", map[string]int{"progress": 5})

	frame := waitFrame(t, client)
	assert.Equal(t, "bounty.completed", frame.Type)
	assert.NotEmpty(t, frame.ID)
}

func TestHub_FilterExcludesOtherTypes(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register([]string{"day.reset"})
	waitRegistered(t, hub, 1)
	hub.Broadcast("bounty.accepted", nil)
	hub.Broadcast("day.reset", nil)

	frame := waitFrame(t, client)
	assert.Equal(t, "day.reset", frame.Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitRegistered(t, hub, 1)
	hub.Unregister(client.ID)

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-client.Frames:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_AttachForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	hub.Attach(bus)

	client := hub.Register(nil)
	waitRegistered(t, hub, 1)
	require.NoError(t, bus.Publish(context.Background(), event.NewDayResetEvent(5, 2, 1)))

	frame := waitFrame(t, client)
	assert.Equal(t, string(event.DayReset), frame.Type)
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()

		client := hub.Register(nil)
		waitRegistered(t, hub, 1)
		hub.Broadcast("connected", nil)
		waitFrame(t, client)

		hub.Stop()
	})
}
