// Package stream broadcasts engine events to connected WebSocket
// clients. Overlay UIs subscribe to react to accepts, completions and
// day resets without polling the board endpoint.
package stream

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ironvale/bountyhall/internal/event"
)

// Frame is one event as sent over the wire.
type Frame struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one connected stream consumer.
type Client struct {
	ID          string
	Frames      chan Frame
	EventFilter map[string]bool // nil means all events
}

// Hub manages client connections and event broadcasting.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Frame
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewHub creates a stream hub. Call Start before attaching it to a bus.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Frame, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Attach subscribes the hub to every engine event type on the bus.
func (h *Hub) Attach(bus event.Bus) {
	forward := func(ctx context.Context, evt event.Event) error {
		h.Broadcast(string(evt.Type), evt.Payload)
		return nil
	}
	for _, typ := range []event.Type{
		event.BountyAccepted, event.BountyAbandoned, event.BountyCompleted,
		event.BountyClaimed, event.BalanceChanged, event.DayReset,
	} {
		bus.Subscribe(typ, forward)
	}
}

// Start starts the hub's broadcast loop.
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes all client channels.
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	for _, client := range h.clients {
		close(client.Frames)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.Frames)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case frame := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if client.EventFilter != nil && !client.EventFilter[frame.Type] {
					continue
				}
				// Non-blocking send; a slow client drops frames rather
				// than stalling the hub.
				select {
				case client.Frames <- frame:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a new client, optionally filtered to specific event
// types.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:     uuid.New().String(),
		Frames: make(chan Frame, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.register <- client
	return client
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for all interested clients. Dropped when
// the broadcast buffer is full.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	frame := Frame{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	select {
	case h.broadcast <- frame:
	default:
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
