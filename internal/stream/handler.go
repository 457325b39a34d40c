package stream

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ironvale/bountyhall/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API key middleware already gates access; overlays connect
	// from arbitrary local origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades the request to a WebSocket and streams hub frames
// to it. The "types" query parameter takes a comma-separated event
// type filter.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}

		var eventTypes []string
		if filter := r.URL.Query().Get("types"); filter != "" {
			eventTypes = strings.Split(filter, ",")
		}

		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			conn.Close()
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		// Reader goroutine: we expect no data frames, but reading is
		// what surfaces close frames and pong responses.
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn.SetReadLimit(ReadLimit)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		connected := Frame{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}
		if err := writeFrame(conn, connected); err != nil {
			return
		}

		ticker := time.NewTicker(PingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return

			case frame, ok := <-client.Frames:
				if !ok {
					return
				}
				if err := writeFrame(conn, frame); err != nil {
					log.Warn(LogMsgWriteError, "client_id", client.ID, "error", err)
					return
				}

			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, frame Frame) error {
	conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	return conn.WriteJSON(frame)
}
