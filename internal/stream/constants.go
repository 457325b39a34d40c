package stream

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// PingInterval is how often to ping idle client connections
	PingInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second

	// ReadLimit caps inbound frames; clients only send control messages
	ReadLimit = 512
)

const (
	// EventTypeConnected is the first frame a client receives
	EventTypeConnected = "connected"
)

// ==================== Log Messages ====================

const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgWriteError         = "Failed to write stream event"
)
