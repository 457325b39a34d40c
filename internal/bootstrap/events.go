package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ironvale/bountyhall/internal/config"
	"github.com/ironvale/bountyhall/internal/event"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/metrics"
)

// InitializeEventSystem creates the event bus, wraps it in the
// resilient publisher and attaches the metrics collector.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("failed to create dead-letter directory: %w", err)
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: deadLetterPath,
	})

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, nil, fmt.Errorf("failed to register metrics collector: %w", err)
	}

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return bus, publisher, nil
}
