package worker

import "time"

// Scheduling bounds for the day sweep worker.
const (
	// BoundaryGrace is added past the computed day boundary so the
	// sweep fires after the calendar has rolled over, not on the edge.
	BoundaryGrace = 2 * time.Second

	// MaxSweepWait caps how long the worker sleeps between checks.
	// Wall clock jumps and config changes recover within this window.
	MaxSweepWait = 5 * time.Minute
)

// Log messages for day sweep worker operations
const (
	LogMsgSweepScheduled = "Day sweep scheduled"
	LogMsgSweepStarting  = "Day sweep starting"
	LogMsgSweepFailed    = "Day sweep failed"
	LogMsgShuttingDown   = "Shutting down day sweep worker"
	LogMsgShutdownDone   = "Day sweep worker shutdown complete"
	LogMsgShutdownStuck  = "Day sweep worker shutdown timeout, a sweep may still be running"
)
