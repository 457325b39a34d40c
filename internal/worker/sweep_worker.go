// Package worker runs background jobs that keep engine state current
// without a client request driving them.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/ironvale/bountyhall/internal/logger"
)

// Sweeper is the engine surface the worker drives. CheckDayReset is
// idempotent within a day, so firing it more often than needed is safe.
type Sweeper interface {
	CheckDayReset(ctx context.Context) error
	SecondsUntilNextDay() float64
}

// DaySweepWorker purges claimed bounties on day boundaries. It sleeps
// until just past the next boundary instead of polling on a tight
// interval, and falls back to MaxSweepWait when the remaining time is
// long or unavailable.
type DaySweepWorker struct {
	sweeper  Sweeper
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDaySweepWorker creates a new DaySweepWorker.
func NewDaySweepWorker(sweeper Sweeper) *DaySweepWorker {
	return &DaySweepWorker{
		sweeper:  sweeper,
		shutdown: make(chan struct{}),
	}
}

// Start runs an immediate catch-up sweep and schedules the next one.
// The catch-up covers days that passed while the process was down.
func (w *DaySweepWorker) Start() {
	w.executeSweep()
	w.scheduleNext()
}

func (w *DaySweepWorker) nextWait() time.Duration {
	wait := time.Duration(w.sweeper.SecondsUntilNextDay()*float64(time.Second)) + BoundaryGrace
	if wait < BoundaryGrace {
		wait = BoundaryGrace
	}
	if wait > MaxSweepWait {
		wait = MaxSweepWait
	}
	return wait
}

func (w *DaySweepWorker) scheduleNext() {
	wait := w.nextWait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(wait, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.executeSweep()
		w.scheduleNext()
	})
	w.mu.Unlock()

	logger.Info(LogMsgSweepScheduled, "next_check_at", time.Now().UTC().Add(wait))
}

// executeSweep runs the sweep in a tracked goroutine so shutdown can
// wait for it.
func (w *DaySweepWorker) executeSweep() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgSweepStarting)

		if err := w.sweeper.CheckDayReset(ctx); err != nil {
			log.Error(LogMsgSweepFailed, "error", err)
		}
	}()
}

// Shutdown cancels the pending timer and waits for any in-flight sweep
// to complete.
func (w *DaySweepWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownStuck)
		return ctx.Err()
	}
}
