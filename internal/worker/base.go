package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// BaseWorker provides the timer registry shared by workers that schedule deferred executions
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) stopTimer(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	timer, ok := w.timers[id]
	if ok {
		timer.Stop()
		delete(w.timers, id)
	}
	return ok
}

func (w *BaseWorker) hasTimer(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.timers[id]
	return ok
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) isShuttingDown() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if !w.isShuttingDown() {
		close(w.shutdown)
	}

	// Cancel all pending timers
	for id, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "giveaway_id", id)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
