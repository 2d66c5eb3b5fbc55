package worker

import (
	"context"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/event"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// AfterFunc matches time.AfterFunc
type AfterFunc func(d time.Duration, f func()) *time.Timer

// GiveawayWorker owns one completion timer per active giveaway and ends giveaways when they fire
type GiveawayWorker struct {
	BaseWorker
	service   GiveawayEnder
	pool      *Pool
	now       func() time.Time
	afterFunc AfterFunc
}

// GiveawayWorkerOption configures a GiveawayWorker
type GiveawayWorkerOption func(*GiveawayWorker)

// WithWorkerClock overrides the time source used to compute remaining offsets
func WithWorkerClock(now func() time.Time) GiveawayWorkerOption {
	return func(w *GiveawayWorker) { w.now = now }
}

// WithAfterFunc overrides timer construction
func WithAfterFunc(fn AfterFunc) GiveawayWorkerOption {
	return func(w *GiveawayWorker) { w.afterFunc = fn }
}

// NewGiveawayWorker creates a new GiveawayWorker that runs end jobs on pool
func NewGiveawayWorker(service GiveawayEnder, pool *Pool, opts ...GiveawayWorkerOption) *GiveawayWorker {
	w := &GiveawayWorker{
		service:   service,
		pool:      pool,
		now:       time.Now,
		afterFunc: time.AfterFunc,
	}
	w.init()
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Subscribe subscribes the worker to relevant events
func (w *GiveawayWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.GiveawayStarted, w.handleGiveawayStarted)
	bus.Subscribe(event.GiveawayEnded, w.handleGiveawayEnded)
}

// Start reschedules every persisted active giveaway. Overdue ones are ended right away,
// the rest get a timer for exactly their remaining offset.
func (w *GiveawayWorker) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	active, err := w.service.ListActive(ctx)
	if err != nil {
		log.Error(LogMsgFailedToListActiveOnStart, "error", err)
		return err
	}

	log.Info(LogMsgRecoveringGiveaways, "count", len(active))
	for i := range active {
		w.Schedule(ctx, active[i].ID, active[i].EndTime)
	}
	return nil
}

// Schedule arms the completion timer for a giveaway ending at endTime (epoch seconds),
// replacing any timer already registered for it
func (w *GiveawayWorker) Schedule(ctx context.Context, id string, endTime int64) {
	g := domain.Giveaway{ID: id, EndTime: endTime}
	w.arm(ctx, id, g.Remaining(w.now()))
}

// ScheduleAt arms the completion timer for a giveaway ending at the exact instant endsAt
func (w *GiveawayWorker) ScheduleAt(ctx context.Context, id string, endsAt time.Time) {
	w.arm(ctx, id, endsAt.Sub(w.now()))
}

func (w *GiveawayWorker) arm(ctx context.Context, id string, remaining time.Duration) {
	if w.isShuttingDown() {
		return
	}

	log := logger.FromContext(ctx)
	if remaining <= 0 {
		w.stopTimer(id)
		log.Info(LogMsgEndingOverdueGiveaway, "giveaway_id", id, "overdue", -remaining)
		w.dispatch(ctx, id, domain.EndTriggerTimer)
		return
	}

	log.Info(LogMsgSchedulingGiveawayEnd, "giveaway_id", id, "remaining", remaining)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isShuttingDown() {
		return
	}
	if existing, ok := w.timers[id]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = w.afterFunc(remaining, func() {
		// A replaced timer must not evict its successor
		w.mu.Lock()
		if w.timers[id] == timer {
			delete(w.timers, id)
		}
		w.mu.Unlock()

		if w.isShuttingDown() {
			return
		}
		w.dispatch(context.Background(), id, domain.EndTriggerTimer)
	})
	w.timers[id] = timer
}

// Cancel stops the pending timer for a giveaway, if any
func (w *GiveawayWorker) Cancel(id string) bool {
	return w.stopTimer(id)
}

// Scheduled reports whether a timer is pending for the giveaway
func (w *GiveawayWorker) Scheduled(id string) bool {
	return w.hasTimer(id)
}

// Pending returns the number of armed timers
func (w *GiveawayWorker) Pending() int {
	return w.pending()
}

// dispatch hands an end job to the pool and tracks it until it completes
func (w *GiveawayWorker) dispatch(ctx context.Context, id, trigger string) {
	w.wg.Add(1)
	job := &EndJob{
		Service:    w.service,
		GiveawayID: id,
		Trigger:    trigger,
		done:       w.wg.Done,
	}
	if !w.pool.Enqueue(job) {
		w.wg.Done()
		logger.FromContext(ctx).Warn(LogMsgWorkerJobRejected, "giveaway_id", id)
	}
}

func (w *GiveawayWorker) handleGiveawayStarted(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.GiveawayStartedPayloadV1](e.Payload)
	if err != nil || payload.GiveawayID == "" {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "type", e.Type, "error", err)
		return nil
	}
	if payload.EndsAtMs > 0 {
		w.ScheduleAt(ctx, payload.GiveawayID, time.UnixMilli(payload.EndsAtMs))
		return nil
	}
	w.Schedule(ctx, payload.GiveawayID, payload.EndTime)
	return nil
}

func (w *GiveawayWorker) handleGiveawayEnded(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.GiveawayEndedPayloadV1](e.Payload)
	if err != nil || payload.GiveawayID == "" {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "type", e.Type, "error", err)
		return nil
	}
	if w.Cancel(payload.GiveawayID) {
		logger.FromContext(ctx).Info(LogMsgTimerCancelled, "giveaway_id", payload.GiveawayID)
	}
	return nil
}

// Shutdown gracefully shuts down the giveaway worker, canceling all pending timers
// and waiting for any in-flight end jobs to complete
func (w *GiveawayWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, GiveawayWorkerName)
}
