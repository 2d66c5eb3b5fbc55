package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/GiveawayBot_Go/internal/event"
	"github.com/osse101/GiveawayBot_Go/internal/metrics"
	"github.com/osse101/GiveawayBot_Go/internal/worker"
)

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	GiveawayWorker *worker.GiveawayWorker
}

// RegisterEventHandlers sets up all event subscribers:
// - Giveaway worker (schedules and cancels completion timers)
// - Metrics collector (lifecycle counters)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	if deps.GiveawayWorker != nil {
		deps.GiveawayWorker.Subscribe(deps.EventBus)
		slog.Info(LogMsgGiveawayWorkerSubscribed)
	}

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
