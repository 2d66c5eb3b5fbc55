package metrics

import (
	"context"

	"github.com/osse101/GiveawayBot_Go/internal/event"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all giveaway events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.GiveawayStarted,
		event.GiveawayEnded,
		event.GiveawayRerolled,
		event.GiveawayJoined,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.GiveawayStartedPayloadV1:
		GiveawaysStarted.Inc()

	case event.GiveawayEndedPayloadV1:
		GiveawaysEnded.WithLabelValues(payload.Trigger).Inc()
		GiveawayWinnersDrawn.WithLabelValues(SourceEnd).Add(float64(len(payload.Winners)))
		GiveawayParticipants.Observe(float64(payload.ParticipantCount))

	case event.GiveawayRerolledPayloadV1:
		GiveawaysRerolled.Inc()
		GiveawayWinnersDrawn.WithLabelValues(SourceReroll).Add(float64(len(payload.Winners)))

	case event.GiveawayJoinedPayloadV1:
		GiveawayJoins.Inc()

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordInteraction counts one handled Discord interaction, and its failure when failed is true
func RecordInteraction(kind, name string, failed bool) {
	DiscordInteractions.WithLabelValues(kind, name).Inc()
	if failed {
		DiscordInteractionErrors.WithLabelValues(kind, name).Inc()
	}
}
