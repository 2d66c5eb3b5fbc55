package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Giveaway lifecycle event types
const (
	GiveawayStarted  Type = domain.EventGiveawayStarted
	GiveawayEnded    Type = domain.EventGiveawayEnded
	GiveawayRerolled Type = domain.EventGiveawayRerolled
	GiveawayJoined   Type = domain.EventGiveawayJoined
)

// GiveawayStartedPayloadV1 is the typed payload for giveaway started events
type GiveawayStartedPayloadV1 struct {
	GiveawayID   string `json:"giveaway_id"`
	ChannelID    string `json:"channel_id"`
	MessageID    string `json:"message_id"`
	EndTime      int64  `json:"end_time"`
	EndsAtMs     int64  `json:"ends_at_ms"` // unrounded completion instant
	WinnersCount int    `json:"winners_count"`
}

// GiveawayEndedPayloadV1 is the typed payload for giveaway ended events
type GiveawayEndedPayloadV1 struct {
	GiveawayID       string   `json:"giveaway_id"`
	Trigger          string   `json:"trigger"`
	Winners          []string `json:"winners"`
	ParticipantCount int      `json:"participant_count"`
	Timestamp        int64    `json:"timestamp"`
}

// GiveawayRerolledPayloadV1 is the typed payload for giveaway rerolled events
type GiveawayRerolledPayloadV1 struct {
	GiveawayID       string   `json:"giveaway_id"`
	Winners          []string `json:"winners"`
	ParticipantCount int      `json:"participant_count"`
	Timestamp        int64    `json:"timestamp"`
}

// GiveawayJoinedPayloadV1 is the typed payload for giveaway joined events
type GiveawayJoinedPayloadV1 struct {
	GiveawayID string `json:"giveaway_id"`
	UserID     string `json:"user_id"`
	Timestamp  int64  `json:"timestamp"`
}

// NewGiveawayStartedEvent creates a giveaway started event completing at endsAt
func NewGiveawayStartedEvent(g *domain.Giveaway, endsAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GiveawayStarted,
		Payload: GiveawayStartedPayloadV1{
			GiveawayID:   g.ID,
			ChannelID:    g.ChannelID,
			MessageID:    g.MessageID,
			EndTime:      g.EndTime,
			EndsAtMs:     endsAt.UnixMilli(),
			WinnersCount: g.WinnersCount,
		},
		Metadata: map[string]interface{}{
			MetadataKeyGiveawayID: g.ID,
		},
	}
}

// NewGiveawayEndedEvent creates a giveaway ended event
func NewGiveawayEndedEvent(g *domain.Giveaway, trigger string, participantCount int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GiveawayEnded,
		Payload: GiveawayEndedPayloadV1{
			GiveawayID:       g.ID,
			Trigger:          trigger,
			Winners:          g.Winners,
			ParticipantCount: participantCount,
			Timestamp:        at.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyGiveawayID: g.ID,
			MetadataKeyTrigger:    trigger,
		},
	}
}

// NewGiveawayRerolledEvent creates a giveaway rerolled event
func NewGiveawayRerolledEvent(g *domain.Giveaway, participantCount int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GiveawayRerolled,
		Payload: GiveawayRerolledPayloadV1{
			GiveawayID:       g.ID,
			Winners:          g.Winners,
			ParticipantCount: participantCount,
			Timestamp:        at.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyGiveawayID: g.ID,
		},
	}
}

// NewGiveawayJoinedEvent creates a giveaway joined event
func NewGiveawayJoinedEvent(giveawayID, userID string, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GiveawayJoined,
		Payload: GiveawayJoinedPayloadV1{
			GiveawayID: giveawayID,
			UserID:     userID,
			Timestamp:  at.UnixMilli(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyGiveawayID: giveawayID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
