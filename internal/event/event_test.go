package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	secondCalled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, secondCalled, "Later handlers still run after a failure")
}

func TestGiveawayEvents(t *testing.T) {
	g := &domain.Giveaway{
		ID:           "1700000000000",
		ChannelID:    "chan",
		MessageID:    "msg",
		EndTime:      1700003600,
		WinnersCount: 2,
		Winners:      []string{"u1", "u2"},
	}
	at := time.Unix(1700003600, 0)

	started := NewGiveawayStartedEvent(g, time.UnixMilli(1700003600250))
	assert.Equal(t, GiveawayStarted, started.Type)
	assert.Equal(t, EventSchemaVersion, started.Version)
	assert.Equal(t, g.ID, started.GetMetadataValue(MetadataKeyGiveawayID))

	payload, err := DecodePayload[GiveawayStartedPayloadV1](started.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1700003600), payload.EndTime)
	assert.Equal(t, int64(1700003600250), payload.EndsAtMs)

	ended := NewGiveawayEndedEvent(g, domain.EndTriggerTimer, 5, at)
	assert.Equal(t, domain.EndTriggerTimer, ended.GetMetadataValue(MetadataKeyTrigger))
	endedPayload, err := DecodePayload[GiveawayEndedPayloadV1](ended.Payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, endedPayload.Winners)
	assert.Equal(t, 5, endedPayload.ParticipantCount)

	joined := NewGiveawayJoinedEvent(g.ID, "u3", at)
	assert.Equal(t, GiveawayJoined, joined.Type)
	assert.Nil(t, joined.GetMetadataValue("missing"))
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"giveaway_id": "123", "user_id": "u1", "timestamp": 42}

	payload, err := DecodePayload[GiveawayJoinedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "123", payload.GiveawayID)
	assert.Equal(t, int64(42), payload.Timestamp)
}
