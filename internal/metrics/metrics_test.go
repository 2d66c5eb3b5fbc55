package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()
	now := time.Now()

	g := &domain.Giveaway{ID: "g1", WinnersCount: 2, Winners: []string{"u1", "u2"}}

	started := testutil.ToFloat64(GiveawaysStarted)
	endedTimer := testutil.ToFloat64(GiveawaysEnded.WithLabelValues(domain.EndTriggerTimer))
	drawnEnd := testutil.ToFloat64(GiveawayWinnersDrawn.WithLabelValues(SourceEnd))
	drawnReroll := testutil.ToFloat64(GiveawayWinnersDrawn.WithLabelValues(SourceReroll))
	joins := testutil.ToFloat64(GiveawayJoins)

	require.NoError(t, bus.Publish(ctx, event.NewGiveawayStartedEvent(g, now)))
	require.NoError(t, bus.Publish(ctx, event.NewGiveawayJoinedEvent(g.ID, "u1", now)))
	require.NoError(t, bus.Publish(ctx, event.NewGiveawayEndedEvent(g, domain.EndTriggerTimer, 2, now)))

	g.Winners = []string{"u2"}
	require.NoError(t, bus.Publish(ctx, event.NewGiveawayRerolledEvent(g, 2, now)))

	assert.Equal(t, started+1, testutil.ToFloat64(GiveawaysStarted))
	assert.Equal(t, joins+1, testutil.ToFloat64(GiveawayJoins))
	assert.Equal(t, endedTimer+1, testutil.ToFloat64(GiveawaysEnded.WithLabelValues(domain.EndTriggerTimer)))
	assert.Equal(t, drawnEnd+2, testutil.ToFloat64(GiveawayWinnersDrawn.WithLabelValues(SourceEnd)))
	assert.Equal(t, drawnReroll+1, testutil.ToFloat64(GiveawayWinnersDrawn.WithLabelValues(SourceReroll)))
}

func TestRecordInteraction(t *testing.T) {
	before := testutil.ToFloat64(DiscordInteractions.WithLabelValues("command", "giveaway"))
	errBefore := testutil.ToFloat64(DiscordInteractionErrors.WithLabelValues("command", "giveaway"))

	RecordInteraction("command", "giveaway", false)
	RecordInteraction("command", "giveaway", true)

	assert.Equal(t, before+2, testutil.ToFloat64(DiscordInteractions.WithLabelValues("command", "giveaway")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(DiscordInteractionErrors.WithLabelValues("command", "giveaway")))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418"))

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418")))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}
