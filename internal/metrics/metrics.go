package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Giveaway Metrics
var (
	GiveawaysStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiveawaysStarted,
			Help: HelpTextGiveawaysStarted,
		},
	)

	GiveawaysEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGiveawaysEnded,
			Help: HelpTextGiveawaysEnded,
		},
		[]string{LabelTrigger},
	)

	GiveawaysRerolled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiveawaysRerolled,
			Help: HelpTextGiveawaysRerolled,
		},
	)

	GiveawayJoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiveawayJoins,
			Help: HelpTextGiveawayJoins,
		},
	)

	GiveawayWinnersDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGiveawayWinnersDrawn,
			Help: HelpTextGiveawayWinnersDrawn,
		},
		[]string{LabelSource},
	)

	GiveawayParticipants = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGiveawayParticipantSize,
			Help:    HelpTextGiveawayParticipantSize,
			Buckets: ParticipantBuckets,
		},
	)
)

// Discord Metrics
var (
	DiscordInteractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordInteractions,
			Help: HelpTextDiscordInteractions,
		},
		[]string{LabelType, LabelName},
	)

	DiscordInteractionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordInteractionErrors,
			Help: HelpTextDiscordInteractionErrors,
		},
		[]string{LabelType, LabelName},
	)
)
