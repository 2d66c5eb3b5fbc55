package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Giveaway metric names
const (
	MetricNameGiveawaysStarted        = "giveaways_started_total"
	MetricNameGiveawaysEnded          = "giveaways_ended_total"
	MetricNameGiveawaysRerolled       = "giveaways_rerolled_total"
	MetricNameGiveawayJoins           = "giveaway_joins_total"
	MetricNameGiveawayWinnersDrawn    = "giveaway_winners_drawn_total"
	MetricNameGiveawayParticipantSize = "giveaway_participants"
)

// Discord metric names
const (
	MetricNameDiscordInteractions      = "discord_interactions_total"
	MetricNameDiscordInteractionErrors = "discord_interaction_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Giveaway metric help text
const (
	HelpTextGiveawaysStarted        = "Total number of giveaways started"
	HelpTextGiveawaysEnded          = "Total number of giveaways ended, by trigger"
	HelpTextGiveawaysRerolled       = "Total number of giveaway rerolls"
	HelpTextGiveawayJoins           = "Total number of successful giveaway joins"
	HelpTextGiveawayWinnersDrawn    = "Total number of winners drawn, by ending or reroll"
	HelpTextGiveawayParticipantSize = "Participant count of giveaways at the time they ended"
)

// Discord metric help text
const (
	HelpTextDiscordInteractions      = "Total number of Discord interactions handled"
	HelpTextDiscordInteractionErrors = "Total number of Discord interactions that failed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelTrigger = "trigger"
	LabelSource  = "source"
	LabelName    = "name"
)

// Winner draw sources
const (
	SourceEnd    = "end"
	SourceReroll = "reroll"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration in seconds
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ParticipantBuckets defines the histogram buckets for participant counts
var ParticipantBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
