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

// Business metric names
const (
	MetricNameBountiesAccepted  = "bounties_accepted_total"
	MetricNameBountiesAbandoned = "bounties_abandoned_total"
	MetricNameBountiesCompleted = "bounties_completed_total"
	MetricNameBountiesClaimed   = "bounties_claimed_total"
	MetricNameKillEvents        = "kill_events_total"
	MetricNameGatherEvents      = "gather_events_total"
	MetricNameDaySweeps         = "day_sweeps_total"
	MetricNameRewardDeliveries  = "reward_deliveries_total"
	MetricNameCoinsAwarded      = "coins_awarded_total"
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

// Business metric help text
const (
	HelpTextBountiesAccepted  = "Total number of bounties accepted"
	HelpTextBountiesAbandoned = "Total number of bounties abandoned"
	HelpTextBountiesCompleted = "Total number of bounties completed"
	HelpTextBountiesClaimed   = "Total number of bounties claimed"
	HelpTextKillEvents        = "Total number of kill events processed"
	HelpTextGatherEvents      = "Total number of gather events processed"
	HelpTextDaySweeps         = "Total number of day-boundary sweeps performed"
	HelpTextRewardDeliveries  = "Total number of reward delivery attempts"
	HelpTextCoinsAwarded      = "Total coins paid out through claims"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCategory = "category"
	LabelResult   = "result"
)

// Delivery result label values
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
