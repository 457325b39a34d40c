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

// Business Metrics
var (
	BountiesAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBountiesAccepted,
			Help: HelpTextBountiesAccepted,
		},
	)

	BountiesAbandoned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBountiesAbandoned,
			Help: HelpTextBountiesAbandoned,
		},
	)

	BountiesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBountiesCompleted,
			Help: HelpTextBountiesCompleted,
		},
	)

	BountiesClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBountiesClaimed,
			Help: HelpTextBountiesClaimed,
		},
		[]string{LabelCategory},
	)

	KillEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameKillEvents,
			Help: HelpTextKillEvents,
		},
	)

	GatherEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGatherEvents,
			Help: HelpTextGatherEvents,
		},
	)

	DaySweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaySweeps,
			Help: HelpTextDaySweeps,
		},
	)

	RewardDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardDeliveries,
			Help: HelpTextRewardDeliveries,
		},
		[]string{LabelResult},
	)

	CoinsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsAwarded,
			Help: HelpTextCoinsAwarded,
		},
	)
)
