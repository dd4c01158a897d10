package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Redis Operations Metrics
var (
	// RedisOpsTotal tracks total Redis operations by operation type and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_operations_total",
			Help: "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// RedisOpDuration tracks Redis operation latency in seconds
	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// RedisConnectionErrors tracks Redis connection errors
	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total Redis connection errors",
		},
	)

	// CircuitBreakerStateChanges tracks circuit breaker state transitions
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks current circuit breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)

// Ingestion Metrics
var (
	// TweetsIngestedTotal tracks tweets accepted into the recent feed
	TweetsIngestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tweets_ingested_total",
			Help: "Total tweets ingested",
		},
	)

	// OccurrencesRecordedTotal tracks hashtag/mention occurrence increments by domain
	OccurrencesRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "occurrences_recorded_total",
			Help: "Total occurrence increments by ranked domain",
		},
		[]string{"domain"},
	)

	// ClassifierResultsTotal tracks sentiment classification outcomes
	ClassifierResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_results_total",
			Help: "Total sentiment classifications by result (positive/negative/neutral)",
		},
		[]string{"sentiment"},
	)
)

// Trending Metrics
var (
	// TrendingUpdatesTotal tracks snapshot upserts by domain and status
	TrendingUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trending_updates_total",
			Help: "Total trending snapshot upserts by domain and status",
		},
		[]string{"domain", "status"},
	)

	// AnomaliesDetectedTotal tracks volume anomalies pushed to the alert feed
	AnomaliesDetectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anomalies_detected_total",
			Help: "Total volume anomalies detected during coin updates",
		},
	)

	// DegradedReadsTotal tracks read operations that degraded to an empty result
	DegradedReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degraded_reads_total",
			Help: "Total reads that returned empty due to a backend failure, by operation",
		},
		[]string{"operation"},
	)
)

// HTTP Request Metrics
// Note: http_errors_total{type} is provided by the internal/errors package.
