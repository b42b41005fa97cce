package prometheus

import (
	"time"

	"commerce-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity operation metrics, labelled by entity and operation
	EntityOperationsCounter prometheus.CounterVec

	// Tenant metrics
	TenantProvisionedCounter prometheus.Counter
	OwnershipDeniedCounter   prometheus.Counter

	// Relation resolver metrics
	RelationResolvedCounter prometheus.CounterVec

	// Authentication metrics
	AuthErrorsCounter prometheus.CounterVec
	ActiveTokensGauge prometheus.Gauge
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(appConfig *config.Config) {
	prefix := appConfig.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)

	TenantProvisionedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_tenants_provisioned_total",
			Help: "Total number of tenants provisioned lazily",
		},
	)

	OwnershipDeniedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_ownership_denied_total",
			Help: "Total number of mutations rejected by the ownership check",
		},
	)

	RelationResolvedCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_relations_resolved_total",
			Help: "Total number of name-to-id relation resolutions",
		},
		[]string{"relation"},
	)

	AuthErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)

	ActiveTokensGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_active_tokens",
			Help: "Number of JWT tokens issued and not yet expired",
		},
	)
}

// RecordEntityOperation increments the entity operations counter
func RecordEntityOperation(entity, operation string) {
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordAuthError increments the auth error counter for the given reason
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// TrackDBOperation returns a function that records the duration of a database
// operation when called. Use with defer:
//
//	defer prometheus.TrackDBOperation("query")(time.Now())
func TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		DbOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
