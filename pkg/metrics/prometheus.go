// Package metrics provides Prometheus metrics for the chromascreen
// screening service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Buckets for the excess-distance histogram, spanning normal variation up
// to strong deficiencies on the saturated panel.
var totalErrorBuckets = []float64{5, 10, 20, 30, 60, 100, 150, 250, 400, 600} //nolint:gochecknoglobals // shared bucket layout

// Manager manages all Prometheus metrics for the screening service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Screening metrics - session and scoring flow
	sessionsCreated      *prometheus.CounterVec
	scorings             *prometheus.CounterVec
	invalidSequences     prometheus.Counter
	duplicateSubmissions prometheus.Counter
	sessionsRejected     prometheus.Counter
	totalErrorObserved   *prometheus.HistogramVec
	scoringDuration      prometheus.Histogram

	// Operational health metrics
	activeSessions prometheus.Gauge
	seenSetSize    prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics by endpoint/type
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec

	// System performance metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "chroma",
		subsystem:        "screening",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sessionsCreated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_created_total",
		Help:      "Total number of screening sessions dealt, by panel",
	}, []string{"panel"})

	m.scorings = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scorings_total",
		Help:      "Total number of scored arrangements, by panel and classification",
	}, []string{"panel", "classification"})

	m.invalidSequences = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_sequences_total",
		Help:      "Total number of submissions rejected by sequence validation",
	})

	m.duplicateSubmissions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_submissions_total",
		Help:      "Total number of submissions for sessions that were already scored",
	})

	m.sessionsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_rejected_total",
		Help:      "Total number of session creations rejected at capacity",
	})

	m.totalErrorObserved = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "arrangement_total_error",
		Help:      "Histogram of excess perceptual distance per scored arrangement",
		Buckets:   totalErrorBuckets,
	}, []string{"panel"})

	m.scoringDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_duration_milliseconds",
		Help:      "Histogram of arrangement scoring duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.activeSessions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_sessions",
		Help:      "Number of sessions currently awaiting an arrangement",
	})

	m.seenSetSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seen_set_size",
		Help:      "Number of scored session ids held by the idempotency guard",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of error responses by endpoint and method",
	}, []string{"endpoint", "method", "error_type"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Total number of errors by type and severity",
	}, []string{"error_type", "severity"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry returns the custom Prometheus registry serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording on the global manager.

// RecordSessionCreated counts a dealt session for the given panel.
func RecordSessionCreated(panel string) {
	if globalManager.enabled {
		globalManager.sessionsCreated.WithLabelValues(panel).Inc()
	}
}

// RecordScoring counts a scored arrangement and observes its excess error.
func RecordScoring(panel, classification string, totalError float64) {
	if globalManager.enabled {
		globalManager.scorings.WithLabelValues(panel, classification).Inc()
		globalManager.totalErrorObserved.WithLabelValues(panel).Observe(totalError)
	}
}

// RecordScoringDuration observes how long one scoring call took.
func RecordScoringDuration(ms float64) {
	if globalManager.enabled {
		globalManager.scoringDuration.Observe(ms)
	}
}

// RecordInvalidSequence counts a submission rejected by validation.
func RecordInvalidSequence() {
	if globalManager.enabled {
		globalManager.invalidSequences.Inc()
	}
}

// RecordDuplicateSubmission counts a resubmission of a scored session.
func RecordDuplicateSubmission() {
	if globalManager.enabled {
		globalManager.duplicateSubmissions.Inc()
	}
}

// RecordSessionRejected counts a session creation refused at capacity.
func RecordSessionRejected() {
	if globalManager.enabled {
		globalManager.sessionsRejected.Inc()
	}
}

// UpdateActiveSessions sets the active session gauge.
func UpdateActiveSessions(n int) {
	if globalManager.enabled {
		globalManager.activeSessions.Set(float64(n))
	}
}

// UpdateSeenSetSize sets the idempotency guard gauge.
func UpdateSeenSetSize(n int64) {
	if globalManager.enabled {
		globalManager.seenSetSize.Set(float64(n))
	}
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

// RecordErrorByEndpoint counts an error response on an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RecordErrorByType counts an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	if globalManager.enabled {
		globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
	}
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(n))
	}
}
