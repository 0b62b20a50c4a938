// Package metrics provides Prometheus metrics for the result ingestion service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every metric of the service. A nil *Manager is valid and
// records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	ingestCycles    *prometheus.CounterVec
	ingestDuration  *prometheus.HistogramVec
	resultsApplied  *prometheus.CounterVec
	resultsRejected *prometheus.CounterVec
	resultsUnmapped *prometheus.CounterVec
	publishErrors   prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a new metrics manager on its own registry unless one is
// supplied.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "oasisbet",
		subsystem:        "results",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.ingestCycles = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ingest_cycles_total",
			Help:      "Ingestion runs by competition and status",
		},
		[]string{"comp_type", "status"},
	)

	m.ingestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a competition ingestion",
			Buckets:   m.histogramBuckets,
		},
		[]string{"comp_type"},
	)

	m.resultsApplied = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "results_applied_total",
			Help:      "Results written to an open mapping",
		},
		[]string{"comp_type"},
	)

	m.resultsRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "results_rejected_total",
			Help:      "Results not applied because the mapping already holds result data",
		},
		[]string{"comp_type"},
	)

	m.resultsUnmapped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "results_unmapped_total",
			Help:      "Completed provider results without an internal event",
		},
		[]string{"comp_type"},
	)

	m.publishErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "publish_errors_total",
		Help:      "Applied results that could not be published",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordIngest records one competition ingestion. status is a short label
// such as "ok" or "provider_unavailable".
func (m *Manager) RecordIngest(compType, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.ingestCycles.WithLabelValues(compType, status).Inc()
	m.ingestDuration.WithLabelValues(compType).Observe(d.Seconds())
}

func (m *Manager) RecordApplied(compType string) {
	if m == nil {
		return
	}
	m.resultsApplied.WithLabelValues(compType).Inc()
}

func (m *Manager) RecordRejected(compType string) {
	if m == nil {
		return
	}
	m.resultsRejected.WithLabelValues(compType).Inc()
}

func (m *Manager) RecordUnmapped(compType string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.resultsUnmapped.WithLabelValues(compType).Add(float64(n))
}

func (m *Manager) RecordPublishError() {
	if m == nil {
		return
	}
	m.publishErrors.Inc()
}

func (m *Manager) RecordHTTPRequest(endpoint, method string, statusCode int, d time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(statusCode)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(d.Seconds())
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
