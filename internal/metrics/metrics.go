// Package metrics exposes Prometheus metrics for the dashboard.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

// Prediction outcomes.
const (
	OutcomeAvailable   = "available"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Manager owns the dashboard collectors and the registry they are served from.
type Manager struct {
	registry *prometheus.Registry

	storageFaults       *prometheus.CounterVec
	queryDuration       *prometheus.HistogramVec
	predictions         *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager registers every dashboard collector on registry.
func NewManager(registry *prometheus.Registry) *Manager {
	auto := promauto.With(registry)

	return &Manager{
		registry: registry,
		storageFaults: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_faults_total",
			Help:      "Storage faults swallowed by the query layer",
		}, []string{"subject", "operation"}),
		queryDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Duration of query layer reads",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"subject", "operation"}),
		predictions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Risk predictions by outcome",
		}, []string{"subject", "outcome"}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics

func init() { //nolint:gochecknoinits
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	globalManager = NewManager(registry)
}

// Default returns the process-wide manager.
func Default() *Manager {
	return globalManager
}

// Registry returns the registry collectors are served from.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StorageFaults returns the fault counter for one subject and operation.
func (m *Manager) StorageFaults(subject, operation string) prometheus.Counter {
	return m.storageFaults.WithLabelValues(subject, operation)
}

// Predictions returns the prediction counter for one subject and outcome.
func (m *Manager) Predictions(subject, outcome string) prometheus.Counter {
	return m.predictions.WithLabelValues(subject, outcome)
}

// HTTPRequests returns the request counter for one route, method and status.
func (m *Manager) HTTPRequests(route, method, status string) prometheus.Counter {
	return m.httpRequests.WithLabelValues(route, method, status)
}

// RecordStorageFault counts a swallowed storage fault.
func RecordStorageFault(subject, operation string) {
	globalManager.StorageFaults(subject, operation).Inc()
}

// ObserveQuery records how long a query layer read took.
func ObserveQuery(subject, operation string, d time.Duration) {
	globalManager.queryDuration.WithLabelValues(subject, operation).Observe(d.Seconds())
}

// RecordPrediction counts a prediction outcome.
func RecordPrediction(subject, outcome string) {
	globalManager.Predictions(subject, outcome).Inc()
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(route, method, status string, d time.Duration) {
	globalManager.HTTPRequests(route, method, status).Inc()
	globalManager.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
