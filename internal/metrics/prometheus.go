package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all the Prometheus metrics for the console backend
type Metrics struct {
	// Request counters
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Business metrics
	CampaignsCreated   *prometheus.CounterVec
	CampaignsRejected  prometheus.Counter
	FilterChanges      *prometheus.CounterVec
	ServiceCalls       *prometheus.CounterVec
	ServiceCallLatency *prometheus.HistogramVec

	// Storage metrics
	StorageOperations *prometheus.CounterVec
	StorageErrors     *prometheus.CounterVec
	StorageLatency    *prometheus.HistogramVec

	EventsPublished *prometheus.CounterVec

	HealthCheckStatus *prometheus.GaugeVec
}

// NewPrometheusMetrics creates all metrics and registers them with reg.
// Passing prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignconsole_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaignconsole_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "campaignconsole_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
			[]string{"method", "endpoint"},
		),

		CampaignsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignconsole_campaigns_created_total",
				Help: "Total number of campaigns created",
			},
			[]string{"type"},
		),

		CampaignsRejected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "campaignconsole_campaigns_rejected_total",
				Help: "Total number of campaign submissions rejected by validation",
			},
		),

		FilterChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignconsole_filter_changes_total",
				Help: "Total number of campaign type filter changes",
			},
			[]string{"type"},
		),

		ServiceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignconsole_service_calls_total",
				Help: "Total number of campaign service calls",
			},
			[]string{"method", "success"},
		),

		ServiceCallLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaignconsole_service_call_duration_seconds",
				Help:    "Campaign service call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),

		StorageOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignconsole_storage_operations_total",
				Help: "Total number of storage record operations",
			},
			[]string{"operation", "backend"},
		),

		StorageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignconsole_storage_errors_total",
				Help: "Total number of storage record errors",
			},
			[]string{"operation", "backend", "error_type"},
		),

		StorageLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaignconsole_storage_operation_duration_seconds",
				Help:    "Storage record operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "backend"},
		),

		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignconsole_events_published_total",
				Help: "Total number of campaign events published",
			},
			[]string{"event", "success"},
		),

		HealthCheckStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "campaignconsole_health_check_status",
				Help: "Health check status (1 = healthy, 0 = unhealthy)",
			},
			[]string{"check_type"},
		),
	}
}

// RecordHTTPRequest records an HTTP request with its duration and status
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// IncRequestsInFlight increments the in-flight requests gauge
func (m *Metrics) IncRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Inc()
}

// DecRequestsInFlight decrements the in-flight requests gauge
func (m *Metrics) DecRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Dec()
}

// RecordCampaignCreated counts a stored campaign by type
func (m *Metrics) RecordCampaignCreated(campaignType string) {
	m.CampaignsCreated.WithLabelValues(campaignType).Inc()
}

// RecordCampaignRejected counts a submission that failed validation
func (m *Metrics) RecordCampaignRejected() {
	m.CampaignsRejected.Inc()
}

// RecordFilterChange counts a filter change to the given type
func (m *Metrics) RecordFilterChange(filter string) {
	m.FilterChanges.WithLabelValues(filter).Inc()
}

// RecordServiceCall records one service method call
func (m *Metrics) RecordServiceCall(method string, success bool, duration float64) {
	m.ServiceCalls.WithLabelValues(method, boolLabel(success)).Inc()
	m.ServiceCallLatency.WithLabelValues(method).Observe(duration)
}

// RecordStorageOperation records a storage operation and its duration
func (m *Metrics) RecordStorageOperation(operation, backend string, duration float64) {
	m.StorageOperations.WithLabelValues(operation, backend).Inc()
	m.StorageLatency.WithLabelValues(operation, backend).Observe(duration)
}

// RecordStorageError records a failed storage operation
func (m *Metrics) RecordStorageError(operation, backend, errorType string) {
	m.StorageErrors.WithLabelValues(operation, backend, errorType).Inc()
}

// RecordEventPublished records an event publish attempt
func (m *Metrics) RecordEventPublished(event string, success bool) {
	m.EventsPublished.WithLabelValues(event, boolLabel(success)).Inc()
}

// SetHealthCheckStatus sets the health check status
func (m *Metrics) SetHealthCheckStatus(checkType string, healthy bool) {
	status := 0.0
	if healthy {
		status = 1.0
	}
	m.HealthCheckStatus.WithLabelValues(checkType).Set(status)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
