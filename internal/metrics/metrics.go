package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	StatsRequests     *prometheus.CounterVec
	StatsDuration     *prometheus.HistogramVec
	NotificationsSent *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventlisting",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "eventlisting",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StatsRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventlisting",
			Subsystem: "stats_client",
			Name:      "requests_total",
			Help:      "Calls to the statistics service, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		StatsDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "eventlisting",
			Subsystem: "stats_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to the statistics service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventlisting",
			Name:      "notifications_total",
			Help:      "Owner notification emails, by template and outcome.",
		}, []string{"template", "outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.StatsRequests,
		m.StatsDuration,
		m.NotificationsSent,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveStats records one call to the statistics service.
func (m *Metrics) ObserveStats(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.StatsRequests.WithLabelValues(operation, outcome).Inc()
	m.StatsDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObserveNotification records one owner notification attempt.
func (m *Metrics) ObserveNotification(template string, err error) {
	if m == nil {
		return
	}
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	m.NotificationsSent.WithLabelValues(template, outcome).Inc()
}
