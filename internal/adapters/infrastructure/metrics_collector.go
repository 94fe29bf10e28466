package infrastructure

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"climatestats.app/pkg/errors"
)

// PrometheusMetricsCollector implements the MetricsCollector port with
// Prometheus counters and histograms
type PrometheusMetricsCollector struct {
	queryDuration      *prometheus.HistogramVec
	activeStation      *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpRequestLatency *prometheus.HistogramVec
}

// NewPrometheusMetricsCollector registers the collectors with reg
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "climate_query_duration_seconds",
				Help:    "Query core operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "outcome"},
		),
		activeStation: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "climate_active_station_lookups_total",
				Help: "The total number of most active station lookups",
			},
			[]string{"result"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "climate_http_requests_total",
				Help: "The total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "climate_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordQuery observes one query core operation
func (m *PrometheusMetricsCollector) RecordQuery(_ context.Context, operation string, duration time.Duration, err error) {
	m.queryDuration.WithLabelValues(operation, outcome(err)).Observe(duration.Seconds())
}

// RecordActiveStationLookup counts cache hits and computations of the active station
func (m *PrometheusMetricsCollector) RecordActiveStationLookup(_ context.Context, cached bool) {
	result := "miss"
	if cached {
		result = "hit"
	}
	m.activeStation.WithLabelValues(result).Inc()
}

// RecordHTTPRequest observes one served request. route is the route pattern, not the raw path.
func (m *PrometheusMetricsCollector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return strings.ToLower(errors.TypeOf(err).String())
}
