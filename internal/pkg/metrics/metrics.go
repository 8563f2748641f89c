// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests handled by the gateway.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// BackendRequestsTotal counts relayed backend calls by backend, operation and outcome.
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_backend_requests_total",
			Help: "Total number of backend calls relayed by the gateway.",
		},
		[]string{"backend", "operation", "outcome"},
	)
)

// Outcome labels for BackendRequestsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ObserveBackend records one relayed backend call.
func ObserveBackend(backend, operation string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	BackendRequestsTotal.WithLabelValues(backend, operation, outcome).Inc()
}
