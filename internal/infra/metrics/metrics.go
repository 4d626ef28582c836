// Package metrics exposes Prometheus instruments for the HTTP surface and the
// authentication flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"pumpdesk/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pumpdesk"

// Metrics owns a dedicated registry so that several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	resetOutcomesTotal  *prometheus.CounterVec
	loginAttemptsTotal  *prometheus.CounterVec
}

var _ service.AuthMetrics = (*Metrics)(nil)

// New registers the instruments together with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		resetOutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "password_reset_confirmations_total",
				Help:      "Password reset confirmations by outcome",
			},
			[]string{"outcome"},
		),
		loginAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "login_attempts_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveResetOutcome counts a password reset confirmation.
func (m *Metrics) ObserveResetOutcome(outcome string) {
	m.resetOutcomesTotal.WithLabelValues(outcome).Inc()
}

// ObserveLogin counts a login attempt.
func (m *Metrics) ObserveLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.loginAttemptsTotal.WithLabelValues(result).Inc()
}
