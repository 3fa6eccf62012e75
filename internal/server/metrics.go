// Package server exposes the harness's measurements over HTTP in Prometheus
// exposition format, so repeated runs can be scraped and charted.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/aggbench/internal/harness"
)

// metricsNamespace prefixes every exported metric.
const metricsNamespace = "aggbench"

// Metrics holds the Prometheus collectors for harness runs and for the
// metrics endpoint itself. Each Metrics owns a private registry so tests and
// repeated constructions do not collide on duplicate registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	runsTotal      *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	nsPerOp        *prometheus.GaugeVec
	allocsPerOp    *prometheus.GaugeVec
	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
}

// NewMetrics creates the collectors and registers them, along with the Go
// runtime collector, on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Number of completed measurement runs per variant.",
		}, []string{"variant"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the measured loop per variant.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"variant"}),
		nsPerOp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "ns_per_op",
			Help:      "Mean wall time per aggregation in nanoseconds, from the latest run.",
		}, []string{"variant"}),
		allocsPerOp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "allocs_per_op",
			Help:      "Mean heap allocations per aggregation, from the latest run.",
		}, []string{"variant"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_requests",
			Help:      "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served.",
		}),
	}

	registry.MustRegister(
		m.runsTotal,
		m.runDuration,
		m.nsPerOp,
		m.allocsPerOp,
		m.activeRequests,
		m.requestsTotal,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// RecordRun exports one variant's measured result. It satisfies
// harness.Recorder.
func (m *Metrics) RecordRun(res harness.Result) {
	m.runsTotal.WithLabelValues(res.Name).Inc()
	m.runDuration.WithLabelValues(res.Name).Observe(res.Elapsed.Seconds())
	m.nsPerOp.WithLabelValues(res.Name).Set(res.NsPerOp)
	m.allocsPerOp.WithLabelValues(res.Name).Set(res.AllocsPerOp)
}

// IncrementActiveRequests notes a request entering the server.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests notes a request leaving the server.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus serves the registry in exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
