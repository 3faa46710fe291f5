// Package metrics collects and exposes Prometheus metrics for the web
// front-end's traffic against the remote API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface handlers and the API client wrapper
// report into.
type Recorder interface {
	RecordAPICall(op string, outcome string)
	RecordAPILatency(op string, duration time.Duration)
	RecordLogin(success bool)
	RecordSessionCleanup(deleted int64)
}

// Outcome labels for RecordAPICall.
const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport"
)

// Collector implements Recorder on Prometheus.
type Collector struct {
	apiCalls       *prometheus.CounterVec
	apiLatency     *prometheus.HistogramVec
	logins         *prometheus.CounterVec
	sessionsPurged prometheus.Counter
}

// NewCollector builds a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventify_api_calls_total",
			Help: "Remote API calls by operation and outcome",
		}, []string{"op", "outcome"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eventify_api_latency_seconds",
			Help:    "Remote API call latency by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventify_logins_total",
			Help: "Login attempts by result",
		}, []string{"result"}),
		sessionsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eventify_sessions_purged_total",
			Help: "Expired browser sessions removed by cleanup",
		}),
	}

	reg.MustRegister(
		c.apiCalls,
		c.apiLatency,
		c.logins,
		c.sessionsPurged,
	)

	return c
}

// RecordAPICall counts a remote API call with its outcome.
func (c *Collector) RecordAPICall(op string, outcome string) {
	c.apiCalls.WithLabelValues(op, outcome).Inc()
}

// RecordAPILatency observes a remote API call's duration.
func (c *Collector) RecordAPILatency(op string, duration time.Duration) {
	c.apiLatency.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordLogin counts a login attempt.
func (c *Collector) RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.logins.WithLabelValues(result).Inc()
}

// RecordSessionCleanup counts sessions removed by the expiry sweep.
func (c *Collector) RecordSessionCleanup(deleted int64) {
	c.sessionsPurged.Add(float64(deleted))
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything. Tests and the CLI use it.
type Nop struct{}

func (Nop) RecordAPICall(string, string)           {}
func (Nop) RecordAPILatency(string, time.Duration) {}
func (Nop) RecordLogin(bool)                       {}
func (Nop) RecordSessionCleanup(int64)             {}
