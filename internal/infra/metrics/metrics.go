// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle results recorded in SchedulerCycles.
const (
	ResultOK     = "ok"
	ResultError  = "error"
	ResultLocked = "locked"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Scheduler metrics
	SchedulerCycles        *prometheus.CounterVec
	SchedulerMaterialized  prometheus.Counter
	SchedulerSkipped       prometheus.Counter
	SchedulerCycleDuration prometheus.Histogram

	// API metrics
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// New creates all metrics and registers them with reg, together with the Go
// runtime and process collectors.
func New(reg prometheus.Registerer) *Metrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		SchedulerCycles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_scheduler_cycles_total",
				Help: "Total recurring scheduler cycles by result",
			},
			[]string{"result"},
		),
		SchedulerMaterialized: factory.NewCounter(prometheus.CounterOpts{
			Name: "finance_scheduler_materialized_total",
			Help: "Total ledger entries produced from recurring rules",
		}),
		SchedulerSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "finance_scheduler_skipped_total",
			Help: "Total due rules skipped because they disappeared mid-cycle",
		}),
		SchedulerCycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "finance_scheduler_cycle_duration_seconds",
			Help:    "Duration of recurring scheduler cycles",
			Buckets: prometheus.DefBuckets,
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "finance_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),
	}
}
