package bench

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mstbench/core"
)

// Metrics holds the Prometheus collectors fed by a Recorder.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// RunsTotal counts engine runs, labeled by algorithm, category and outcome.
	RunsTotal *prometheus.CounterVec

	// ExecutionSeconds observes each engine's self-measured running time.
	ExecutionSeconds *prometheus.HistogramVec

	// Operations observes each engine's operation counter.
	Operations *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// Passing prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mstbench_runs_total",
				Help: "Total number of MST engine runs",
			},
			[]string{"algorithm", "category", "outcome"},
		),
		ExecutionSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "mstbench_execution_seconds",
				Help: "Self-measured MST engine execution time in seconds",
				// From tiny graphs (microseconds) to extralarge dense ones.
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"algorithm", "category"},
		),
		Operations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mstbench_operations",
				Help:    "Engine operation counter per run (union-find calls or frontier extractions)",
				Buckets: prometheus.ExponentialBuckets(10, 4, 10),
			},
			[]string{"algorithm", "category"},
		),
	}
}

// observe records one engine run. err is the engine's returned error.
func (m *Metrics) observe(category string, res core.MSTResult, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	switch {
	case errors.Is(err, core.ErrDisconnected):
		outcome = OutcomeDisconnected
	case err != nil:
		outcome = OutcomeError
	}
	m.RunsTotal.WithLabelValues(res.Algorithm, category, outcome).Inc()
	if outcome == OutcomeError {
		return
	}
	m.ExecutionSeconds.WithLabelValues(res.Algorithm, category).Observe(res.ExecutionTimeMS / 1000)
	m.Operations.WithLabelValues(res.Algorithm, category).Observe(float64(res.Operations))
}
