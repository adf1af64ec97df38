package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithMetrics attaches Prometheus collectors to the Recorder.
// Panics if m is nil.
func WithMetrics(m *Metrics) RecorderOption {
	if m == nil {
		panic("bench: WithMetrics(nil)")
	}
	return func(r *Recorder) {
		r.metrics = m
	}
}

// Recorder runs both engines on a graph and builds a GraphReport.
// A Recorder holds no per-graph state and may be shared between goroutines.
type Recorder struct {
	metrics *Metrics
}

// NewRecorder returns a Recorder with opts applied.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Record runs Prim, then Kruskal, on g and returns the paired report.
//
// Error Conditions:
//   - core.ErrNilGraph         : g is nil; no report.
//   - any non-disconnection engine error (e.g. core.ErrVertexNotFound); no report.
//   - core.ErrDisconnected     : g is not connected; the report holds both
//     partial results and the engines' errors are joined.
//   - ErrCostMismatch          : both trees are complete and their costs differ;
//     the report is still returned.
func (r *Recorder) Record(g *core.Graph) (GraphReport, error) {
	if g == nil {
		return GraphReport{}, fmt.Errorf("Record: %w", core.ErrNilGraph)
	}

	prim, primErr := prim_kruskal.Prim(g)
	r.metrics.observe(g.Category, prim, primErr)
	if primErr != nil && !errors.Is(primErr, core.ErrDisconnected) {
		return GraphReport{}, fmt.Errorf("Record: graph %d: %w", g.ID, primErr)
	}

	kruskal, kruskalErr := prim_kruskal.Kruskal(g)
	r.metrics.observe(g.Category, kruskal, kruskalErr)
	if kruskalErr != nil && !errors.Is(kruskalErr, core.ErrDisconnected) {
		return GraphReport{}, fmt.Errorf("Record: graph %d: %w", g.ID, kruskalErr)
	}

	report := GraphReport{
		GraphID:    g.ID,
		Category:   g.Category,
		Density:    g.Density,
		InputStats: g.Stats(),
		Prim:       prim,
		Kruskal:    kruskal,
	}

	if primErr != nil || kruskalErr != nil {
		return report, errors.Join(primErr, kruskalErr)
	}
	if !report.Agree() {
		return report, fmt.Errorf("Record: graph %d: prim=%d kruskal=%d: %w",
			g.ID, prim.TotalCost, kruskal.TotalCost, ErrCostMismatch)
	}

	return report, nil
}
