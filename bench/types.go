package bench

import (
	"errors"

	"github.com/katalvlaran/mstbench/core"
)

// ErrCostMismatch indicates that both engines produced a complete tree but
// disagree on its total cost.
var ErrCostMismatch = errors.New("bench: prim and kruskal total cost differ")

// Outcome labels used by Metrics.
const (
	OutcomeOK           = "ok"
	OutcomeDisconnected = "disconnected"
	OutcomeError        = "error"
)

// GraphReport is the per-graph record: identity, input statistics and
// one result per engine.
type GraphReport struct {
	GraphID    int
	Category   string
	Density    string
	InputStats core.Stats
	Prim       core.MSTResult
	Kruskal    core.MSTResult
}

// Agree reports whether both results are complete and share a total cost.
func (r GraphReport) Agree() bool {
	return r.Prim.Complete() && r.Kruskal.Complete() && r.Prim.TotalCost == r.Kruskal.TotalCost
}
