package bench

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mstbench/core"
)

// Summary aggregates one algorithm's results over a batch of reports.
type Summary struct {
	Algorithm      string  `yaml:"algorithm"`
	Graphs         int     `yaml:"graphs"`
	Incomplete     int     `yaml:"incomplete"`
	MeanTimeMS     float64 `yaml:"mean_time_ms"`
	StdDevTimeMS   float64 `yaml:"stddev_time_ms"`
	MeanOperations float64 `yaml:"mean_operations"`
	StdDevOps      float64 `yaml:"stddev_operations"`
	MeanCost       float64 `yaml:"mean_cost"`
}

// Summarize folds reports into one Summary per algorithm, Prim first.
// Standard deviations are the unbiased sample estimates and are 0 for
// fewer than two reports.
func Summarize(reports []GraphReport) []Summary {
	return []Summary{
		summarize(core.AlgorithmPrim, reports, func(r GraphReport) core.MSTResult { return r.Prim }),
		summarize(core.AlgorithmKruskal, reports, func(r GraphReport) core.MSTResult { return r.Kruskal }),
	}
}

func summarize(algorithm string, reports []GraphReport, pick func(GraphReport) core.MSTResult) Summary {
	s := Summary{Algorithm: algorithm, Graphs: len(reports)}
	if len(reports) == 0 {
		return s
	}

	times := make([]float64, len(reports))
	ops := make([]float64, len(reports))
	costs := make([]float64, len(reports))
	for i, rep := range reports {
		res := pick(rep)
		times[i] = res.ExecutionTimeMS
		ops[i] = float64(res.Operations)
		costs[i] = float64(res.TotalCost)
		if !res.Complete() {
			s.Incomplete++
		}
	}

	s.MeanTimeMS, s.StdDevTimeMS = meanStdDev(times)
	s.MeanOperations, s.StdDevOps = meanStdDev(ops)
	s.MeanCost = stat.Mean(costs, nil)

	return s
}

func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}

	return stat.MeanStdDev(x, nil)
}
