package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/store"
)

// newTestStore creates an in-memory store for testing.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func result(alg string, vertices int, cost int64, edges int) core.MSTResult {
	r := core.MSTResult{Algorithm: alg, Vertices: vertices, TotalCost: cost, Operations: 10, ExecutionTimeMS: 0.5}
	for i := 0; i < edges; i++ {
		r.Edges = append(r.Edges, core.Edge{From: "a", To: "b", Weight: 1})
	}

	return r
}

func reports() []bench.GraphReport {
	return []bench.GraphReport{
		{
			GraphID: 1, Density: "sparse", InputStats: core.Stats{Vertices: 3, Edges: 3},
			Prim:    result(core.AlgorithmPrim, 3, 4, 2),
			Kruskal: result(core.AlgorithmKruskal, 3, 4, 2),
		},
		{
			GraphID: 2, Density: "dense", InputStats: core.Stats{Vertices: 4, Edges: 2},
			Prim:    result(core.AlgorithmPrim, 4, 1, 1),
			Kruskal: result(core.AlgorithmKruskal, 4, 2, 2),
		},
	}
}

func TestSaveAndCount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SaveReports(ctx, "run-1", "small", reports()))
	n, err := s.CountResults(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// Same category again replaces; a new category appends.
	require.NoError(t, s.SaveReports(ctx, "run-1", "small", reports()[:1]))
	require.NoError(t, s.SaveReports(ctx, "run-1", "medium", reports()))
	n, err = s.CountResults(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = s.CountResults(ctx, "other")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.SaveReports(ctx, "run-1", "small", reports()))

	totals, err := s.Totals(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, core.AlgorithmKruskal, totals[0].Algorithm)
	assert.Equal(t, 2, totals[0].Results)
	assert.Equal(t, 1, totals[0].Incomplete)
	assert.Equal(t, int64(20), totals[0].TotalOperations)
	assert.InDelta(t, 0.5, totals[0].MeanTimeMS, 1e-9)

	assert.Equal(t, core.AlgorithmPrim, totals[1].Algorithm)
	assert.Equal(t, 1, totals[1].Incomplete)
}

func TestCostMismatches(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	reps := reports()
	require.NoError(t, s.SaveReports(ctx, "run-1", "small", reps))
	n, err := s.CostMismatches(ctx, "run-1")
	require.NoError(t, err)
	assert.Zero(t, n, "incomplete rows are not compared")

	reps[0].Kruskal.TotalCost = 99
	require.NoError(t, s.SaveReports(ctx, "run-2", "small", reps))
	n, err = s.CostMismatches(ctx, "run-2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEmptyRunID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.ErrorIs(t, s.SaveReports(ctx, "", "small", reports()), store.ErrEmptyRunID)
	_, err := s.CountResults(ctx, "")
	assert.ErrorIs(t, err, store.ErrEmptyRunID)
	_, err = s.Totals(ctx, "")
	assert.ErrorIs(t, err, store.ErrEmptyRunID)
	_, err = s.CostMismatches(ctx, "")
	assert.ErrorIs(t, err, store.ErrEmptyRunID)
}

func TestOpen_FileReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "results.db")

	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveReports(ctx, "run-1", "small", reports()))
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.CountResults(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSaveReports_CanceledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.SaveReports(ctx, "run-1", "small", reports()))
	n, err := s.CountResults(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}
