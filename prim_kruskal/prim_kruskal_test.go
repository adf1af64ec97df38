package prim_kruskal_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
	"github.com/katalvlaran/mstbench/rng"
)

// buildSquare constructs A-B(1), B-C(2), C-D(3), A-D(10).
// Its MST is {A-B, B-C, C-D} with total weight 6.
func buildSquare() *core.Graph {
	g := core.NewGraph("test", "")
	g.Nodes = []string{"A", "B", "C", "D"}
	g.Edges = []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 3},
		{From: "A", To: "D", Weight: 10},
	}

	return g
}

// edgeNames renders MST edges as sorted "u-v" keys (u < v).
func edgeNames(edges []core.Edge) []string {
	names := make([]string, 0, len(edges))
	for _, e := range edges {
		k := e.Key()
		names = append(names, fmt.Sprintf("%s-%s", k.Lo, k.Hi))
	}
	sort.Strings(names)

	return names
}

func weights(edges []core.Edge) []int64 {
	w := make([]int64, 0, len(edges))
	for _, e := range edges {
		w = append(w, e.Weight)
	}
	sort.Slice(w, func(i, j int) bool { return w[i] < w[j] })

	return w
}

// TestScenario_Square checks the four-node scenario on both engines.
func TestScenario_Square(t *testing.T) {
	g := buildSquare()

	prim, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	kruskal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	for _, r := range []core.MSTResult{prim, kruskal} {
		assert.Equal(t, int64(6), r.TotalCost, r.Algorithm)
		assert.Len(t, r.Edges, 3, r.Algorithm)
		assert.Equal(t, []string{"A-B", "B-C", "C-D"}, edgeNames(r.Edges), r.Algorithm)
		assert.Equal(t, 4, r.Vertices)
		assert.Equal(t, 4, r.EdgeCount)
		assert.GreaterOrEqual(t, r.ExecutionTimeMS, 0.0)
		assert.True(t, r.Complete())
	}
	assert.Equal(t, core.AlgorithmPrim, prim.Algorithm)
	assert.Equal(t, core.AlgorithmKruskal, kruskal.Algorithm)
}

// TestOperationCounts pins each engine's unit on the square graph:
// Prim pops three frontier entries; Kruskal issues 2 Finds + 1 Union
// (itself 1 + 2 inner Finds) for each of its three accepted edges.
func TestOperationCounts(t *testing.T) {
	g := buildSquare()

	prim, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), prim.Operations)

	kruskal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(15), kruskal.Operations)
}

// TestScenario_SingleNode checks that a one-node graph yields an empty tree.
func TestScenario_SingleNode(t *testing.T) {
	g := core.NewGraph("test", "")
	g.Nodes = []string{"X"}

	for _, run := range []func(*core.Graph) (core.MSTResult, error){prim_kruskal.Prim, prim_kruskal.Kruskal} {
		r, err := run(g)
		require.NoError(t, err)
		assert.Zero(t, r.TotalCost)
		assert.Empty(t, r.Edges)
		assert.NotNil(t, r.Edges)
		assert.Equal(t, 1, r.Vertices)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := core.NewGraph("test", "")

	for _, run := range []func(*core.Graph) (core.MSTResult, error){prim_kruskal.Prim, prim_kruskal.Kruskal} {
		r, err := run(g)
		require.NoError(t, err)
		assert.Empty(t, r.Edges)
		assert.Zero(t, r.TotalCost)
		assert.Zero(t, r.Vertices)
	}
}

func TestNilGraph(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = prim_kruskal.PrimFrom(nil, "A")
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

// TestDisconnected_PartialResult checks that both engines terminate on two
// components and hand back their partial trees alongside ErrDisconnected.
func TestDisconnected_PartialResult(t *testing.T) {
	g := core.NewGraph("test", "")
	g.Nodes = []string{"A", "B", "C", "D", "E"}
	g.Edges = []core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "C", To: "D", Weight: 1},
		{From: "D", To: "E", Weight: 2},
	}

	kruskal, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, core.ErrDisconnected)
	assert.Len(t, kruskal.Edges, 3)
	assert.Equal(t, int64(7), kruskal.TotalCost)
	assert.False(t, kruskal.Complete())

	prim, err := prim_kruskal.Prim(g)
	assert.ErrorIs(t, err, core.ErrDisconnected)
	assert.Equal(t, []string{"A-B"}, edgeNames(prim.Edges))
	assert.Equal(t, int64(4), prim.TotalCost)
	assert.False(t, prim.Complete())

	fromC, err := prim_kruskal.PrimFrom(g, "C")
	assert.ErrorIs(t, err, core.ErrDisconnected)
	assert.Equal(t, []string{"C-D", "D-E"}, edgeNames(fromC.Edges))
}

func TestPrimFrom_RootValidation(t *testing.T) {
	g := buildSquare()

	_, err := prim_kruskal.PrimFrom(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, err = prim_kruskal.PrimFrom(g, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	r, err := prim_kruskal.PrimFrom(g, "D")
	require.NoError(t, err)
	assert.Equal(t, int64(6), r.TotalCost)
	assert.Equal(t, "D", r.Edges[0].From, "edges are oriented away from the tree")
}

func TestUnknownEndpoint(t *testing.T) {
	g := buildSquare()
	g.Edges = append(g.Edges, core.Edge{From: "A", To: "Q", Weight: 1})

	_, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = prim_kruskal.Prim(g)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestEqualWeights checks that ties never change the total cost.
func TestEqualWeights(t *testing.T) {
	g := core.NewGraph("test", "")
	g.Nodes = []string{"A", "B", "C"}
	g.Edges = []core.Edge{
		{From: "A", To: "B", Weight: 5},
		{From: "B", To: "C", Weight: 5},
		{From: "A", To: "C", Weight: 5},
	}

	kruskal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	prim, err := prim_kruskal.Prim(g)
	require.NoError(t, err)

	assert.Equal(t, int64(10), kruskal.TotalCost)
	assert.Equal(t, kruskal.TotalCost, prim.TotalCost)
	// Stable sort keeps input order among ties.
	assert.Equal(t, []string{"A-B", "B-C"}, edgeNames(kruskal.Edges))
}

// TestCostEquivalence_Generated compares the engines over many generated graphs
// across sizes and densities.
func TestCostEquivalence_Generated(t *testing.T) {
	t.Parallel()

	root := rng.New(31337)
	for i := 0; i < 40; i++ {
		src := root.Derive(uint64(i))
		n := src.Between(1, 120)
		d := builder.Densities()[i%3]
		g, err := builder.Generate(n, builder.TargetEdges(n, d), builder.WithSource(src))
		require.NoError(t, err)

		kruskal, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		prim, err := prim_kruskal.Prim(g)
		require.NoError(t, err)

		require.Equal(t, kruskal.TotalCost, prim.TotalCost, "n=%d density=%s", n, d)
		require.Len(t, kruskal.Edges, max(n-1, 0))
		require.Len(t, prim.Edges, max(n-1, 0))
		require.Equal(t, weights(kruskal.Edges), weights(prim.Edges),
			"every MST of a graph has the same weight multiset")
	}
}

// TestIdempotentAndReadOnly reruns each engine and checks identical output
// and an untouched input graph.
func TestIdempotentAndReadOnly(t *testing.T) {
	g, err := builder.Generate(80, 400, builder.WithSeed(8))
	require.NoError(t, err)
	snapshot := g.Clone()

	for _, run := range []func(*core.Graph) (core.MSTResult, error){prim_kruskal.Prim, prim_kruskal.Kruskal} {
		first, err := run(g)
		require.NoError(t, err)
		second, err := run(g)
		require.NoError(t, err)

		assert.Equal(t, first.TotalCost, second.TotalCost)
		assert.Equal(t, first.Edges, second.Edges)
		assert.Equal(t, first.Operations, second.Operations)
	}
	assert.Equal(t, snapshot, g)
}

// TestMSTIsSpanningTree checks that the accepted edges connect every node
// without cycles (|V|-1 edges plus connectivity).
func TestMSTIsSpanningTree(t *testing.T) {
	g, err := builder.Generate(60, 300, builder.WithSeed(12))
	require.NoError(t, err)

	for _, run := range []func(*core.Graph) (core.MSTResult, error){prim_kruskal.Prim, prim_kruskal.Kruskal} {
		r, err := run(g)
		require.NoError(t, err)

		tree := core.NewGraph("", "")
		tree.Nodes = g.Nodes
		tree.Edges = r.Edges
		assert.True(t, tree.Connected(), r.Algorithm)
		assert.Len(t, tree.Edges, len(g.Nodes)-1, r.Algorithm)
	}
}

func TestCompute(t *testing.T) {
	g := buildSquare()

	r, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, core.AlgorithmKruskal, r.Algorithm)

	r, err = prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim)))
	require.NoError(t, err)
	assert.Equal(t, core.AlgorithmPrim, r.Algorithm)
	assert.Equal(t, "A", r.Edges[0].From)

	r, err = prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("C")))
	require.NoError(t, err)
	assert.Equal(t, "C", r.Edges[0].From)

	_, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
