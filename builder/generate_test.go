package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/rng"
)

// TestGenerate_EdgeCountLaw checks |E| = max(n-1, min(e, n(n-1)/2)) over a grid
// that covers the spanning-tree floor, the interior and the complete-graph ceiling.
func TestGenerate_EdgeCountLaw(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 10, 37} {
		for _, e := range []int{-4, 0, n - 1, n, 2 * n, builder.MaxEdges(n), builder.MaxEdges(n) + 50} {
			g, err := builder.Generate(n, e, builder.WithSeed(int64(n*1000+e)))
			require.NoError(t, err)

			want := max(n-1, min(e, builder.MaxEdges(n)))
			assert.Equal(t, want, g.EdgeCount(), "n=%d e=%d", n, e)
			assert.Equal(t, n, g.VertexCount())
		}
	}
}

func TestGenerate_SpanningTreeFloor(t *testing.T) {
	g, err := builder.Generate(10, 5, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount())
	assert.True(t, g.Connected())
}

func TestGenerate_CompleteGraphCeiling(t *testing.T) {
	g, err := builder.Generate(10, 100, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 45, g.EdgeCount())
	require.NoError(t, g.Validate())
}

// TestGenerate_Invariants runs many seeds and checks that every graph is
// connected and simple with weights in range and decimal labels.
func TestGenerate_Invariants(t *testing.T) {
	t.Parallel()

	root := rng.New(2024)
	for i := 0; i < 60; i++ {
		src := root.Derive(uint64(i))
		n := src.Between(1, 60)
		target := src.Between(0, builder.MaxEdges(n)+10)

		g, err := builder.Generate(n, target, builder.WithSource(src))
		require.NoError(t, err)

		require.NoError(t, g.Validate(), "simplicity, n=%d target=%d", n, target)
		require.True(t, g.Connected(), "connectivity, n=%d target=%d", n, target)
		for j, id := range g.Nodes {
			require.Equal(t, strconv.Itoa(j), id)
		}
		for _, e := range g.Edges {
			require.GreaterOrEqual(t, e.Weight, core.MinWeight)
			require.LessOrEqual(t, e.Weight, core.MaxWeight)
		}
	}
}

func TestGenerate_SingleNode(t *testing.T) {
	g, err := builder.Generate(1, 10, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := builder.Generate(40, 200, builder.WithSeed(77))
	require.NoError(t, err)
	b, err := builder.Generate(40, 200, builder.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Generate(40, 200, builder.WithSeed(78))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges, c.Edges)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := builder.Generate(0, 5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = builder.Generate(-3, 5, builder.WithSeed(1))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = builder.Generate(4, 5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	constant := func(int) string { return "same" }
	_, err = builder.Generate(3, 2, builder.WithSeed(1), builder.WithIDScheme(constant))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	empty := func(int) string { return "" }
	_, err = builder.Generate(1, 0, builder.WithSeed(1), builder.WithIDScheme(empty))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestGenerate_Options(t *testing.T) {
	g, err := builder.Generate(30, 120,
		builder.WithSeed(9),
		builder.WithWeightRange(7, 9),
		builder.WithCategory("medium"),
		builder.WithDensity(builder.DensityDense),
		builder.WithPrefixedIDs("v"),
	)
	require.NoError(t, err)

	assert.Equal(t, "medium", g.Category)
	assert.Equal(t, "dense", g.Density)
	assert.Zero(t, g.ID, "IDs are assigned by the caller")
	assert.Equal(t, "v0", g.Nodes[0])
	assert.Equal(t, "v29", g.Nodes[29])
	for _, e := range g.Edges {
		assert.GreaterOrEqual(t, e.Weight, int64(7))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}

	h, err := builder.Generate(30, 40, builder.WithSeed(9), builder.WithExcelColumnIDs())
	require.NoError(t, err)
	assert.Equal(t, "A", h.Nodes[0])
	assert.Equal(t, "AD", h.Nodes[29])
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	assert.Panics(t, func() { builder.WithSource(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(0, 10) })
	assert.Panics(t, func() { builder.WithWeightRange(10, 5) })
	assert.Panics(t, func() { builder.WithWeightRange(1, core.MaxWeight+1) })
	assert.NotPanics(t, func() { builder.WithWeightRange(4, 4) })
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0"},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123"},
		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A"},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA"},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ"},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA"},
		{"HexIDFn_ten", builder.HexIDFn, 10, "a"},
		{"HexIDFn_ff", builder.HexIDFn, 255, "ff"},
		{"PrefixedIDFn", builder.PrefixedIDFn("n"), 12, "n12"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}

	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.HexIDFn(-2) })
}
