package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// BenchmarkKruskal measures a 500-vertex graph with 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g, err := builder.Generate(500, 2000, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same graph, rooted at its first node.
func BenchmarkPrim(b *testing.B) {
	g, err := builder.Generate(500, 2000, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g)
	}
}
