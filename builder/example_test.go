package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/builder"
)

// ExampleGenerate builds a sparse 8-node graph and reports its shape.
func ExampleGenerate() {
	n := 8
	target := builder.TargetEdges(n, builder.DensitySparse)

	g, err := builder.Generate(n, target,
		builder.WithSeed(42),
		builder.WithCategory("small"),
		builder.WithDensity(builder.DensitySparse),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Category, g.Density, g.VertexCount(), g.EdgeCount(), g.Connected())
	// Output: small sparse 8 10 true
}
