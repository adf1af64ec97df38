package runner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/rng"
)

// Generate writes input_<category> for every configured category, in order.
// Cancellation is checked between categories.
func (r *Runner) Generate(ctx context.Context) error {
	for i, cat := range r.cfg.Categories {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.logger.Info("generating category",
			zap.String("category", cat.Name),
			zap.Int("first_id", cat.FirstID),
			zap.Int("last_id", cat.LastID))

		graphs, err := r.GenerateCategory(i, cat)
		if err != nil {
			return err
		}

		path := r.path(prefixInput, cat.Name)
		if err := writeFile(path, func(w io.Writer) error {
			return r.codec.EncodeGraphs(w, graphs)
		}); err != nil {
			return fmt.Errorf("Generate: %s: %w", cat.Name, err)
		}

		r.logger.Info("saved graphs",
			zap.String("category", cat.Name),
			zap.Int("graphs", len(graphs)),
			zap.String("file", path))
	}

	return nil
}

// GenerateCategory builds the graphs of one category.
//
// Steps:
//  1. Derive the category's stream: rng.New(Seed).Derive(index).
//  2. For each slot FirstID..LastID draw n ∈ [MinNodes, MaxNodes-1].
//  3. For each configured density build one connected graph with
//     builder.TargetEdges(n, density) edges.
//  4. Number graphs consecutively from FirstID.
//
// The result holds Slots()·len(Densities) graphs.
func (r *Runner) GenerateCategory(index int, cat builder.Category) ([]*core.Graph, error) {
	densities, err := r.cfg.DensityTiers()
	if err != nil {
		return nil, fmt.Errorf("GenerateCategory: %w", err)
	}

	src := rng.New(r.cfg.Seed).Derive(uint64(index))
	graphs := make([]*core.Graph, 0, cat.Slots()*len(densities))
	id := cat.FirstID

	for slot := 0; slot < cat.Slots(); slot++ {
		n := src.Between(cat.MinNodes, cat.MaxNodes-1)
		for _, d := range densities {
			g, err := builder.Generate(n, builder.TargetEdges(n, d),
				builder.WithSource(src),
				builder.WithCategory(cat.Name),
				builder.WithDensity(d),
				builder.WithWeightRange(r.cfg.Weights.Min, r.cfg.Weights.Max),
			)
			if err != nil {
				return nil, fmt.Errorf("GenerateCategory: %s n=%d %s: %w", cat.Name, n, d, err)
			}
			g.ID = id
			id++
			graphs = append(graphs, g)
		}
	}

	return graphs, nil
}
