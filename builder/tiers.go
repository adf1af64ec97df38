// Package builder defines the size and density tiers the batch driver uses to
// pick node counts and target edge counts. Generate itself only ever sees the
// final integer target.
package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mstbench/core"
)

// Density is a target ratio of edges to the maximum possible edge count.
type Density string

const (
	// DensitySparse targets about 1.25·n edges.
	DensitySparse Density = "sparse"
	// DensityMedium targets about 3·n edges.
	DensityMedium Density = "medium"
	// DensityDense targets a size-dependent fraction of n(n-1)/2.
	DensityDense Density = "dense"
)

// Dense-tier fractions of MaxEdges by node count.
const (
	denseFactorTiny   = 0.5  // n < 50
	denseFactorSmall  = 0.2  // n < 300
	denseFactorMedium = 0.05 // n < 1000
	denseFactorLarge  = 0.02 // otherwise
)

// Densities returns the density tiers in generation order.
func Densities() []Density {
	return []Density{DensitySparse, DensityMedium, DensityDense}
}

// ParseDensity maps a case-insensitive label to a Density.
func ParseDensity(s string) (Density, error) {
	d := Density(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DensitySparse, DensityMedium, DensityDense:
		return d, nil
	default:
		return "", fmt.Errorf("ParseDensity: %q: %w", s, core.ErrInvalidArgument)
	}
}

// MaxEdges returns n(n-1)/2, the edge count of the complete graph K_n (0 for n < 2).
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// TargetEdges returns the target edge count for n nodes at density d:
//
//	sparse: max(n-1, ⌊1.25·n⌋)
//	medium: min(maxE, 3·n)
//	dense:  min(maxE, ⌊f·maxE⌋), f = 0.5 / 0.2 / 0.05 / 0.02 for n < 50 / 300 / 1000 / else
//	other:  max(n-1, n)
//
// The result may be below n-1 or above maxE for tiny n; Generate clamps it.
func TargetEdges(n int, d Density) int {
	maxE := MaxEdges(n)
	switch d {
	case DensitySparse:
		return max(n-1, int(1.25*float64(n)))
	case DensityMedium:
		return min(maxE, 3*n)
	case DensityDense:
		var factor float64
		switch {
		case n < 50:
			factor = denseFactorTiny
		case n < 300:
			factor = denseFactorSmall
		case n < 1000:
			factor = denseFactorMedium
		default:
			factor = denseFactorLarge
		}
		return min(maxE, int(factor*float64(maxE)))
	default:
		return max(n-1, n)
	}
}

// Category is a size tier: graphs get a node count drawn from
// [MinNodes, MaxNodes) and consecutive IDs starting at FirstID. One slot in
// FirstID..LastID yields one graph per density tier.
type Category struct {
	Name     string `yaml:"name" validate:"required"`
	MinNodes int    `yaml:"min_nodes" validate:"min=1"`
	MaxNodes int    `yaml:"max_nodes" validate:"gtfield=MinNodes"`
	FirstID  int    `yaml:"first_id" validate:"min=0"`
	LastID   int    `yaml:"last_id" validate:"gtefield=FirstID"`
}

// Slots returns the number of node-count draws for c.
func (c Category) Slots() int {
	return c.LastID - c.FirstID + 1
}

// DefaultCategories returns the benchmark's four size tiers.
func DefaultCategories() []Category {
	return []Category{
		{Name: "small", MinNodes: 5, MaxNodes: 30, FirstID: 1, LastID: 5},
		{Name: "medium", MinNodes: 30, MaxNodes: 300, FirstID: 6, LastID: 15},
		{Name: "large", MinNodes: 300, MaxNodes: 1000, FirstID: 16, LastID: 25},
		{Name: "extralarge", MinNodes: 1000, MaxNodes: 2000, FirstID: 26, LastID: 28},
	}
}
