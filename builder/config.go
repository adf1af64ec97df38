// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn        ("0","1","2",...)
//   • src       = nil                (Generate requires WithSource/WithSeed)
//   • weights   = [core.MinWeight, core.MaxWeight]
//   • category  = ""  density = ""

package builder

import (
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/rng"
)

// builderConfig aggregates all knobs used by Generate.
// It is passed by value (immutable to callers).
type builderConfig struct {
	// Vertex label strategy: index -> label.
	idFn IDFn
	// Random source; nil means "not configured".
	src *rng.Source
	// Inclusive weight bounds.
	weightMin int64
	weightMax int64
	// Tier labels copied onto the graph.
	category string
	density  string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		weightMin: core.MinWeight,
		weightMax: core.MaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one uniform integer weight in [weightMin, weightMax].
func (c builderConfig) weight() int64 {
	return c.weightMin + int64(c.src.Intn(int(c.weightMax-c.weightMin+1)))
}
