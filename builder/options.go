// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: the random source comes from WithSource or WithSeed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/rng"
)

// BuilderOption customizes Generate by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSource provides the random source. The source is consumed by Generate;
// pass a Derive'd stream when the caller needs its own stream untouched.
// Panics on nil.
func WithSource(src *rng.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithSeed creates a fresh rng.Source from seed (0 maps to rng.DefaultSeed).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.src = rng.New(seed)
	}
}

// WithIDScheme sets the vertex label generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeightRange sets the inclusive integer weight range.
// Panics unless core.MinWeight ≤ min ≤ max ≤ core.MaxWeight.
func WithWeightRange(min, max int64) BuilderOption {
	if min < core.MinWeight || max > core.MaxWeight || max < min {
		panic(fmt.Sprintf("builder: WithWeightRange(%d,%d) outside [%d,%d]",
			min, max, core.MinWeight, core.MaxWeight))
	}
	return func(c *builderConfig) {
		c.weightMin, c.weightMax = min, max
	}
}

// WithCategory tags the generated graph with a size tier label.
func WithCategory(category string) BuilderOption {
	return func(c *builderConfig) {
		c.category = category
	}
}

// WithDensity tags the generated graph with a density tier label.
func WithDensity(d Density) BuilderOption {
	return func(c *builderConfig) {
		c.density = string(d)
	}
}
