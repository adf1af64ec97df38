// Package builder generates random connected, undirected, simple, weighted
// graphs for MST benchmarking, and holds the size/density tier policy the batch
// driver uses to pick target edge counts.
//
// The package offers the following key components:
//
//   - Generate(n, targetEdges, opts...):
//     – Connectivity phase: a random labeled tree, built by attaching every node
//     at permutation position i ≥ 1 to a uniformly chosen earlier position j < i.
//     Connectivity holds by construction; there is no check-and-retry loop.
//     – Densification phase: distinct random pairs are added until the graph has
//     exactly clamp(targetEdges, n-1, n(n-1)/2) edges. A canonical-pair set
//     rejects duplicates, so the result is always simple.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSource/WithSeed: the explicit, seeded random source (required).
//     – WithIDScheme:      vertex labels; decimal "0".."n-1" by default.
//     – WithWeightRange:   inclusive integer weight range; [1,100] by default.
//     – WithCategory/WithDensity: tier labels copied onto the Graph.
//   - Tier policy (tiers.go):
//     – Density (sparse/medium/dense) and TargetEdges(n, density).
//     – Category and DefaultCategories() (small/medium/large/extralarge).
//
// Guarantees:
//
//   - Determinism: the same seed, options and (n, targetEdges) give the same graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels wrapped with "%s: ...: %w" method context.
//
// Complexity of Generate: O(n + E) expected time, O(n + E) space.
package builder
