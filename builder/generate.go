// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// generate.go - Generate(n, targetEdges) constructor.
//
// Canonical model:
//   - Nodes "0".."n-1" (via cfg.idFn), in index order.
//   - Connectivity phase: random labeled tree via "random parent earlier in a
//     random permutation". Guaranteed connected, n-1 edges.
//   - Densification phase: uniform distinct pairs, rejected when already present,
//     until |E| = clamp(targetEdges, n-1, n(n-1)/2).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices, which wraps core.ErrInvalidArgument).
//   - cfg.src must be non-nil (else ErrNeedRandSource).
//   - Every weight is drawn uniformly from [cfg.weightMin, cfg.weightMax].
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Draw order is fixed: one permutation, then one parent index and one weight
//     per tree edge, then (u, v[, weight]) per densification attempt.

package builder

import (
	"github.com/katalvlaran/mstbench/core"
)

const (
	methodGenerate      = "Generate"
	minGenerateVertices = 1
)

// indexPair is the canonical pair of node indices (lo < hi).
type indexPair struct {
	lo, hi int
}

func makeIndexPair(u, v int) indexPair {
	if v < u {
		u, v = v, u
	}

	return indexPair{lo: u, hi: v}
}

// Generate builds one random connected, undirected, simple, weighted graph
// with n nodes and exactly max(n-1, min(targetEdges, n(n-1)/2)) edges.
//
// The graph's ID is left at zero; the batch driver assigns it.
//
// Complexity: O(n + E) expected time. Densification is rejection sampling, so
// targets close to n(n-1)/2 cost more retries (coupon-collector tail).
func Generate(n, targetEdges int, opts ...BuilderOption) (*core.Graph, error) {
	// 1) Validate parameters early (no side effects on invalid input).
	if n < minGenerateVertices {
		return nil, builderErrorf(methodGenerate, ErrTooFewVertices, "n=%d < min=%d", n, minGenerateVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.src == nil {
		return nil, builderErrorf(methodGenerate, ErrNeedRandSource, "n=%d", n)
	}

	// 2) Create nodes via the ID scheme, rejecting schemes that collide.
	g := core.NewGraph(cfg.category, cfg.density)
	g.Nodes = make([]string, n)
	labels := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if id == "" {
			return nil, builderErrorf(methodGenerate, ErrOptionViolation, "idFn(%d) is empty", i)
		}
		if _, dup := labels[id]; dup {
			return nil, builderErrorf(methodGenerate, ErrOptionViolation, "idFn(%d)=%q repeats", i, id)
		}
		labels[id] = struct{}{}
		g.Nodes[i] = id
	}

	want := clampEdges(targetEdges, n)
	g.Edges = make([]core.Edge, 0, want)
	present := make(map[indexPair]struct{}, want)
	add := func(u, v int) {
		present[makeIndexPair(u, v)] = struct{}{}
		g.Edges = append(g.Edges, core.Edge{From: g.Nodes[u], To: g.Nodes[v], Weight: cfg.weight()})
	}

	// 3) Connectivity phase: perm[i] attaches to a uniformly chosen earlier perm[j].
	perm := cfg.src.Perm(n)
	for i := 1; i < n; i++ {
		add(perm[i], perm[cfg.src.Intn(i)])
	}

	// 4) Densification phase. Terminates: want ≤ MaxEdges(n), so a free pair exists
	//    while remaining > 0.
	var u, v int
	for remaining := want - (n - 1); remaining > 0; {
		u = cfg.src.Intn(n)
		v = cfg.src.Intn(n)
		if u == v {
			continue
		}
		if _, dup := present[makeIndexPair(u, v)]; dup {
			continue
		}
		add(u, v)
		remaining--
	}

	return g, nil
}

// clampEdges returns clamp(target, n-1, MaxEdges(n)) for n ≥ 1.
func clampEdges(target, n int) int {
	if maxE := MaxEdges(n); target > maxE {
		target = maxE
	}
	if target < n-1 {
		target = n - 1
	}

	return target
}
