// SPDX-License-Identifier: MIT
// Package: mstbench/core
//
// types.go - Edge, Graph, Stats, MSTResult and the sentinel errors of the model.

package core

import "errors"

// Sentinel errors for the graph model. Callers branch with errors.Is.
var (
	// ErrInvalidArgument indicates a size or parameter outside its domain
	// (e.g. a non-positive node count passed to generation).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrDisconnected indicates that some node is unreachable from the start node.
	ErrDisconnected = errors.New("core: graph is disconnected")

	// ErrNilGraph indicates a nil *Graph.
	ErrNilGraph = errors.New("core: nil graph")

	// ErrEmptyVertexID indicates a zero-length node label.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a node label occurs more than once.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent node.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge over the same unordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: weight out of range")
)

// Weight domain of generated edges.
const (
	// MinWeight is the smallest admissible edge weight.
	MinWeight int64 = 1
	// MaxWeight is the largest admissible edge weight.
	MaxWeight int64 = 100
)

// Edge is an undirected, weighted connection between two nodes.
// From/To carry no direction for the MST engines; they only record the
// orientation in which the edge was created (or, for Prim, traversed).
type Edge struct {
	// From is one endpoint label.
	From string

	// To is the other endpoint label.
	To string

	// Weight is the cost of the edge.
	Weight int64
}

// PairKey is the canonical (order-independent) identity of an unordered node pair.
type PairKey struct {
	Lo, Hi string
}

// Key returns the canonical unordered pair of e.
// Complexity: O(1).
func (e Edge) Key() PairKey {
	return MakePairKey(e.From, e.To)
}

// Reversed returns e with its endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// MakePairKey returns the canonical pair for {u, v}.
func MakePairKey(u, v string) PairKey {
	if v < u {
		u, v = v, u
	}

	return PairKey{Lo: u, Hi: v}
}

// Graph is a connected, undirected, simple, weighted graph produced by the
// generator (or decoded from an interchange file).
//
// ID is assigned by the batch driver, never by the generator.
// Nodes preserves creation order. Edges is the edge set; its order is the
// creation order and is what Kruskal's stable sort falls back to on ties.
type Graph struct {
	// ID identifies the graph within its batch.
	ID int

	// Category is the size tier label ("small", "medium", ...).
	Category string

	// Density is the optional density tier label ("sparse", "medium", "dense").
	Density string

	// Nodes lists node labels in insertion order.
	Nodes []string

	// Edges lists the undirected edges.
	Edges []Edge
}

// Stats is the input summary recorded next to each MST result.
type Stats struct {
	// Vertices is |V|.
	Vertices int

	// Edges is |E|.
	Edges int
}

// Algorithm names reported in MSTResult.Algorithm.
const (
	// AlgorithmKruskal names Kruskal's sort-and-union engine.
	AlgorithmKruskal = "Kruskal"
	// AlgorithmPrim names Prim's frontier-growing engine.
	AlgorithmPrim = "Prim"
)

// MSTResult is the outcome of one (graph, algorithm) run. It is built once by
// an engine and never mutated afterwards.
type MSTResult struct {
	// Algorithm is AlgorithmKruskal or AlgorithmPrim.
	Algorithm string

	// Edges are the tree edges in the order the engine accepted them.
	Edges []Edge

	// TotalCost is the sum of Edges[i].Weight.
	TotalCost int64

	// Vertices is the input vertex count.
	Vertices int

	// EdgeCount is the input edge count.
	EdgeCount int

	// Operations counts internal work in the engine's own unit.
	Operations int64

	// ExecutionTimeMS is the wall-clock duration of the run in milliseconds.
	ExecutionTimeMS float64
}

// Complete reports whether r spans every input vertex, i.e. holds exactly
// max(Vertices-1, 0) edges. A partial tree from a disconnected input is not complete.
func (r MSTResult) Complete() bool {
	want := r.Vertices - 1
	if want < 0 {
		want = 0
	}

	return len(r.Edges) == want
}
