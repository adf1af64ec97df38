// SPDX-License-Identifier: MIT
// Package: mstbench/core
//
// methods.go - read-only queries and structural checks on Graph.
// None of these methods mutate the receiver.

package core

import "fmt"

// NewGraph returns an empty graph tagged with the given tier labels.
// Complexity: O(1).
func NewGraph(category, density string) *Graph {
	return &Graph{
		Category: category,
		Density:  density,
		Nodes:    []string{},
		Edges:    []Edge{},
	}
}

// VertexCount returns |V|. A nil graph has zero vertices.
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}

	return len(g.Nodes)
}

// EdgeCount returns |E|. A nil graph has zero edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return len(g.Edges)
}

// Stats returns the input summary {|V|, |E|}.
func (g *Graph) Stats() Stats {
	return Stats{Vertices: g.VertexCount(), Edges: g.EdgeCount()}
}

// HasVertex reports whether id is one of g's node labels.
// Complexity: O(V).
func (g *Graph) HasVertex(id string) bool {
	if g == nil {
		return false
	}
	for _, n := range g.Nodes {
		if n == id {
			return true
		}
	}

	return false
}

// Adjacency maps every node to its incident edges. Each undirected edge
// {u,v} appears twice: as u→v under u and as v→u under v, so that Edge.To is
// always the far endpoint. Nodes without edges map to an empty slice.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound if an edge references a label missing from Nodes.
//
// Complexity: O(V + E) time and memory.
func (g *Graph) Adjacency() (map[string][]Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	adj := make(map[string][]Edge, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n] = []Edge{}
	}
	for _, e := range g.Edges {
		if _, ok := adj[e.From]; !ok {
			return nil, fmt.Errorf("Adjacency: edge %s-%s: %q: %w", e.From, e.To, e.From, ErrVertexNotFound)
		}
		if _, ok := adj[e.To]; !ok {
			return nil, fmt.Errorf("Adjacency: edge %s-%s: %q: %w", e.From, e.To, e.To, ErrVertexNotFound)
		}
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], e.Reversed())
	}

	return adj, nil
}

// Validate checks the structural invariants of a simple weighted graph:
//  1. every node label is non-empty and unique;
//  2. every edge joins two known, distinct nodes;
//  3. no unordered pair carries two edges;
//  4. every weight lies in [MinWeight, MaxWeight].
//
// Connectivity is checked separately by Connected.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	known := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if n == "" {
			return fmt.Errorf("Validate: node #%d: %w", i, ErrEmptyVertexID)
		}
		if _, dup := known[n]; dup {
			return fmt.Errorf("Validate: node %q: %w", n, ErrDuplicateVertex)
		}
		known[n] = struct{}{}
	}

	pairs := make(map[PairKey]struct{}, len(g.Edges))
	for i, e := range g.Edges {
		if _, ok := known[e.From]; !ok {
			return fmt.Errorf("Validate: edge #%d endpoint %q: %w", i, e.From, ErrVertexNotFound)
		}
		if _, ok := known[e.To]; !ok {
			return fmt.Errorf("Validate: edge #%d endpoint %q: %w", i, e.To, ErrVertexNotFound)
		}
		if e.From == e.To {
			return fmt.Errorf("Validate: edge #%d on %q: %w", i, e.From, ErrLoopNotAllowed)
		}
		if e.Weight < MinWeight || e.Weight > MaxWeight {
			return fmt.Errorf("Validate: edge #%d weight=%d not in [%d,%d]: %w",
				i, e.Weight, MinWeight, MaxWeight, ErrBadWeight)
		}
		k := e.Key()
		if _, dup := pairs[k]; dup {
			return fmt.Errorf("Validate: edge #%d %s-%s: %w", i, k.Lo, k.Hi, ErrMultiEdgeNotAllowed)
		}
		pairs[k] = struct{}{}
	}

	return nil
}

// Connected reports whether every node is reachable from Nodes[0].
// Graphs with zero or one node are connected. Edges to unknown nodes make
// the graph not connected.
// Complexity: O(V + E).
func (g *Graph) Connected() bool {
	if g.VertexCount() <= 1 {
		return true
	}
	adj, err := g.Adjacency()
	if err != nil {
		return false
	}

	// Iterative DFS from the first node.
	seen := make(map[string]bool, len(g.Nodes))
	stack := []string{g.Nodes[0]}
	seen[g.Nodes[0]] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range adj[u] {
			if !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}

	return len(seen) == len(g.Nodes)
}

// Clone returns a deep copy of g (node and edge slices are not shared).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	c := &Graph{
		ID:       g.ID,
		Category: g.Category,
		Density:  g.Density,
		Nodes:    make([]string, len(g.Nodes)),
		Edges:    make([]Edge, len(g.Edges)),
	}
	copy(c.Nodes, g.Nodes)
	copy(c.Edges, g.Edges)

	return c
}
