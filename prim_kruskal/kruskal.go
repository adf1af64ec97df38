// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a core.MSTResult.
package prim_kruskal

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/mstbench/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected, weighted graph
// using a DisjointSet with path compression and union by rank.
//
// Error Conditions:
//   - core.ErrNilGraph       : graph is nil.
//   - core.ErrVertexNotFound : an edge references a label missing from graph.Nodes.
//   - core.ErrDisconnected   : the graph is not connected. The partial forest is
//     still returned in the result, with fewer than |V|-1 edges.
//
// Steps:
//  1. Validate: graph != nil and every edge endpoint is a known node.
//  2. Copy the edge list and sort it by ascending Weight (stable: equal weights
//     keep their original relative order).
//  3. Initialize a DisjointSet over graph.Nodes.
//  4. Scan sorted edges: if Find(u) != Find(v), Union(u,v) and accept the edge.
//  5. Stop once |V|-1 edges are accepted.
//
// Operations = DisjointSet.Operations() at completion.
// ExecutionTimeMS covers sort + scan.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (core.MSTResult, error) {
	// 1. Validate input.
	if graph == nil {
		return core.MSTResult{Algorithm: core.AlgorithmKruskal, Edges: []core.Edge{}},
			fmt.Errorf("Kruskal: %w", core.ErrNilGraph)
	}
	res := newResult(core.AlgorithmKruskal, graph)
	ds := NewDisjointSet(graph.Nodes)
	for _, e := range graph.Edges {
		if !ds.Has(e.From) || !ds.Has(e.To) {
			return res, fmt.Errorf("Kruskal: edge %s-%s: %w", e.From, e.To, core.ErrVertexNotFound)
		}
	}

	start := time.Now()

	// 2. Sort a private copy; the input graph is never reordered.
	edges := make([]core.Edge, len(graph.Edges))
	copy(edges, graph.Edges)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3-5. Scan in weight order, accepting edges that join two components.
	need := len(graph.Nodes) - 1
	if need > 0 {
		res.Edges = make([]core.Edge, 0, need)
	}
	for _, e := range edges {
		if len(res.Edges) >= need {
			break
		}
		if e.From == e.To {
			// Self-loops never join two components.
			continue
		}
		if ds.Find(e.From) != ds.Find(e.To) {
			ds.Union(e.From, e.To)
			res.Edges = append(res.Edges, e)
			res.TotalCost += e.Weight
		}
	}

	res.Operations = ds.Operations()
	res.ExecutionTimeMS = elapsedMS(start)

	if !res.Complete() {
		return res, disconnectedErr("Kruskal", res)
	}

	return res, nil
}
