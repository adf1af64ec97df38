// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a single root vertex using a min-heap frontier of edges.
package prim_kruskal

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/mstbench/core"
)

// Prim computes the MST by growing from graph.Nodes[0], the first node in
// insertion order. Graphs with zero or one node yield an empty tree.
// See PrimFrom for error conditions.
func Prim(graph *core.Graph) (core.MSTResult, error) {
	if graph == nil {
		return core.MSTResult{Algorithm: core.AlgorithmPrim, Edges: []core.Edge{}},
			fmt.Errorf("Prim: %w", core.ErrNilGraph)
	}
	if len(graph.Nodes) == 0 {
		return newResult(core.AlgorithmPrim, graph), nil
	}

	return PrimFrom(graph, graph.Nodes[0])
}

// PrimFrom computes the Minimum Spanning Tree of an undirected, weighted graph
// by growing outwards from root using a min-heap frontier.
//
// Error Conditions:
//   - core.ErrNilGraph       : graph is nil.
//   - ErrEmptyRoot           : root == "".
//   - core.ErrVertexNotFound : root, or an edge endpoint, is not in graph.Nodes.
//   - core.ErrDisconnected   : some node is unreachable from root. The partial
//     tree is still returned in the result.
//
// Steps:
//  1. Validate graph and root.
//  2. Build adjacency: node → incident edges, each undirected edge in both directions.
//  3. Mark root visited; push every edge incident to root.
//  4. While the frontier is non-empty and the tree has < |V|-1 edges:
//     a. Pop the lightest edge (u→v). Each pop is one operation.
//     b. If v is already visited, drop the stale entry.
//     c. Otherwise mark v, accept (u→v), and push v's edges to unvisited nodes.
//
// Ties on weight pop in push order, so results are reproducible.
// ExecutionTimeMS covers adjacency build + growth.
//
// Complexity: O(E log E) time, O(V + E) memory.
func PrimFrom(graph *core.Graph, root string) (core.MSTResult, error) {
	// 1. Validate.
	if graph == nil {
		return core.MSTResult{Algorithm: core.AlgorithmPrim, Edges: []core.Edge{}},
			fmt.Errorf("PrimFrom: %w", core.ErrNilGraph)
	}
	res := newResult(core.AlgorithmPrim, graph)
	if root == "" {
		return res, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return res, fmt.Errorf("PrimFrom: root %q: %w", root, core.ErrVertexNotFound)
	}

	start := time.Now()

	// 2. Adjacency lists (also rejects unknown endpoints).
	adj, err := graph.Adjacency()
	if err != nil {
		return res, fmt.Errorf("PrimFrom: %w", err)
	}

	n := len(graph.Nodes)
	need := n - 1
	res.Edges = make([]core.Edge, 0, need)
	visited := make(map[string]bool, n)
	pq := &edgePQ{}
	heap.Init(pq)

	// 3. Seed the frontier from root.
	visited[root] = true
	for _, e := range adj[root] {
		if !visited[e.To] {
			pq.pushEdge(e)
		}
	}

	// 4. Grow.
	for pq.Len() > 0 && len(res.Edges) < need {
		e := heap.Pop(pq).(frontierEntry).edge
		res.Operations++
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		res.Edges = append(res.Edges, e)
		res.TotalCost += e.Weight
		for _, next := range adj[e.To] {
			if !visited[next.To] {
				pq.pushEdge(next)
			}
		}
	}

	res.ExecutionTimeMS = elapsedMS(start)

	if !res.Complete() {
		return res, disconnectedErr("PrimFrom", res)
	}

	return res, nil
}

// frontierEntry is one candidate edge plus its push sequence number.
type frontierEntry struct {
	edge core.Edge
	seq  uint64
}

// edgePQ implements heap.Interface as a min-heap ordered by (Weight, seq).
type edgePQ struct {
	items []frontierEntry
	next  uint64
}

// Len returns the number of entries in the frontier.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less orders by weight, then by push order.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}

// Swap swaps entries i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a frontierEntry. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(frontierEntry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// pushEdge stamps e with the next sequence number and pushes it.
func (pq *edgePQ) pushEdge(e core.Edge) {
	heap.Push(pq, frontierEntry{edge: e, seq: pq.next})
	pq.next++
}
