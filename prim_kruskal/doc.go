// Package prim_kruskal provides the two independent Minimum Spanning Tree engines
// that the benchmark compares on the same *core.Graph: Prim’s algorithm and
// Kruskal’s algorithm, plus the DisjointSet used by Kruskal.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects all vertices in V with no cycles and minimum total weight.
//
//   - Why two engines?
//     Both must report the same total cost on every connected input (the chosen
//     edge sets may differ under weight ties). Running both on identical input and
//     recording cost, operation count and wall-clock time is the benchmark.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (core.MSTResult, error)
//
//   - Strategy: stable-sort a copy of the edges by weight, then scan them, merging
//     components with a DisjointSet and skipping edges whose endpoints already share a root.
//
//   - Operations: DisjointSet calls (one per Find, one per Union).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph) / PrimFrom(g, root) (core.MSTResult, error)
//
//   - Strategy: grow one tree from g.Nodes[0] (or root), keeping a min-heap frontier
//     of edges leaving the tree; stale entries (far end already visited) are discarded.
//
//   - Operations: frontier extractions.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// The two operation counters are separate unit systems and must not be compared
// with each other; compare each across graph sizes and densities instead.
//
// Error Conditions
//
//   - core.ErrNilGraph       – graph is nil.
//   - core.ErrVertexNotFound – an edge (or Prim's root) names an unknown node.
//   - ErrEmptyRoot           – PrimFrom with root == "".
//   - core.ErrDisconnected   – the input is not connected. The result still carries the
//     partial tree (fewer than |V|-1 edges); callers may keep it as diagnostic output.
//
// Graphs with zero or one node yield an empty tree with total cost 0 and no error.
//
// Determinism
//
//   - Kruskal’s stable sort keeps the input order among equal weights.
//   - Prim’s frontier breaks weight ties by push order.
//   - Neither engine mutates its input graph.
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
