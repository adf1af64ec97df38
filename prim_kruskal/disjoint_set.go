// Package prim_kruskal provides the disjoint-set (union-find) structure used by Kruskal.
package prim_kruskal

import "sort"

// DisjointSet is a union-find over a fixed universe of node labels with full
// path compression and union by rank.
//
// Invariant: every label reaches exactly one root through parent links, and the
// number of distinct roots equals the number of components formed so far.
//
// Operations counts one unit per Find call and one per Union call (the two
// Finds issued inside Union count as well). It is a benchmarking aid only.
//
// Not goroutine-safe; one DisjointSet per Kruskal run.
type DisjointSet struct {
	parent     map[string]string
	rank       map[string]int
	components int
	operations int64
}

// NewDisjointSet returns a DisjointSet where every label is its own singleton set.
// Repeated labels are collapsed.
// Complexity: O(V).
func NewDisjointSet(labels []string) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[string]string, len(labels)),
		rank:   make(map[string]int, len(labels)),
	}
	for _, l := range labels {
		if _, ok := ds.parent[l]; ok {
			continue
		}
		ds.parent[l] = l
		ds.rank[l] = 0
		ds.components++
	}

	return ds
}

// Has reports whether x belongs to the universe.
func (ds *DisjointSet) Has(x string) bool {
	_, ok := ds.parent[x]
	return ok
}

// Find returns the representative of x's set and re-points every label on the
// walked path directly at the root. A label outside the universe is returned
// unchanged (it behaves as its own singleton and is never stored).
//
// Iterative: one pass to the root, one pass to re-link.
// Complexity: amortized O(α(V)).
func (ds *DisjointSet) Find(x string) string {
	ds.operations++
	if !ds.Has(x) {
		return x
	}

	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b and reports whether a merge
// happened (false when they already shared a root, or when either label is
// outside the universe). The lower-rank root is attached under the higher one;
// on a tie a becomes the root and its rank grows by one.
// Complexity: amortized O(α(V)).
func (ds *DisjointSet) Union(a, b string) bool {
	ds.operations++
	if !ds.Has(a) || !ds.Has(b) {
		return false
	}
	rootA := ds.Find(a)
	rootB := ds.Find(b)
	if rootA == rootB {
		return false
	}

	switch {
	case ds.rank[rootA] < ds.rank[rootB]:
		ds.parent[rootA] = rootB
	case ds.rank[rootA] > ds.rank[rootB]:
		ds.parent[rootB] = rootA
	default:
		ds.parent[rootB] = rootA
		ds.rank[rootA]++
	}
	ds.components--

	return true
}

// Components returns the current number of disjoint sets.
func (ds *DisjointSet) Components() int { return ds.components }

// Operations returns the Find+Union call counter.
func (ds *DisjointSet) Operations() int64 { return ds.operations }

// Sets groups the universe by representative. Each group and the outer slice
// are sorted for deterministic output. Calls Find, so it moves the counter.
// Complexity: O(V log V).
func (ds *DisjointSet) Sets() [][]string {
	groups := make(map[string][]string, ds.components)
	for l := range ds.parent {
		r := ds.Find(l)
		groups[r] = append(groups[r], l)
	}
	out := make([][]string, 0, len(groups))
	for _, members := range groups {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
