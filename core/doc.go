// Package core defines the in-memory graph model shared by the generator, the
// MST engines and the benchmark recorder: Edge, Graph, Stats and MSTResult.
//
// The model is pure data. A Graph is built once (by builder.Generate or by a
// decoder) and is read-only afterwards; engines never mutate it, so the same
// *Graph may be handed to Prim and Kruskal in any order, or to independent
// goroutines, without locking.
//
// Model:
//
//	Graph{ID, Category, Density, Nodes []string, Edges []Edge}
//	  – Nodes keeps insertion order (informational only; Prim roots at Nodes[0]).
//	  – Edges are undirected: {From,To} is traversable both ways.
//	  – Simple: no self-loops, no two edges over the same unordered pair.
//	  – Weights are integers in [MinWeight, MaxWeight].
//
//	MSTResult{Algorithm, Edges, TotalCost, Vertices, EdgeCount, Operations, ExecutionTimeMS}
//	  – Operations is an algorithm-defined unit (union-find calls for Kruskal,
//	    frontier extractions for Prim) and is not comparable across algorithms.
//
// Structural checks:
//
//	Validate()   – labels, loops, parallel edges, unknown endpoints, weight range.
//	Connected()  – every node reachable from Nodes[0].
//	Adjacency()  – node → incident edges, each undirected edge stored in both directions.
//
// Errors:
//
//	ErrInvalidArgument     – a size or parameter outside its domain.
//	ErrDisconnected        – some node is unreachable from the start node.
//	ErrNilGraph            – nil *Graph passed where a graph is required.
//	ErrEmptyVertexID       – zero-length node label.
//	ErrDuplicateVertex     – the same label appears twice in Nodes.
//	ErrVertexNotFound      – an edge or root references an unknown node.
//	ErrLoopNotAllowed      – an edge with From == To.
//	ErrMultiEdgeNotAllowed – two edges over the same unordered pair.
//	ErrBadWeight           – weight outside [MinWeight, MaxWeight].
package core
