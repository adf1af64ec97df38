// Package mstbench generates random connected weighted graphs and benchmarks
// Prim's and Kruskal's minimum spanning tree algorithms on them.
//
// What is in the box?
//
//   - Graph model: string-labelled vertices, undirected integer-weighted edges
//   - Seeded generation: random spanning tree + densification to a target size
//   - Two MST engines with operation counters and self-measured timings
//   - A batch driver that routes per-category input and output files
//
// Packages:
//
//	core/         - Graph, Edge, MSTResult and structural checks
//	rng/          - seedable source with independent derived streams
//	builder/      - Generate(n, targetEdges, opts...) and size/density tiers
//	prim_kruskal/ - DisjointSet, Kruskal, Prim, Compute
//	bench/        - Recorder (Prim then Kruskal), Prometheus metrics, summaries
//	codec/        - JSON and YAML interchange documents
//	store/        - optional SQLite archive of results
//	config/       - YAML + environment configuration, zap logger
//	runner/       - generate/solve batch driver
//	cmd/mstbench  - command-line entry point
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	   10   2
//	    │   │
//	    D─3─C
//
//	Both engines select A–B, B–C, C–D for a total cost of 6.
//
//	go run ./cmd/mstbench -data-dir ./data all
package mstbench
