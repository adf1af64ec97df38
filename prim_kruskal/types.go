// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mstbench/core"
)

// ErrEmptyRoot indicates that no start vertex was specified for PrimFrom.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start vertex for Prim; "" means graph.Nodes[0]. Ignored by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, applying opts in order.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph) when Root is empty, PrimFrom(graph, Root) otherwise.
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (core.MSTResult, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		if opts.Root == "" {
			return Prim(graph)
		}
		return PrimFrom(graph, opts.Root)
	default:
		return core.MSTResult{}, fmt.Errorf("Compute: %q: %w", opts.Method, ErrUnknownMethod)
	}
}

// newResult seeds an MSTResult with the input statistics of graph.
func newResult(algorithm string, graph *core.Graph) core.MSTResult {
	return core.MSTResult{
		Algorithm: algorithm,
		Edges:     []core.Edge{},
		Vertices:  graph.VertexCount(),
		EdgeCount: graph.EdgeCount(),
	}
}

// elapsedMS converts the time since start into fractional milliseconds.
func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)
}

// disconnectedErr reports how far a partial tree got.
func disconnectedErr(method string, res core.MSTResult) error {
	return fmt.Errorf("%s: %d of %d tree edges: %w", method, len(res.Edges), res.Vertices-1, core.ErrDisconnected)
}
