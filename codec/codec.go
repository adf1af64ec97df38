package codec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/core"
)

var (
	// ErrUnknownFormat indicates that ForFormat was given an unsupported name.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrNoGraphs indicates a graphs document that is empty or lacks the "graphs" key.
	ErrNoGraphs = errors.New("codec: no graphs in document")

	// ErrNoResults indicates a results document that is empty or lacks the "results" key.
	ErrNoResults = errors.New("codec: no results in document")
)

// Format names accepted by ForFormat.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Codec encodes and decodes graphs and results documents.
type Codec interface {
	// Format returns the codec format identifier, also used as file extension.
	Format() string

	EncodeGraphs(w io.Writer, graphs []*core.Graph) error
	DecodeGraphs(r io.Reader) ([]*core.Graph, error)

	EncodeResults(w io.Writer, reports []bench.GraphReport) error
	DecodeResults(r io.Reader) ([]bench.GraphReport, error)
}

// ForFormat returns the codec registered under name (case-insensitive;
// "yml" is accepted for YAML).
func ForFormat(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatJSON:
		return NewJSONCodec(), nil
	case FormatYAML, "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("ForFormat: %q: %w", name, ErrUnknownFormat)
	}
}

// graphsDoc is the top-level graphs document.
type graphsDoc struct {
	Graphs []graphRecord `json:"graphs" yaml:"graphs"`
}

type graphRecord struct {
	ID       int          `json:"id" yaml:"id"`
	Category string       `json:"category" yaml:"category"`
	Density  string       `json:"density" yaml:"density"`
	Nodes    []string     `json:"nodes" yaml:"nodes"`
	Edges    []edgeRecord `json:"edges" yaml:"edges"`
}

type edgeRecord struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// resultsDoc is the top-level results document.
type resultsDoc struct {
	Results []resultRecord `json:"results" yaml:"results"`
}

type resultRecord struct {
	GraphID    int         `json:"graph_id" yaml:"graph_id"`
	InputStats statsRecord `json:"input_stats" yaml:"input_stats"`
	Prim       mstRecord   `json:"prim" yaml:"prim"`
	Kruskal    mstRecord   `json:"kruskal" yaml:"kruskal"`
}

type statsRecord struct {
	Vertices int `json:"vertices" yaml:"vertices"`
	Edges    int `json:"edges" yaml:"edges"`
}

type mstRecord struct {
	Algorithm       string       `json:"algorithm" yaml:"algorithm"`
	MSTEdges        []edgeRecord `json:"mst_edges" yaml:"mst_edges"`
	TotalCost       int64        `json:"total_cost" yaml:"total_cost"`
	Vertices        int          `json:"vertices" yaml:"vertices"`
	Edges           int          `json:"edges" yaml:"edges"`
	OperationsCount int64        `json:"operations_count" yaml:"operations_count"`
	ExecutionTimeMS float64      `json:"execution_time_ms" yaml:"execution_time_ms"`
}

func toEdgeRecords(edges []core.Edge) []edgeRecord {
	out := make([]edgeRecord, len(edges))
	for i, e := range edges {
		out[i] = edgeRecord{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

func fromEdgeRecords(records []edgeRecord) []core.Edge {
	out := make([]core.Edge, len(records))
	for i, e := range records {
		out[i] = core.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

func toGraphsDoc(graphs []*core.Graph) (graphsDoc, error) {
	doc := graphsDoc{Graphs: make([]graphRecord, 0, len(graphs))}
	for i, g := range graphs {
		if g == nil {
			return graphsDoc{}, fmt.Errorf("graph #%d: %w", i, core.ErrNilGraph)
		}
		nodes := make([]string, len(g.Nodes))
		copy(nodes, g.Nodes)
		doc.Graphs = append(doc.Graphs, graphRecord{
			ID:       g.ID,
			Category: g.Category,
			Density:  g.Density,
			Nodes:    nodes,
			Edges:    toEdgeRecords(g.Edges),
		})
	}

	return doc, nil
}

func fromGraphsDoc(doc graphsDoc) []*core.Graph {
	out := make([]*core.Graph, len(doc.Graphs))
	for i, rec := range doc.Graphs {
		g := core.NewGraph(rec.Category, rec.Density)
		g.ID = rec.ID
		g.Nodes = append(g.Nodes, rec.Nodes...)
		g.Edges = fromEdgeRecords(rec.Edges)
		out[i] = g
	}

	return out
}

func toMSTRecord(r core.MSTResult) mstRecord {
	return mstRecord{
		Algorithm:       r.Algorithm,
		MSTEdges:        toEdgeRecords(r.Edges),
		TotalCost:       r.TotalCost,
		Vertices:        r.Vertices,
		Edges:           r.EdgeCount,
		OperationsCount: r.Operations,
		ExecutionTimeMS: r.ExecutionTimeMS,
	}
}

func fromMSTRecord(r mstRecord) core.MSTResult {
	return core.MSTResult{
		Algorithm:       r.Algorithm,
		Edges:           fromEdgeRecords(r.MSTEdges),
		TotalCost:       r.TotalCost,
		Vertices:        r.Vertices,
		EdgeCount:       r.Edges,
		Operations:      r.OperationsCount,
		ExecutionTimeMS: r.ExecutionTimeMS,
	}
}

func toResultsDoc(reports []bench.GraphReport) resultsDoc {
	doc := resultsDoc{Results: make([]resultRecord, len(reports))}
	for i, rep := range reports {
		doc.Results[i] = resultRecord{
			GraphID:    rep.GraphID,
			InputStats: statsRecord{Vertices: rep.InputStats.Vertices, Edges: rep.InputStats.Edges},
			Prim:       toMSTRecord(rep.Prim),
			Kruskal:    toMSTRecord(rep.Kruskal),
		}
	}

	return doc
}

// fromResultsDoc rebuilds reports. Category and density are not part of the
// results document and stay empty.
func fromResultsDoc(doc resultsDoc) []bench.GraphReport {
	out := make([]bench.GraphReport, len(doc.Results))
	for i, rec := range doc.Results {
		out[i] = bench.GraphReport{
			GraphID:    rec.GraphID,
			InputStats: core.Stats{Vertices: rec.InputStats.Vertices, Edges: rec.InputStats.Edges},
			Prim:       fromMSTRecord(rec.Prim),
			Kruskal:    fromMSTRecord(rec.Kruskal),
		}
	}

	return out
}
