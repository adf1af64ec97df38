package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/core"
)

// JSONCodec handles indented JSON documents.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return FormatJSON
}

// EncodeGraphs writes {"graphs": [...]}.
func (c *JSONCodec) EncodeGraphs(w io.Writer, graphs []*core.Graph) error {
	doc, err := toGraphsDoc(graphs)
	if err != nil {
		return fmt.Errorf("EncodeGraphs: %w", err)
	}

	return c.encode(w, doc)
}

// DecodeGraphs reads a graphs document. An empty document, or one without
// a "graphs" key, yields ErrNoGraphs.
func (c *JSONCodec) DecodeGraphs(r io.Reader) ([]*core.Graph, error) {
	var doc graphsDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoGraphs
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if doc.Graphs == nil {
		return nil, ErrNoGraphs
	}

	return fromGraphsDoc(doc), nil
}

// EncodeResults writes {"results": [...]}.
func (c *JSONCodec) EncodeResults(w io.Writer, reports []bench.GraphReport) error {
	return c.encode(w, toResultsDoc(reports))
}

// DecodeResults reads a results document.
func (c *JSONCodec) DecodeResults(r io.Reader) ([]bench.GraphReport, error) {
	var doc resultsDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if doc.Results == nil {
		return nil, ErrNoResults
	}

	return fromResultsDoc(doc), nil
}

func (c *JSONCodec) encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
