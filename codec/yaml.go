package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/core"
)

// YAMLCodec handles YAML documents with the same field names as JSONCodec.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return FormatYAML
}

// EncodeGraphs writes a graphs document.
func (c *YAMLCodec) EncodeGraphs(w io.Writer, graphs []*core.Graph) error {
	doc, err := toGraphsDoc(graphs)
	if err != nil {
		return fmt.Errorf("EncodeGraphs: %w", err)
	}

	return c.encode(w, doc)
}

// DecodeGraphs reads a graphs document.
func (c *YAMLCodec) DecodeGraphs(r io.Reader) ([]*core.Graph, error) {
	var doc graphsDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoGraphs
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Graphs == nil {
		return nil, ErrNoGraphs
	}

	return fromGraphsDoc(doc), nil
}

// EncodeResults writes a results document.
func (c *YAMLCodec) EncodeResults(w io.Writer, reports []bench.GraphReport) error {
	return c.encode(w, toResultsDoc(reports))
}

// DecodeResults reads a results document.
func (c *YAMLCodec) DecodeResults(r io.Reader) ([]bench.GraphReport, error) {
	var doc resultsDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Results == nil {
		return nil, ErrNoResults
	}

	return fromResultsDoc(doc), nil
}

func (c *YAMLCodec) encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
