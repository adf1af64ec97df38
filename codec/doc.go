// Package codec reads and writes the benchmark's interchange documents.
//
// Two documents exist:
//
//	graphs  : {"graphs": [{"id", "category", "density", "nodes", "edges": [{"from","to","weight"}]}]}
//	results : {"results": [{"graph_id", "input_stats": {"vertices","edges"}, "prim", "kruskal"}]}
//
// where "prim" and "kruskal" are result records with the fields algorithm,
// mst_edges, total_cost, vertices, edges, operations_count and
// execution_time_ms.
//
// Both documents are available as indented JSON (JSONCodec) and as YAML
// (YAMLCodec). The field names are identical in both encodings, so a file
// converts between them losslessly. Decoders do not validate graph
// structure; call core.Graph.Validate when the input is untrusted.
package codec
