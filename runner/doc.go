// Package runner is the batch driver: it generates per-category input files
// and solves them into per-category output files.
//
// Files live in Config.DataDir and are named after the category and the
// configured codec format:
//
//	input_<category>.<format>    graphs document written by Generate
//	output_<category>.<format>   results document written by Solve
//	summary_<category>.yaml      per-algorithm statistics written by Solve
//
// Generation is sequential and reproducible: category i draws from
// rng.New(Seed).Derive(i), so changing one category's tier never shifts the
// graphs of another. Solving fans out over a bounded errgroup; reports keep
// input order regardless of completion order.
package runner
