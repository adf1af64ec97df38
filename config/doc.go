// Package config loads the benchmark driver's configuration.
//
// Configuration comes from three layers, later layers winning:
//
//  1. DefaultConfig: the four size tiers, three densities, JSON files in ".".
//  2. An optional YAML file (LoadFromPath), with missing fields defaulted.
//  3. MSTBENCH_* environment variables (ApplyEnv).
//
// Validate checks the result with struct tags (go-playground/validator).
// NewLogger builds the zap logger the rest of the driver uses.
package config
