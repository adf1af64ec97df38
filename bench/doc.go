// Package bench runs both MST engines over the same graph and records what
// they did.
//
// A Recorder executes Prim first and Kruskal second on every graph handed to
// Record, pairs the two core.MSTResult values with the graph's identity and
// input statistics, and cross-checks that both engines agree on total cost.
// Disconnected graphs are not fatal: the partial forests are kept in the
// report and the returned error wraps core.ErrDisconnected.
//
// Optional Prometheus instrumentation (Metrics) counts runs per algorithm,
// category and outcome, and observes execution time and operation counts.
// Summarize folds a slice of reports into per-algorithm statistics.
//
// bench never logs; callers decide what to do with the reports.
package bench
