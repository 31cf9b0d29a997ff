// Package denstream implements DenStream: a density-based online layer of
// weighted potential and outlier micro-clusters with exponential decay,
// periodic pruning, and an offline DBSCAN-style density-reachability
// traversal that materializes the final clustering (spec §4.3).
package denstream
