// Package streamcluster is the module root for a family of streaming and
// batch clustering algorithms over real-valued vectors: BIRCH, CluStream,
// DenStream, and a set of admission samplers that wrap any of them.
//
// Subpackages:
//
//	vector/     — fixed-dimension real vector arithmetic shared by every algorithm
//	cf/         — BIRCH's clustering feature (CF) summary statistic
//	kmeans/     — batch k-means, used for BIRCH/CluStream seeding and offline refinement
//	rng/        — deterministic random source construction
//	cluster/    — the Algorithm capability set, ClusteringElement, and SSQ
//	birch/      — BIRCH: a CF-tree built incrementally with branching-factor-bounded nodes
//	clustream/  — CluStream: micro-clusters with temporal snapshots for horizon queries
//	denstream/  — DenStream: density-based micro-clusters with decay and pruning
//	sampler/    — StaticSampler and KMeansDynamicSampler, wrapping any cluster.Algorithm
//	harness/    — CSV I/O, YAML run configuration, and algorithm construction
//	cmd/streamcluster/ — the CLI entry point
//
// There is no root-level API: import the subpackage for the concern you need.
package streamcluster
