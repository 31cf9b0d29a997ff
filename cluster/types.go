package cluster

import "github.com/katalvlaran/streamcluster/vector"

// ClusteringElement is one member of a clusters() result: its Center and
// Radius describe the summarizing CF/micro-cluster it belongs to, and
// Cluster is a nonnegative label — identical labels within one Clusters()
// return value denote the same cluster (spec §6).
type ClusteringElement struct {
	Center  vector.Vector
	Radius  float64
	Cluster int
}

// Algorithm is the contract consumed by samplers and the harness (spec §6).
// Insert ingests one point with O(1) or O(log n) amortized work and bounded
// working-set size (spec §1). Clusters runs whatever offline refinement the
// algorithm defines and returns the current approximate clustering. Name
// identifies the algorithm (and, for samplers, the algorithm it wraps) for
// reporting.
type Algorithm interface {
	Insert(point vector.Vector) error
	Clusters() ([]ClusteringElement, error)
	Name() string
}
