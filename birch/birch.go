package birch

import (
	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/kmeans"
	"github.com/katalvlaran/streamcluster/vector"
)

// Birch is the public BIRCH clustering algorithm (spec §4.1): incremental
// CF-tree insertion plus an offline k-means refinement over leaf CFs.
// Birch implements cluster.Algorithm.
type Birch struct {
	tree *tree
	k    int
}

// New constructs a Birch instance. threshold is the absorb-gate radius
// (must be > 0), branchingFactor bounds entries per node (must be >= 2),
// and k is the number of centroids Clusters() refines leaves into (must be
// >= 1).
func New(threshold float64, branchingFactor int, k int) (*Birch, error) {
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	if branchingFactor < 2 {
		return nil, ErrInvalidBranchingFactor
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	return &Birch{tree: newTree(threshold, branchingFactor), k: k}, nil
}

// Insert ingests one point into the CF tree (spec §4.1 "Insertion
// algorithm"). Complexity: O(depth) amortized, plus an occasional O(entries)
// split cascade.
func (b *Birch) Insert(point vector.Vector) error {
	return b.tree.insert(point)
}

// Clusters runs the global refinement pass: collects one CF per leaf,
// k-means-clusters their centroids into b.k groups, and emits one
// ClusteringElement per leaf (spec §4.1 "Global clustering"). An empty tree
// (no points inserted yet) yields an empty, non-error result.
func (b *Birch) Clusters() ([]cluster.ClusteringElement, error) {
	leaves := make([]*node, 0)
	for _, n := range b.tree.nodes {
		if n.leaf {
			leaves = append(leaves, n)
		}
	}
	if len(leaves) == 0 {
		return nil, nil
	}

	centroids := make([]vector.Vector, len(leaves))
	radii := make([]float64, len(leaves))
	for i, leaf := range leaves {
		sum, err := leaf.sum()
		if err != nil {
			return nil, err
		}
		centroids[i] = sum.Centroid()
		radii[i] = sum.Radius()
	}

	res, err := kmeans.Run(centroids, b.k, kmeans.DefaultMaxIterations)
	if err != nil {
		return nil, err
	}

	out := make([]cluster.ClusteringElement, len(leaves))
	for i := range leaves {
		out[i] = cluster.ClusteringElement{
			Center:  centroids[i],
			Radius:  radii[i],
			Cluster: res.Assignments[i],
		}
	}
	return out, nil
}

// Name identifies this algorithm for reporting (spec §6).
func (b *Birch) Name() string { return "BIRCH" }

// LeafCount reports the number of leaves currently in the CF tree, mainly
// useful for tests asserting tree-shape invariants.
func (b *Birch) LeafCount() int {
	n := 0
	for _, nd := range b.tree.nodes {
		if nd.leaf {
			n++
		}
	}
	return n
}

// HasNonLeafRoot reports whether the tree's root is a non-leaf node (i.e.
// at least one split has occurred).
func (b *Birch) HasNonLeafRoot() bool {
	if b.tree.rootID == noParent {
		return false
	}
	return !b.tree.nodes[b.tree.rootID].leaf
}

// TotalPoints returns the sum of n across every leaf CF, which must always
// equal the number of points inserted so far (spec §8 invariant).
func (b *Birch) TotalPoints() (int, error) {
	total := 0
	for _, n := range b.tree.nodes {
		if !n.leaf {
			continue
		}
		sum, err := n.sum()
		if err != nil {
			return 0, err
		}
		total += sum.N
	}
	return total, nil
}
