package kmeans

import (
	"errors"

	"github.com/katalvlaran/streamcluster/vector"
)

// DefaultMaxIterations bounds every k-means call so that insert-path work
// remains bounded-time per point (spec §5), aside from amortized BIRCH tree
// rebuilds.
const DefaultMaxIterations = 10_000

// ErrNotEnoughPoints indicates k exceeds the number of points to cluster —
// a programmer error (spec §7: "k > buffer.len"), not a recoverable runtime
// condition.
var ErrNotEnoughPoints = errors.New("kmeans: k exceeds the number of points")

// ErrInvalidK indicates a non-positive k was requested.
var ErrInvalidK = errors.New("kmeans: k must be positive")

// Result holds the outcome of a k-means run: Centroids[j] is the centroid
// of cluster j, and Assignments[i] is the cluster index assigned to
// points[i].
type Result struct {
	Centroids   []vector.Vector
	Assignments []int
}

// Run partitions points into k clusters. Initialization always takes the
// first k points (deterministic, no randomness: spec §4.1 "first-k
// initialization"); the loop terminates when the assignment's centroid
// list repeats exactly (identity-convergence) or after maxIterations
// rounds, whichever comes first.
//
// Complexity: O(maxIterations * len(points) * k * dim).
func Run(points []vector.Vector, k int, maxIterations int) (Result, error) {
	if k <= 0 {
		return Result{}, ErrInvalidK
	}
	if len(points) < k {
		return Result{}, ErrNotEnoughPoints
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	centroids := make([]vector.Vector, k)
	for j := 0; j < k; j++ {
		centroids[j] = points[j].Clone()
	}
	assignments := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		for i, p := range points {
			assignments[i] = closest(p, centroids)
		}

		newCentroids := recompute(points, assignments, centroids, k)
		if identical(centroids, newCentroids) {
			centroids = newCentroids
			break
		}
		centroids = newCentroids
	}

	return Result{Centroids: centroids, Assignments: assignments}, nil
}

// closest returns the index of the centroid nearest p, breaking ties by
// first occurrence (spec §4.1 "tie-breaking on equal distances follows
// input order").
func closest(p vector.Vector, centroids []vector.Vector) int {
	best := 0
	bestDist := vector.EuclideanDistance(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		d := vector.EuclideanDistance(p, centroids[j])
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// recompute returns the mean of each cluster's assigned points. A cluster
// with no members keeps its previous centroid (an empty group never
// contributes a mean, and retaining the prior value avoids manufacturing a
// fictitious zero point that could attract future assignments unduly).
func recompute(points []vector.Vector, assignments []int, prev []vector.Vector, k int) []vector.Vector {
	dim := points[0].Len()
	sums := make([]vector.Vector, k)
	counts := make([]int, k)
	for j := range sums {
		sums[j] = make(vector.Vector, dim)
	}

	for i, p := range points {
		g := assignments[i]
		counts[g]++
		for d := 0; d < dim; d++ {
			sums[g][d] += p[d]
		}
	}

	out := make([]vector.Vector, k)
	for j := 0; j < k; j++ {
		if counts[j] == 0 {
			out[j] = prev[j].Clone()
			continue
		}
		out[j] = vector.Scale(sums[j], 1/float64(counts[j]))
	}
	return out
}

func identical(a, b []vector.Vector) bool {
	for j := range a {
		for d := range a[j] {
			if a[j][d] != b[j][d] {
				return false
			}
		}
	}
	return true
}
