package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/kmeans"
	"github.com/katalvlaran/streamcluster/rng"
	"github.com/katalvlaran/streamcluster/vector"
)

// referenceCluster is one of the k reference regions computed at bootstrap,
// used afterwards purely to price admission probability — it plays no part
// in the wrapped algorithm's own clustering.
type referenceCluster struct {
	Centroid vector.Vector
	Radius   float64
}

// KMeansDynamicSampler wraps a cluster.Algorithm and admits points with
// probability shaped by their distance to a set of k reference clusters
// learned from the first DELTA points (spec §4.4): baseline coverage of
// known regions, higher admission near new or sparsely sampled regions.
// KMeansDynamicSampler implements cluster.Algorithm.
type KMeansDynamicSampler struct {
	algorithm cluster.Algorithm
	k         int
	alpha     float64
	beta      float64
	lambda    float64
	delta     int

	rng               *rand.Rand
	initialBuffer     []vector.Vector
	initiated         bool
	referenceClusters []referenceCluster
	maxDistance       float64
}

// DynamicOption configures a KMeansDynamicSampler.
type DynamicOption func(*KMeansDynamicSampler)

// WithAlpha sets α, the linear admission-probability slope between the
// surface and max_distance (default 1.0).
func WithAlpha(alpha float64) DynamicOption { return func(s *KMeansDynamicSampler) { s.alpha = alpha } }

// WithBeta sets β, the baseline admission probability inside a reference
// cluster's radius (default 0.5).
func WithBeta(beta float64) DynamicOption { return func(s *KMeansDynamicSampler) { s.beta = beta } }

// WithLambda sets λ, the admission probability at or beyond the current
// max_distance (default 0.001).
func WithLambda(lambda float64) DynamicOption {
	return func(s *KMeansDynamicSampler) { s.lambda = lambda }
}

// WithDelta sets DELTA, the bootstrap buffer size (default 1000).
func WithDelta(delta int) DynamicOption { return func(s *KMeansDynamicSampler) { s.delta = delta } }

// NewKMeansDynamic constructs a KMeansDynamicSampler wrapping algorithm,
// learning k reference clusters at bootstrap, seeded deterministically.
func NewKMeansDynamic(algorithm cluster.Algorithm, k int, seed int64, opts ...DynamicOption) (*KMeansDynamicSampler, error) {
	if algorithm == nil {
		return nil, ErrNilAlgorithm
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	s := &KMeansDynamicSampler{
		algorithm:   algorithm,
		k:           k,
		alpha:       1.0,
		beta:        0.5,
		lambda:      0.001,
		delta:       1000,
		rng:         rng.New(seed),
		maxDistance: math.MaxFloat64,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.delta < 1 {
		return nil, ErrInvalidDelta
	}
	return s, nil
}

// Insert forwards every point unconditionally during bootstrap (spec §4.4
// "Bootstrap"); afterwards it admits point to the wrapped algorithm with
// probability derived from its distance to the nearest reference cluster
// surface (spec §4.4 "Steady state").
func (s *KMeansDynamicSampler) Insert(point vector.Vector) error {
	if !s.initiated {
		if err := s.algorithm.Insert(point); err != nil {
			return err
		}
		s.initialBuffer = append(s.initialBuffer, point.Clone())
		if len(s.initialBuffer) >= s.delta {
			if err := s.bootstrap(); err != nil {
				return err
			}
		}
		return nil
	}

	p := s.admissionProbability(point)
	if rng.Bernoulli(s.rng, p) {
		return s.algorithm.Insert(point)
	}
	return nil
}

// bootstrap runs offline k-means over the buffered points, records each
// group's centroid and RMS radius as a reference cluster, sets max_distance
// to the largest pairwise distance observed in the buffer, and discards the
// buffer (spec §4.4 "Bootstrap").
func (s *KMeansDynamicSampler) bootstrap() error {
	res, err := kmeans.Run(s.initialBuffer, s.k, kmeans.DefaultMaxIterations)
	if err != nil {
		return err
	}

	groups := make([][]vector.Vector, s.k)
	for i, g := range res.Assignments {
		groups[g] = append(groups[g], s.initialBuffer[i])
	}

	s.referenceClusters = s.referenceClusters[:0]
	for _, members := range groups {
		if len(members) == 0 {
			continue
		}
		s.referenceClusters = append(s.referenceClusters, characterize(members))
	}

	s.maxDistance = maxPairwiseDistance(s.initialBuffer)
	s.initialBuffer = nil
	s.initiated = true
	return nil
}

// characterize computes a reference cluster's centroid (group mean) and RMS
// radius (root mean squared distance to that centroid).
func characterize(members []vector.Vector) referenceCluster {
	dim := members[0].Len()
	sum := make(vector.Vector, dim)
	for _, m := range members {
		for i, x := range m {
			sum[i] += x
		}
	}
	centroid := vector.Scale(sum, 1/float64(len(members)))

	var ss float64
	for _, m := range members {
		d := vector.EuclideanDistance(m, centroid)
		ss += d * d
	}
	radius := math.Sqrt(ss / float64(len(members)))

	return referenceCluster{Centroid: centroid, Radius: radius}
}

// maxPairwiseDistance returns the largest Euclidean distance between any
// two points in points. O(n^2); bounded by DELTA.
func maxPairwiseDistance(points []vector.Vector) float64 {
	var max float64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := vector.EuclideanDistance(points[i], points[j])
			if d > max {
				max = d
			}
		}
	}
	return max
}

// admissionProbability computes p from the signed distance d* of point to
// the nearest reference cluster surface (spec §4.4 "Steady state" step 2).
// Reaching or exceeding max_distance expands it to the new farthest-seen
// distance, so a single outlier never permanently saturates admission at
// p=λ for every subsequent point in that region.
func (s *KMeansDynamicSampler) admissionProbability(point vector.Vector) float64 {
	dStar := math.MaxFloat64
	for _, rc := range s.referenceClusters {
		d := vector.EuclideanDistance(point, rc.Centroid) - rc.Radius
		if d < dStar {
			dStar = d
		}
	}

	switch {
	case dStar <= 0:
		return s.beta
	case dStar >= s.maxDistance:
		s.maxDistance = dStar
		return s.lambda
	default:
		return s.alpha * (dStar / s.maxDistance)
	}
}

// Clusters forwards to the wrapped algorithm.
func (s *KMeansDynamicSampler) Clusters() ([]cluster.ClusteringElement, error) {
	return s.algorithm.Clusters()
}

// Name identifies this sampler alongside the algorithm it wraps.
func (s *KMeansDynamicSampler) Name() string {
	return fmt.Sprintf("(KMeansDynamicSampler, %s)", s.algorithm.Name())
}
