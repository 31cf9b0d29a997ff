package sampler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/rng"
	"github.com/katalvlaran/streamcluster/vector"
)

// StaticSampler admits each point to the wrapped algorithm independently
// with fixed probability odds (spec §4.4 context: the simplest sampler in
// the family, kept in scope alongside KMeansDynamicSampler — see DESIGN.md
// for why its sibling UniformSampler was not).
// StaticSampler implements cluster.Algorithm.
type StaticSampler struct {
	algorithm cluster.Algorithm
	odds      float64
	rng       *rand.Rand
}

// NewStatic constructs a StaticSampler wrapping algorithm with fixed
// admission odds (must be within [0, 1]) and a deterministic RNG seed.
func NewStatic(algorithm cluster.Algorithm, odds float64, seed int64) (*StaticSampler, error) {
	if algorithm == nil {
		return nil, ErrNilAlgorithm
	}
	if odds < 0 || odds > 1 {
		return nil, ErrInvalidOdds
	}
	return &StaticSampler{algorithm: algorithm, odds: odds, rng: rng.New(seed)}, nil
}

// Insert admits point to the wrapped algorithm with probability s.odds.
func (s *StaticSampler) Insert(point vector.Vector) error {
	if rng.Bernoulli(s.rng, s.odds) {
		return s.algorithm.Insert(point)
	}
	return nil
}

// Clusters forwards to the wrapped algorithm.
func (s *StaticSampler) Clusters() ([]cluster.ClusteringElement, error) {
	return s.algorithm.Clusters()
}

// Name identifies this sampler alongside the algorithm it wraps.
func (s *StaticSampler) Name() string {
	return fmt.Sprintf("(StaticSampler(%v), %s)", s.odds, s.algorithm.Name())
}
