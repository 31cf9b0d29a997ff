package sampler_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/sampler"
	"github.com/katalvlaran/streamcluster/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAlgorithm is a minimal cluster.Algorithm test double that counts
// admitted inserts instead of clustering them.
type countingAlgorithm struct {
	count int
}

func (c *countingAlgorithm) Insert(vector.Vector) error {
	c.count++
	return nil
}
func (c *countingAlgorithm) Clusters() ([]cluster.ClusteringElement, error) { return nil, nil }
func (c *countingAlgorithm) Name() string                                  { return "counting" }

// TestStaticSamplerSubsequence reproduces spec scenario 6: wrapping a
// counting algorithm with StaticSampler(odds=0.3) over 10,000 inserts, the
// received count must fall within 5σ of Binomial(10000, 0.3).
func TestStaticSamplerSubsequence(t *testing.T) {
	counter := &countingAlgorithm{}
	s, err := sampler.NewStatic(counter, 0.3, 42)
	require.NoError(t, err)

	const n = 10000
	const p = 0.3
	for i := 0; i < n; i++ {
		require.NoError(t, s.Insert(vector.Vector{float64(i)}))
	}

	mean := n * p
	stddev := math.Sqrt(n * p * (1 - p))
	assert.InDelta(t, mean, float64(counter.count), 5*stddev)
}

func TestStaticSamplerValidation(t *testing.T) {
	_, err := sampler.NewStatic(nil, 0.5, 1)
	require.ErrorIs(t, err, sampler.ErrNilAlgorithm)

	counter := &countingAlgorithm{}
	_, err = sampler.NewStatic(counter, 1.5, 1)
	require.ErrorIs(t, err, sampler.ErrInvalidOdds)
}

func TestStaticSamplerName(t *testing.T) {
	counter := &countingAlgorithm{}
	s, err := sampler.NewStatic(counter, 0.3, 1)
	require.NoError(t, err)
	assert.Contains(t, s.Name(), "StaticSampler")
	assert.Contains(t, s.Name(), "counting")
}

func TestKMeansDynamicBootstrapAndSteadyState(t *testing.T) {
	counter := &countingAlgorithm{}
	s, err := sampler.NewKMeansDynamic(counter, 2, 7, sampler.WithDelta(50))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		v := float64(i % 2 * 10)
		require.NoError(t, s.Insert(vector.Vector{v}))
	}
	require.Equal(t, 50, counter.count)

	for i := 0; i < 100; i++ {
		require.NoError(t, s.Insert(vector.Vector{5}))
	}
	assert.Greater(t, counter.count, 50)
}

func TestKMeansDynamicValidation(t *testing.T) {
	_, err := sampler.NewKMeansDynamic(nil, 2, 1)
	require.ErrorIs(t, err, sampler.ErrNilAlgorithm)

	counter := &countingAlgorithm{}
	_, err = sampler.NewKMeansDynamic(counter, 0, 1)
	require.ErrorIs(t, err, sampler.ErrInvalidK)

	_, err = sampler.NewKMeansDynamic(counter, 2, 1, sampler.WithDelta(0))
	require.ErrorIs(t, err, sampler.ErrInvalidDelta)
}
