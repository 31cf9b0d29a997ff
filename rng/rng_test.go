package rng_test

import (
	"testing"

	"github.com/katalvlaran/streamcluster/rng"
	"github.com/stretchr/testify/assert"
)

func TestNewDeterministic(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestNewZeroSeedUsesDefault(t *testing.T) {
	a := rng.New(0)
	b := rng.New(0)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestSplitIndependentStreams(t *testing.T) {
	parent := rng.New(7)
	s1 := rng.Split(parent, 1)

	parent2 := rng.New(7)
	s2 := rng.Split(parent2, 2)

	assert.NotEqual(t, s1.Int63(), s2.Int63())
}

func TestSplitDeterministic(t *testing.T) {
	p1 := rng.New(7)
	c1 := rng.Split(p1, 5)

	p2 := rng.New(7)
	c2 := rng.Split(p2, 5)

	assert.Equal(t, c1.Int63(), c2.Int63())
}

func TestBernoulliBounds(t *testing.T) {
	r := rng.New(1)
	for i := 0; i < 100; i++ {
		assert.False(t, rng.Bernoulli(r, 0))
		assert.True(t, rng.Bernoulli(r, 1))
	}
}

func TestBernoulliDistribution(t *testing.T) {
	r := rng.New(99)
	hits := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if rng.Bernoulli(r, 0.3) {
			hits++
		}
	}
	// Binomial(10000, 0.3): mean 3000, stddev ~45.8; allow 5 sigma.
	assert.InDelta(t, 3000, hits, 5*46)
}
