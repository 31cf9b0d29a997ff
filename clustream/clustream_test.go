package clustream

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/streamcluster/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(WithQ(0))
	require.ErrorIs(t, err, ErrInvalidQ)

	_, err = New(WithQ(10), WithInitNumber(5))
	require.ErrorIs(t, err, ErrInvalidInitNumber)

	_, err = New(WithMaximumBoundaryFactor(0))
	require.ErrorIs(t, err, ErrInvalidMaximumBoundaryFactor)

	_, err = New(WithAlpha(1))
	require.ErrorIs(t, err, ErrInvalidAlpha)
}

// TestClusterCap reproduces spec scenario 3: with Q=10, INIT_NUMBER=10,
// after 10 distinct values plus 1000 random values the micro-cluster count
// is exactly 10 and stays there.
func TestClusterCap(t *testing.T) {
	cs, err := New(WithQ(10), WithInitNumber(10))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, cs.Insert(vector.Vector{float64(i)}))
	}
	els, err := cs.Clusters()
	require.NoError(t, err)
	require.Len(t, els, 10)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		require.NoError(t, cs.Insert(vector.Vector{r.Float64() * 100}))
		els, err := cs.Clusters()
		require.NoError(t, err)
		require.Len(t, els, 10)
	}
}

// TestSnapshotValuation reproduces spec scenario 4: with alpha=2, clock=12
// lands at order 2 (12 = 4*3), clock=16 at order 4, clock=15 at order 0.
func TestSnapshotValuation(t *testing.T) {
	v := newSnapshotVault(2)
	assert.Equal(t, 2, v.findOrder(12))
	assert.Equal(t, 4, v.findOrder(16))
	assert.Equal(t, 0, v.findOrder(15))
}

func TestInsertBeforeInitiationYieldsNoClusters(t *testing.T) {
	cs, err := New(WithQ(3), WithInitNumber(5))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, cs.Insert(vector.Vector{float64(i)}))
	}
	els, err := cs.Clusters()
	require.NoError(t, err)
	assert.Nil(t, els)
}

func TestDimensionMismatchRejected(t *testing.T) {
	cs, err := New(WithQ(2), WithInitNumber(2))
	require.NoError(t, err)
	require.NoError(t, cs.Insert(vector.Vector{1, 2}))
	require.NoError(t, cs.Insert(vector.Vector{3, 4}))
	err = cs.Insert(vector.Vector{1, 2, 3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestMacroClustersHorizon(t *testing.T) {
	cs, err := New(WithQ(4), WithInitNumber(4))
	require.NoError(t, err)

	values := []float64{1, 2, 50, 51}
	for _, v := range values {
		require.NoError(t, cs.Insert(vector.Vector{v}))
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		require.NoError(t, cs.Insert(vector.Vector{r.Float64() * 100}))
	}

	els, err := cs.MacroClusters(5, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, els)

	_, err = cs.MacroClusters(0, 2)
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	_, err = cs.MacroClusters(5, 0)
	assert.ErrorIs(t, err, ErrInvalidK)
}
