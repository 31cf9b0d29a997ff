package birch_test

import (
	"testing"

	"github.com/katalvlaran/streamcluster/birch"
	"github.com/katalvlaran/streamcluster/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertAll(t *testing.T, b *birch.Birch, values []float64) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, b.Insert(vector.Vector{v}))
	}
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := birch.New(0, 2, 1)
	require.ErrorIs(t, err, birch.ErrInvalidThreshold)

	_, err = birch.New(1, 1, 1)
	require.ErrorIs(t, err, birch.ErrInvalidBranchingFactor)

	_, err = birch.New(1, 2, 0)
	require.ErrorIs(t, err, birch.ErrInvalidK)
}

// TestTreeGrows reproduces spec scenario 2: with T=5, B=2, k=2, after
// inserting the 12 listed points the tree must have a non-leaf root and at
// least two leaves, and Clusters() with k=2 must return two distinct
// cluster labels covering all leaves.
func TestTreeGrows(t *testing.T) {
	b, err := birch.New(5, 2, 2)
	require.NoError(t, err)

	values := []float64{22, 9, 12, 15, 18, 27, 11, 36, 10, 3, 14, 32}
	insertAll(t, b, values)

	assert.True(t, b.HasNonLeafRoot())
	assert.GreaterOrEqual(t, b.LeafCount(), 2)

	els, err := b.Clusters()
	require.NoError(t, err)
	assert.Len(t, els, b.LeafCount())

	labels := make(map[int]bool)
	for _, e := range els {
		labels[e.Cluster] = true
	}
	assert.Len(t, labels, 2)

	total, err := b.TotalPoints()
	require.NoError(t, err)
	assert.Equal(t, len(values), total)
}

func TestInsertSingleton(t *testing.T) {
	b, err := birch.New(5, 4, 1)
	require.NoError(t, err)
	require.NoError(t, b.Insert(vector.Vector{1, 2}))

	els, err := b.Clusters()
	require.NoError(t, err)
	require.Len(t, els, 1)
	assert.Equal(t, vector.Vector{1, 2}, els[0].Center)
	assert.Equal(t, 0.0, els[0].Radius)
}

func TestClustersEmptyTree(t *testing.T) {
	b, err := birch.New(5, 4, 2)
	require.NoError(t, err)
	els, err := b.Clusters()
	require.NoError(t, err)
	assert.Empty(t, els)
}

func TestDimensionMismatchRejected(t *testing.T) {
	b, err := birch.New(5, 4, 1)
	require.NoError(t, err)
	require.NoError(t, b.Insert(vector.Vector{1, 2}))
	err = b.Insert(vector.Vector{1, 2, 3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestRadiusMonotonicallyNonIncreasingOnIdenticalInserts(t *testing.T) {
	b, err := birch.New(100, 8, 1)
	require.NoError(t, err)

	var prevRadius float64 = -1
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Insert(vector.Vector{5, 5}))
		els, err := b.Clusters()
		require.NoError(t, err)
		require.Len(t, els, 1)
		if prevRadius >= 0 {
			assert.LessOrEqual(t, els[0].Radius, prevRadius+1e-9)
		}
		prevRadius = els[0].Radius
	}
}
