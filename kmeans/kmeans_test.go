package kmeans_test

import (
	"testing"

	"github.com/katalvlaran/streamcluster/kmeans"
	"github.com/katalvlaran/streamcluster/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points() []vector.Vector {
	return []vector.Vector{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	}
}

func TestRunSeparatesObviousClusters(t *testing.T) {
	res, err := kmeans.Run(points(), 2, 0)
	require.NoError(t, err)

	first := res.Assignments[0]
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, res.Assignments[i])
	}
	second := res.Assignments[3]
	assert.NotEqual(t, first, second)
	for i := 3; i < 6; i++ {
		assert.Equal(t, second, res.Assignments[i])
	}
}

func TestRunDeterministic(t *testing.T) {
	a, err := kmeans.Run(points(), 2, 0)
	require.NoError(t, err)
	b, err := kmeans.Run(points(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Centroids, b.Centroids)
}

func TestRunInvalidK(t *testing.T) {
	_, err := kmeans.Run(points(), 0, 0)
	require.ErrorIs(t, err, kmeans.ErrInvalidK)
}

func TestRunNotEnoughPoints(t *testing.T) {
	_, err := kmeans.Run(points(), 100, 0)
	require.ErrorIs(t, err, kmeans.ErrNotEnoughPoints)
}
