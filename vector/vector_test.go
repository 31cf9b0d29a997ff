package vector_test

import (
	"testing"

	"github.com/katalvlaran/streamcluster/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	var empty vector.Vector
	require.ErrorIs(t, empty.Validate(3), vector.ErrEmptyVector)

	v := vector.Vector{1, 2}
	require.ErrorIs(t, v.Validate(3), vector.ErrDimensionMismatch)
	require.NoError(t, v.Validate(2))
}

func TestEuclideanDistance(t *testing.T) {
	a := vector.Vector{0, 0}
	b := vector.Vector{3, 4}
	assert.InDelta(t, 5.0, vector.EuclideanDistance(a, b), 1e-9)
	assert.Equal(t, 0.0, vector.EuclideanDistance(a, a))
}

func TestAddSubScale(t *testing.T) {
	a := vector.Vector{1, 2, 3}
	b := vector.Vector{4, 5, 6}
	assert.Equal(t, vector.Vector{5, 7, 9}, vector.Add(a, b))
	assert.Equal(t, vector.Vector{-3, -3, -3}, vector.Sub(a, b))
	assert.Equal(t, vector.Vector{2, 4, 6}, vector.Scale(a, 2))
}

func TestClampRadius(t *testing.T) {
	assert.Equal(t, 0.0, vector.ClampRadius(-0.0001))
	assert.InDelta(t, 2.0, vector.ClampRadius(4.0), 1e-9)
}

func TestClone(t *testing.T) {
	a := vector.Vector{1, 2}
	b := a.Clone()
	b[0] = 99
	assert.Equal(t, 1.0, a[0])
}
