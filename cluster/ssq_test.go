package cluster_test

import (
	"testing"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/vector"
	"github.com/stretchr/testify/assert"
)

func TestSSQZeroForSingletonGroups(t *testing.T) {
	els := []cluster.ClusteringElement{
		{Center: vector.Vector{0, 0}, Cluster: 0},
		{Center: vector.Vector{5, 5}, Cluster: 1},
	}
	assert.Equal(t, 0.0, cluster.SSQ(els))
}

func TestSSQKnownSpread(t *testing.T) {
	els := []cluster.ClusteringElement{
		{Center: vector.Vector{0, 0}, Cluster: 0},
		{Center: vector.Vector{2, 0}, Cluster: 0},
	}
	// mean = (1,0); squared distances: 1 + 1 = 2
	assert.InDelta(t, 2.0, cluster.SSQ(els), 1e-9)
}

func TestSSQEmpty(t *testing.T) {
	assert.Equal(t, 0.0, cluster.SSQ(nil))
}
