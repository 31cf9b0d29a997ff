package cluster

import "github.com/katalvlaran/streamcluster/vector"

// SSQ computes the within-cluster sum of squared distances: group els by
// Cluster, compute each group's mean Center, and sum the squared distance
// from every element's Center to its group's mean (spec §6). It is an
// external-facing quality metric, not used internally by any algorithm.
func SSQ(els []ClusteringElement) float64 {
	if len(els) == 0 {
		return 0
	}

	groups := make(map[int][]vector.Vector)
	order := make([]int, 0)
	for _, e := range els {
		if _, ok := groups[e.Cluster]; !ok {
			order = append(order, e.Cluster)
		}
		groups[e.Cluster] = append(groups[e.Cluster], e.Center)
	}

	means := make(map[int]vector.Vector, len(groups))
	for _, g := range order {
		means[g] = mean(groups[g])
	}

	var total float64
	for _, e := range els {
		d := vector.EuclideanDistance(e.Center, means[e.Cluster])
		total += d * d
	}
	return total
}

func mean(points []vector.Vector) vector.Vector {
	dim := points[0].Len()
	sum := make(vector.Vector, dim)
	for _, p := range points {
		for d := 0; d < dim; d++ {
			sum[d] += p[d]
		}
	}
	return vector.Scale(sum, 1/float64(len(points)))
}
