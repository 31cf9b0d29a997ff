package denstream

import (
	"math"

	"github.com/katalvlaran/streamcluster/vector"
)

// weightedCF is the decaying weighted clustering feature shared by potential
// and outlier micro-clusters (spec §3 "Potential/Outlier MicroCluster"): a
// weight w plus linear and squared sums CF1/CF2 that decay by 2^(-λΔt) on
// every access.
type weightedCF struct {
	Weight     float64
	CF1        vector.Vector
	CF2        float64
	LastUpdate int
}

func newWeightedCF(points []vector.Vector, at int) weightedCF {
	dim := points[0].Len()
	cf1 := make(vector.Vector, dim)
	var cf2 float64
	for _, p := range points {
		for i, x := range p {
			cf1[i] += x
		}
		cf2 += vector.SumSquares(p)
	}
	return weightedCF{Weight: float64(len(points)), CF1: cf1, CF2: cf2, LastUpdate: at}
}

func singletonWeightedCF(point vector.Vector, at int) weightedCF {
	return weightedCF{
		Weight:     1,
		CF1:        point.Clone(),
		CF2:        vector.SumSquares(point),
		LastUpdate: at,
	}
}

// decayFunction returns 2^(-λ·t), the exponential decay weight applied over
// an elapsed clock span of t.
func decayFunction(lambda, t float64) float64 {
	return math.Pow(2, -lambda*t)
}

// decayTo ages w to clock by multiplying weight, CF1, and CF2 by the decay
// factor elapsed since its last update.
func (w weightedCF) decayTo(lambda float64, clock int) weightedCF {
	factor := decayFunction(lambda, float64(clock-w.LastUpdate))
	return weightedCF{
		Weight:     w.Weight * factor,
		CF1:        vector.Scale(w.CF1, factor),
		CF2:        w.CF2 * factor,
		LastUpdate: clock,
	}
}

// center returns CF1/weight.
func (w weightedCF) center() vector.Vector {
	return vector.Scale(w.CF1, 1/w.Weight)
}

// radius returns sqrt(CF2/weight - ||center||^2), clamped to zero against
// decay-induced numerical drift.
func (w weightedCF) radius() float64 {
	c := w.center()
	return vector.ClampRadius(w.CF2/w.Weight - vector.SumSquares(c))
}

// withPoint returns a copy of w with point folded in (weight+1, CF1+point,
// CF2+||point||^2), leaving w unmodified so callers can simulate a merge
// before committing to it (spec §4.3 "simulate adding p").
func (w weightedCF) withPoint(point vector.Vector) weightedCF {
	return weightedCF{
		Weight:     w.Weight + 1,
		CF1:        vector.Add(w.CF1, point),
		CF2:        w.CF2 + vector.SumSquares(point),
		LastUpdate: w.LastUpdate,
	}
}

// potentialMicroCluster is a mature, density-qualified micro-cluster.
type potentialMicroCluster struct {
	cf weightedCF
}

func newPotentialMicroCluster(points []vector.Vector, at int) potentialMicroCluster {
	return potentialMicroCluster{cf: newWeightedCF(points, at)}
}

func (p potentialMicroCluster) center() vector.Vector { return p.cf.center() }
func (p potentialMicroCluster) radius() float64       { return p.cf.radius() }

// outlierMicroCluster is a candidate micro-cluster not yet dense enough for
// promotion, tracked from its creation timestamp t0 for pruning purposes.
type outlierMicroCluster struct {
	cf weightedCF
	T0 int
}

func newOutlierMicroCluster(point vector.Vector, at int) outlierMicroCluster {
	return outlierMicroCluster{cf: singletonWeightedCF(point, at), T0: at}
}

func (o outlierMicroCluster) center() vector.Vector { return o.cf.center() }
func (o outlierMicroCluster) radius() float64       { return o.cf.radius() }

func promote(o outlierMicroCluster) potentialMicroCluster {
	return potentialMicroCluster{cf: o.cf}
}
