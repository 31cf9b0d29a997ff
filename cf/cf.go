package cf

import (
	"errors"

	"github.com/katalvlaran/streamcluster/vector"
)

// ErrEmptySum indicates Sum was called on an empty slice of CFs. Spec §7
// treats this as a programmer error (an empty leaf handed to the global
// refinement pass, for instance) rather than a silently-wrong zero CF.
var ErrEmptySum = errors.New("cf: cannot sum zero clustering features")

// CF is the Clustering Feature triple (n, LS, SS):
//   - N is the number of points summarized.
//   - LS is the component-wise sum of those points.
//   - SS is the sum of squared magnitudes (‖p‖²) of those points.
//
// CFs are additive: (a+b).N = a.N+b.N, (a+b).LS = a.LS+b.LS, (a+b).SS = a.SS+b.SS.
type CF struct {
	N  int
	LS vector.Vector
	SS float64
}

// New returns the CF of a single point: N=1, LS=point, SS=‖point‖².
func New(point vector.Vector) CF {
	return CF{
		N:  1,
		LS: point.Clone(),
		SS: vector.SumSquares(point),
	}
}

// Add returns a new CF equal to a+b. a and b must describe points of the
// same dimension.
func Add(a, b CF) CF {
	return CF{
		N:  a.N + b.N,
		LS: vector.Add(a.LS, b.LS),
		SS: a.SS + b.SS,
	}
}

// AddPoint returns a new CF equal to c plus the singleton CF of point.
func AddPoint(c CF, point vector.Vector) CF {
	return Add(c, New(point))
}

// Sum folds cfs into a single CF via repeated Add. Sum of an empty slice
// returns ErrEmptySum — every leaf/cluster in this module always carries at
// least one CF, so an empty slice here indicates a bug upstream.
func Sum(cfs []CF) (CF, error) {
	if len(cfs) == 0 {
		return CF{}, ErrEmptySum
	}
	acc := cfs[0]
	for _, c := range cfs[1:] {
		acc = Add(acc, c)
	}
	return acc, nil
}

// Centroid returns LS/N. Callers must ensure N > 0.
func (c CF) Centroid() vector.Vector {
	return vector.Scale(c.LS, 1/float64(c.N))
}

// Radius returns SS/N − ‖centroid‖ (the source's closed form, resolving the
// two-definitions open question in favor of the variant the worked examples
// are computed against: inserting [2.0] then [3.0] gives centroid=[2.5],
// SS/N=6.5, ‖centroid‖=2.5, radius=4.0). A singleton CF always has radius
// zero regardless of the point's own magnitude. Drift-induced negative
// results are clamped to zero.
func (c CF) Radius() float64 {
	if c.N <= 1 {
		return 0
	}
	centroid := c.Centroid()
	norm := vector.ClampRadius(vector.SumSquares(centroid))
	r := c.SS/float64(c.N) - norm
	if r < 0 {
		return 0
	}
	return r
}

// Distance returns the Euclidean distance between the centroids of c and other.
func (c CF) Distance(other CF) float64 {
	return vector.EuclideanDistance(c.Centroid(), other.Centroid())
}
