package denstream

import (
	"math"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/vector"
)

// DenStream implements the DenStream algorithm (spec §4.3): weighted
// potential and outlier micro-clusters with exponential decay, periodic
// pruning, and offline DBSCAN-style clustering.
// DenStream implements cluster.Algorithm.
//
// DenStream is not safe for concurrent use, for the same reason as
// [clustream.CluStream]: spec §5 mandates single-threaded, cooperative
// insertion.
type DenStream struct {
	lambda  float64
	mu      float64
	epsilon float64
	beta    float64
	initN   int
	v       int
	tp      int

	potentials []potentialMicroCluster
	outliers   []outlierMicroCluster

	initialBuffer []vector.Vector
	initiated     bool
	clock         int
	smallClock    int
	dim           int
}

// New constructs a DenStream instance with fixed parameters λ, μ, ε, β,
// INIT_N, and V (spec §4.3 "Public contract"). βμ must exceed 1 for the
// periodicity formula T_p to be well-defined (log2 of a positive ratio).
func New(lambda, mu, epsilon, beta float64, initN, v int) (*DenStream, error) {
	if lambda <= 0 {
		return nil, ErrInvalidLambda
	}
	if mu <= 0 {
		return nil, ErrInvalidMu
	}
	if epsilon <= 0 {
		return nil, ErrInvalidEpsilon
	}
	if beta <= 0 || beta >= 1 {
		return nil, ErrInvalidBeta
	}
	if initN < 1 {
		return nil, ErrInvalidInitN
	}
	if v < 1 {
		return nil, ErrInvalidV
	}
	if beta*mu <= 1 {
		return nil, ErrInvalidBeta
	}

	return &DenStream{
		lambda:  lambda,
		mu:      mu,
		epsilon: epsilon,
		beta:    beta,
		initN:   initN,
		v:       v,
		tp:      calculateTp(lambda, beta, mu),
		dim:     -1,
	}, nil
}

// calculateTp returns T_p = ceil((1/λ)·log2(βμ / (βμ − 1))) (spec §4.3
// "Periodicity").
func calculateTp(lambda, beta, mu float64) int {
	betaMu := beta * mu
	return int(math.Ceil((1 / lambda) * math.Log2(betaMu/(betaMu-1))))
}

// Insert ingests one point (spec §4.3 "Initialization" / "Merge policy").
func (d *DenStream) Insert(point vector.Vector) error {
	if d.dim == -1 {
		if err := point.Validate(len(point)); err != nil {
			return err
		}
		d.dim = len(point)
	} else if err := point.Validate(d.dim); err != nil {
		return err
	}

	if !d.initiated {
		d.initialBuffer = append(d.initialBuffer, point.Clone())
		if len(d.initialBuffer) >= d.initN {
			d.seed()
			d.initiated = true
			d.initialBuffer = nil
		}
		return nil
	}

	d.merge(point)
	if d.clock%d.tp == 0 {
		d.prune()
	}
	if d.smallClock%d.v == 0 {
		d.clock++
	}
	d.smallClock++
	return nil
}

// seed runs the DBSCAN-style seeding pass over the initialization buffer
// (spec §4.3 "Initialization"): for each unvisited point, collect its
// ε-neighbors; if the local density clears βμ, form a potential
// micro-cluster from the point and its newly-visited neighbors.
func (d *DenStream) seed() {
	betaMu := d.beta * d.mu
	visited := make([]bool, len(d.initialBuffer))

	for i := range d.initialBuffer {
		if visited[i] {
			continue
		}
		neighbors := d.regionQuery(i)
		if float64(len(neighbors)+1) < betaMu {
			continue
		}

		visited[i] = true
		members := []vector.Vector{d.initialBuffer[i]}
		for _, j := range neighbors {
			if !visited[j] {
				visited[j] = true
				members = append(members, d.initialBuffer[j])
			}
		}
		d.potentials = append(d.potentials, newPotentialMicroCluster(members, d.clock))
	}
}

// regionQuery returns the indices of every other buffered point within ε of
// initialBuffer[idx].
func (d *DenStream) regionQuery(idx int) []int {
	var out []int
	for j, p := range d.initialBuffer {
		if j == idx {
			continue
		}
		if vector.EuclideanDistance(d.initialBuffer[idx], p) <= d.epsilon {
			out = append(out, j)
		}
	}
	return out
}

// merge applies the steady-state admission decision for one point (spec
// §4.3 "Merge policy").
func (d *DenStream) merge(point vector.Vector) {
	for i := range d.potentials {
		d.potentials[i].cf = d.potentials[i].cf.decayTo(d.lambda, d.clock)
	}
	if idx, ok := d.nearestPotential(point); ok {
		after := d.potentials[idx].cf.withPoint(point)
		if after.radius() <= d.epsilon {
			d.potentials[idx].cf = after
			return
		}
	}

	for i := range d.outliers {
		d.outliers[i].cf = d.outliers[i].cf.decayTo(d.lambda, d.clock)
	}
	if idx, ok := d.nearestOutlier(point); ok {
		after := d.outliers[idx].cf.withPoint(point)
		if after.radius() <= d.epsilon {
			if after.Weight > d.beta*d.mu {
				promoted := promote(outlierMicroCluster{cf: after, T0: d.outliers[idx].T0})
				d.outliers = append(d.outliers[:idx], d.outliers[idx+1:]...)
				d.potentials = append(d.potentials, promoted)
			} else {
				d.outliers[idx].cf = after
			}
			return
		}
	}

	d.outliers = append(d.outliers, newOutlierMicroCluster(point, d.clock))
}

// nearestPotential returns the index of the potential micro-cluster whose
// center is nearest point.
func (d *DenStream) nearestPotential(point vector.Vector) (int, bool) {
	if len(d.potentials) == 0 {
		return 0, false
	}
	best := 0
	bestDist := vector.EuclideanDistance(d.potentials[0].center(), point)
	for i := 1; i < len(d.potentials); i++ {
		dist := vector.EuclideanDistance(d.potentials[i].center(), point)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best, true
}

func (d *DenStream) nearestOutlier(point vector.Vector) (int, bool) {
	if len(d.outliers) == 0 {
		return 0, false
	}
	best := 0
	bestDist := vector.EuclideanDistance(d.outliers[0].center(), point)
	for i := 1; i < len(d.outliers); i++ {
		dist := vector.EuclideanDistance(d.outliers[i].center(), point)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best, true
}

// prune drops micro-clusters that have decayed below their density floor
// (spec §4.3 "Pruning").
func (d *DenStream) prune() {
	keep := d.potentials[:0]
	for _, p := range d.potentials {
		if p.cf.Weight >= d.beta*d.mu {
			keep = append(keep, p)
		}
	}
	d.potentials = keep

	survivors := d.outliers[:0]
	for _, o := range d.outliers {
		delta := float64(d.clock - o.T0)
		xi := (decayFunction(d.lambda, delta+float64(d.tp)) - 1) / (decayFunction(d.lambda, float64(d.tp)) - 1)
		if o.cf.Weight*xi >= d.beta*d.mu {
			survivors = append(survivors, o)
		}
	}
	d.outliers = survivors
}

// Clusters runs the offline density-reachability traversal (spec §4.3
// "Offline clustering"): cp is directly density-reachable from cq iff
// w(cq) >= μ and dist(center(cp), center(cq)) <= 2ε; clusters are the
// connected components of the symmetric closure of this relation over the
// current potential micro-cluster population.
func (d *DenStream) Clusters() ([]cluster.ClusteringElement, error) {
	n := len(d.potentials)
	if n == 0 {
		return nil, nil
	}

	visited := make([]bool, n)
	var out []cluster.ClusteringElement
	clusterID := 0

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out = append(out, cluster.ClusteringElement{
				Center:  d.potentials[current].center(),
				Radius:  d.potentials[current].radius(),
				Cluster: clusterID,
			})
			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				if d.directlyDensityReachable(current, j) || d.directlyDensityReachable(j, current) {
					visited[j] = true
					stack = append(stack, j)
				}
			}
		}
		clusterID++
	}
	return out, nil
}

// directlyDensityReachable reports whether potentials[cp] is directly
// density-reachable from potentials[cq].
func (d *DenStream) directlyDensityReachable(cp, cq int) bool {
	if d.potentials[cq].cf.Weight < d.mu {
		return false
	}
	return vector.EuclideanDistance(d.potentials[cp].center(), d.potentials[cq].center()) <= 2*d.epsilon
}

// Name identifies this algorithm for reporting (spec §6).
func (d *DenStream) Name() string { return "DenStream" }
