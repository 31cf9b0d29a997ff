package clustream

import (
	"math"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/kmeans"
	"github.com/katalvlaran/streamcluster/vector"
)

// Option configures a CluStream instance, following the functional-options
// pattern used throughout this module for multi-parameter constructors.
type Option func(*CluStream)

// WithQ sets the memory size: the maximum number of micro-clusters kept
// after initialization (default 10).
func WithQ(q int) Option { return func(c *CluStream) { c.q = q } }

// WithInitNumber sets the number of points buffered before the initial
// offline k-means bootstrap (default 10).
func WithInitNumber(n int) Option { return func(c *CluStream) { c.initNumber = n } }

// WithMaximumBoundaryFactor sets the multiplier applied to a micro-cluster's
// variance-derived absorption radius (default 2.0).
func WithMaximumBoundaryFactor(f float64) Option {
	return func(c *CluStream) { c.maximumBoundaryFactor = f }
}

// WithThreshold sets the relevance-stamp cutoff below which the
// least-relevant micro-cluster is replaced rather than merged (default 0.5).
func WithThreshold(t float64) Option { return func(c *CluStream) { c.threshold = t } }

// WithLookback sets M, the relevance-stamp look-back window (default 10).
func WithLookback(m int) Option { return func(c *CluStream) { c.lookback = m } }

// WithAlpha sets the snapshot vault's order base (default 2).
func WithAlpha(alpha int) Option { return func(c *CluStream) { c.alpha = alpha } }

// CluStream implements the CluStream algorithm (spec §4.2): an online layer
// of temporal micro-clusters with merge/replace/create admission and a
// pyramidal snapshot vault supporting horizon-based offline macro-clustering.
// CluStream implements cluster.Algorithm.
//
// CluStream is not safe for concurrent use: spec §5 mandates a single
// cooperative insertion path with no overlapping mutation, so (unlike this
// module's graph-library ancestor) no mutex guards this struct.
type CluStream struct {
	q                     int
	initNumber            int
	maximumBoundaryFactor float64
	threshold             float64
	lookback              int
	alpha                 int

	vault *snapshotVault

	slots         []identitySlot
	initiated     bool
	initialBuffer []vector.Vector
	clock         int
	nextID        int
	dim           int
}

// New constructs a CluStream instance with the given options applied over
// the spec-default configuration (Q=10, InitNumber=10,
// MaximumBoundaryFactor=2.0, Threshold=0.5, Lookback=10, Alpha=2).
func New(opts ...Option) (*CluStream, error) {
	c := &CluStream{
		q:                     10,
		initNumber:            10,
		maximumBoundaryFactor: 2.0,
		threshold:             0.5,
		lookback:              10,
		alpha:                 2,
		clock:                 1,
		dim:                   -1,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.q < 1 {
		return nil, ErrInvalidQ
	}
	if c.initNumber < c.q {
		return nil, ErrInvalidInitNumber
	}
	if c.maximumBoundaryFactor <= 0 {
		return nil, ErrInvalidMaximumBoundaryFactor
	}
	if c.alpha < 2 {
		return nil, ErrInvalidAlpha
	}
	c.vault = newSnapshotVault(c.alpha)
	return c, nil
}

// Insert ingests one point (spec §4.2 "Initialization" / "Steady state").
func (c *CluStream) Insert(point vector.Vector) error {
	if c.dim == -1 {
		if err := point.Validate(len(point)); err != nil {
			return err
		}
		c.dim = len(point)
	} else if err := point.Validate(c.dim); err != nil {
		return err
	}

	if !c.initiated {
		c.initialBuffer = append(c.initialBuffer, point.Clone())
		if len(c.initialBuffer) == c.initNumber {
			if err := c.bootstrap(); err != nil {
				return err
			}
		}
		return nil
	}

	c.update(point)
	c.vault.insert(c.clock, c.slots)
	c.clock++
	return nil
}

// bootstrap runs the offline k-means pass over the initialization buffer
// (spec §4.2 "Initialization") and materializes one micro-cluster per
// non-empty group, each timestamped by its position in the buffer.
func (c *CluStream) bootstrap() error {
	res, err := kmeans.Run(c.initialBuffer, c.q, kmeans.DefaultMaxIterations)
	if err != nil {
		return err
	}

	grouped := make(map[int]microCluster)
	order := make([]int, 0, c.q)
	for i, group := range res.Assignments {
		mc := newMicroCluster(c.initialBuffer[i], i)
		if existing, ok := grouped[group]; ok {
			grouped[group] = addMicroCluster(existing, mc)
		} else {
			grouped[group] = mc
			order = append(order, group)
		}
	}

	c.slots = make([]identitySlot, 0, len(order))
	for i, group := range order {
		c.slots = append(c.slots, identitySlot{MC: grouped[group], IDs: []int{i}})
	}
	c.nextID = len(c.slots)
	c.initialBuffer = nil
	c.initiated = true
	return nil
}

// update applies the steady-state admission decision for one point (spec
// §4.2 steps 2-5).
func (c *CluStream) update(point vector.Vector) {
	nearest := c.nearestSlot(point)
	maxBoundary := c.maximalBoundary(nearest)

	if c.slots[nearest].MC.Distance(point) <= maxBoundary {
		c.slots[nearest].MC = addMicroCluster(c.slots[nearest].MC, newMicroCluster(point, c.clock))
		return
	}

	if len(c.slots) < c.q {
		c.slots = append(c.slots, identitySlot{MC: newMicroCluster(point, c.clock), IDs: []int{c.nextID}})
		c.nextID++
		return
	}

	leastIdx, leastRel := 0, c.slots[0].MC.RelevanceStamp(c.lookback)
	for i := 1; i < len(c.slots); i++ {
		rel := c.slots[i].MC.RelevanceStamp(c.lookback)
		if rel < leastRel {
			leastRel = rel
			leastIdx = i
		}
	}

	if leastRel < c.threshold || len(c.slots) < 2 {
		c.slots[leastIdx] = identitySlot{MC: newMicroCluster(point, c.clock), IDs: []int{c.nextID}}
		c.nextID++
		return
	}

	i, j := c.closestPair()
	c.slots[i].MC = addMicroCluster(c.slots[i].MC, c.slots[j].MC)
	c.slots[i].IDs = append(c.slots[i].IDs, c.slots[j].IDs...)
	c.slots[j] = identitySlot{MC: newMicroCluster(point, c.clock), IDs: []int{c.nextID}}
	c.nextID++
}

// nearestSlot returns the index of the slot whose centroid is nearest point.
func (c *CluStream) nearestSlot(point vector.Vector) int {
	best := 0
	bestDist := c.slots[0].MC.Distance(point)
	for i := 1; i < len(c.slots); i++ {
		d := c.slots[i].MC.Distance(point)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// maximalBoundary returns the admission radius for c.slots[nearest]. When
// that cluster is a singleton (variance undefined), it falls back to the
// distance from its centroid to the nearest *other* cluster's centroid —
// excluding the cluster itself, unlike the source routine this was ported
// from, whose equivalent fallback measured every cluster including the one
// being tested and so always found a zero distance. With only one
// micro-cluster in existence there is no "other" to fall back to, so the
// boundary is unbounded (the point is always absorbed).
func (c *CluStream) maximalBoundary(nearest int) float64 {
	if b, ok := c.slots[nearest].MC.MaximalBoundary(c.maximumBoundaryFactor); ok {
		return b
	}

	if len(c.slots) == 1 {
		return math.Inf(1)
	}

	centroid := c.slots[nearest].MC.Centroid()
	best := math.Inf(1)
	for i, s := range c.slots {
		if i == nearest {
			continue
		}
		d := s.MC.Distance(centroid)
		if d < best {
			best = d
		}
	}
	return best
}

// closestPair returns the indices (i, j), i != j, of the two micro-clusters
// with the smallest centroid distance, ties broken by first occurrence in
// iteration order (outer index ascending, then inner index ascending).
func (c *CluStream) closestPair() (int, int) {
	bestI, bestJ := 0, 1
	bestDist := c.slots[0].MC.Distance(c.slots[1].MC.Centroid())
	for i := 0; i < len(c.slots); i++ {
		for j := i + 1; j < len(c.slots); j++ {
			d := c.slots[i].MC.Distance(c.slots[j].MC.Centroid())
			if d < bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

// Clusters returns the current micro-cluster population (spec §4.2 "Public
// contract"): one element per micro-cluster, labeled by the first id in its
// identity list (the id the slot's micro-cluster was created with).
func (c *CluStream) Clusters() ([]cluster.ClusteringElement, error) {
	if !c.initiated {
		return nil, nil
	}
	out := make([]cluster.ClusteringElement, len(c.slots))
	for i, s := range c.slots {
		out[i] = cluster.ClusteringElement{
			Center:  s.MC.Centroid(),
			Radius:  microClusterRadius(s.MC),
			Cluster: s.IDs[0],
		}
	}
	return out, nil
}

// Name identifies this algorithm for reporting (spec §6).
func (c *CluStream) Name() string { return "CluStream" }

// microClusterRadius reports the unscaled geometric radius
// sqrt(mean_i(SSVec_i/n - centroid_i^2)) of a micro-cluster, zero for a
// singleton.
func microClusterRadius(m microCluster) float64 {
	if m.N <= 1 {
		return 0
	}
	n := float64(m.N)
	centroid := m.Centroid()
	var sum float64
	for i := range m.SSVec {
		sum += m.SSVec[i]/n - centroid[i]*centroid[i]
	}
	mean := sum / float64(len(m.SSVec))
	return vector.ClampRadius(mean)
}

// MacroClusters reconstructs k macro-clusters describing only the points
// observed in the last horizon clock ticks (spec §4.2 "Offline
// macro-clustering"): the snapshot at or just after now-horizon is
// subtracted (per matching identity) from the current micro-clusters to
// isolate the recent increment, and k-means groups the resulting centroids.
// This fully implements the routine the source left as an unfinished stub.
func (c *CluStream) MacroClusters(horizon, k int) ([]cluster.ClusteringElement, error) {
	if horizon < 1 {
		return nil, ErrInvalidHorizon
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	if !c.initiated || len(c.slots) == 0 {
		return nil, nil
	}

	target := c.clock - horizon
	snap, ok := c.vault.query(target)

	deltas := make([]microCluster, 0, len(c.slots))
	for _, s := range c.slots {
		if !ok {
			deltas = append(deltas, s.MC)
			continue
		}
		if base, found := matchSlot(snap.Slots, s.IDs); found {
			if s.MC.N <= base.MC.N {
				continue // nothing new since the snapshot
			}
			deltas = append(deltas, subtractMicroCluster(s.MC, base.MC))
		} else {
			deltas = append(deltas, s.MC) // created after the snapshot: entirely recent
		}
	}
	if len(deltas) == 0 {
		return nil, nil
	}

	centroids := make([]vector.Vector, len(deltas))
	for i, d := range deltas {
		centroids[i] = d.Centroid()
	}

	effectiveK := k
	if effectiveK > len(centroids) {
		effectiveK = len(centroids)
	}
	res, err := kmeans.Run(centroids, effectiveK, kmeans.DefaultMaxIterations)
	if err != nil {
		return nil, err
	}

	out := make([]cluster.ClusteringElement, len(deltas))
	for i, d := range deltas {
		out[i] = cluster.ClusteringElement{
			Center:  centroids[i],
			Radius:  microClusterRadius(d),
			Cluster: res.Assignments[i],
		}
	}
	return out, nil
}

// matchSlot finds the snapshot slot sharing any id with ids, returning its
// micro-cluster.
func matchSlot(slots []identitySlot, ids []int) (identitySlot, bool) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, s := range slots {
		for _, id := range s.IDs {
			if want[id] {
				return s, true
			}
		}
	}
	return identitySlot{}, false
}

// subtractMicroCluster returns a-b component-wise. Used to isolate the
// points absorbed since a snapshot was taken.
func subtractMicroCluster(a, b microCluster) microCluster {
	return microCluster{
		N:     a.N - b.N,
		LS:    vector.Sub(a.LS, b.LS),
		SSVec: vector.Sub(a.SSVec, b.SSVec),
		CF1T:  a.CF1T - b.CF1T,
		CF2T:  a.CF2T - b.CF2T,
	}
}
