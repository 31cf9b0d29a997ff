package clustream

import "math/bits"

// identitySlot pairs a micro-cluster with its identity list: the id it was
// created with, followed by the ids of micro-clusters merged into it (spec
// §3 "identity list").
type identitySlot struct {
	MC  microCluster
	IDs []int
}

func cloneSlot(s identitySlot) identitySlot {
	ids := make([]int, len(s.IDs))
	copy(ids, s.IDs)
	return identitySlot{
		MC: microCluster{
			N:     s.MC.N,
			LS:    s.MC.LS.Clone(),
			SSVec: s.MC.SSVec.Clone(),
			CF1T:  s.MC.CF1T,
			CF2T:  s.MC.CF2T,
		},
		IDs: ids,
	}
}

// snapshot is an immutable copy of the micro-cluster population at one
// clock tick.
type snapshot struct {
	Timestamp int
	Slots     []identitySlot
}

// snapshotOrder is a ring buffer of capacity 5 holding the most recent
// snapshots filed at one pyramidal order (spec §3 "SnapshotVault").
type snapshotOrder struct {
	slots [5]*snapshot
	next  int
}

func (o *snapshotOrder) insert(s *snapshot) {
	o.slots[o.next] = s
	o.next = (o.next + 1) % 5
}

// snapshotVault is the pyramidal snapshot store: order o holds snapshots
// whose clock value has α-adic valuation exactly o (spec §3). Orders are
// allocated lazily as higher valuations are first observed.
type snapshotVault struct {
	alpha  int
	orders []*snapshotOrder
}

func newSnapshotVault(alpha int) *snapshotVault {
	return &snapshotVault{alpha: alpha}
}

// insert files a snapshot of slots at clock under its α-adic order.
func (v *snapshotVault) insert(clock int, slots []identitySlot) {
	cp := make([]identitySlot, len(slots))
	for i, s := range slots {
		cp[i] = cloneSlot(s)
	}
	s := &snapshot{Timestamp: clock, Slots: cp}

	order := v.findOrder(clock)
	for len(v.orders) <= order {
		v.orders = append(v.orders, nil)
	}
	if v.orders[order] == nil {
		v.orders[order] = &snapshotOrder{}
	}
	v.orders[order].insert(s)
}

// findOrder returns ν_α(clock), the α-adic valuation of clock: the largest
// o such that α^o divides clock. The α=2 case takes the trailing-zero-count
// fast path (matching the source's own special case); general α falls back
// to repeated division.
func (v *snapshotVault) findOrder(clock int) int {
	if clock <= 0 {
		return 0
	}
	if v.alpha == 2 {
		return bits.TrailingZeros(uint(clock))
	}
	o := 0
	t := clock
	for t%v.alpha == 0 {
		t /= v.alpha
		o++
	}
	return o
}

// query returns the snapshot with the smallest timestamp that is still
// >= target ("at or just after", spec §4.2 "offline macro-clustering"),
// scanning every order. Returns false if no such snapshot has been filed.
func (v *snapshotVault) query(target int) (*snapshot, bool) {
	var best *snapshot
	for _, order := range v.orders {
		if order == nil {
			continue
		}
		for _, s := range order.slots {
			if s == nil || s.Timestamp < target {
				continue
			}
			if best == nil || s.Timestamp < best.Timestamp {
				best = s
			}
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}
