package birch

import (
	"github.com/katalvlaran/streamcluster/cf"
	"github.com/katalvlaran/streamcluster/vector"
)

// tree is the CF-tree arena (spec §3): nodes are addressed by integer id,
// and the invariant arena[i].id == i holds for the lifetime of the tree —
// a split always overwrites the split node's slot in place and appends
// one new sibling (plus one new root when the root itself splits), so the
// arena never holds stale entries and a simple "is this node a leaf" scan
// recovers every live leaf.
type tree struct {
	nodes           []*node
	rootID          int
	nextID          int
	threshold       float64
	branchingFactor int
	dim             int // -1 until the first point establishes it
}

func newTree(threshold float64, branchingFactor int) *tree {
	return &tree{
		rootID:          noParent,
		threshold:       threshold,
		branchingFactor: branchingFactor,
		dim:             -1,
	}
}

// alloc appends n to the arena, assigning it the next id and returning it.
func (t *tree) alloc(n *node) int {
	n.id = t.nextID
	t.nodes = append(t.nodes, n)
	t.nextID++
	return n.id
}

func (t *tree) insert(point vector.Vector) error {
	if t.dim == -1 {
		if err := point.Validate(len(point)); err != nil {
			return err
		}
		t.dim = len(point)
	} else if err := point.Validate(t.dim); err != nil {
		return err
	}

	entry := cf.New(point)

	if t.rootID == noParent {
		leaf := &node{leaf: true, parentID: noParent, prev: noSibling, next: noSibling, features: []cf.CF{entry}}
		t.rootID = t.alloc(leaf)
		return nil
	}

	current := t.rootID
	for {
		n := t.nodes[current]
		if n.leaf {
			idx := closestFeature(n.features, entry)
			merged := cf.Add(n.features[idx], entry)
			switch {
			case merged.Radius() < t.threshold:
				n.features[idx] = merged
				t.refreshFrom(current)
			case len(n.features) < t.branchingFactor:
				n.features = append(n.features, entry)
				t.refreshFrom(current)
			default:
				n.features = append(n.features, entry)
				t.split(current)
			}
			return nil
		}
		current = closestChild(n.entries, entry)
	}
}

// closestFeature returns the index of the feature whose centroid is
// nearest entry's, breaking ties by first occurrence (spec §4.1).
func closestFeature(features []cf.CF, entry cf.CF) int {
	best := 0
	bestDist := features[0].Distance(entry)
	for i := 1; i < len(features); i++ {
		d := features[i].Distance(entry)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// closestChild returns the child id of the entry whose CF centroid is
// nearest point's, breaking ties by first occurrence.
func closestChild(entries []childEntry, point cf.CF) int {
	best := 0
	bestDist := entries[0].CF.Distance(point)
	for i := 1; i < len(entries); i++ {
		d := entries[i].CF.Distance(point)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return entries[best].ChildID
}

// refreshFrom walks from nodeID to the root, updating each ancestor's
// stored CF for the current child to that child's freshly recomputed sum
// (spec §4.1 "Refresh after absorb/add"). O(depth).
func (t *tree) refreshFrom(nodeID int) {
	current := t.nodes[nodeID]
	for current.parentID != noParent {
		sum, err := current.sum()
		if err != nil {
			// An empty leaf/non-leaf can never occur on a live path; if it
			// somehow did, there is nothing safe to propagate upward.
			return
		}
		parent := t.nodes[current.parentID]
		for i := range parent.entries {
			if parent.entries[i].ChildID == current.id {
				parent.entries[i].CF = sum
				break
			}
		}
		current = parent
	}
}

// split applies the leaf or non-leaf split procedure to the node at
// nodeID (spec §4.1 "Leaf split" / "Non-leaf split"). The caller has
// already appended the triggering entry, so the node holds branchingFactor+1
// entries at the time of the call: pick the two farthest-apart entries as
// seeds, partition the rest (including the triggering entry) by nearest
// seed, keep one half in the original id and materialize the other half as
// a new sibling, then patch the parent (or synthesize a new root).
func (t *tree) split(nodeID int) {
	n := t.nodes[nodeID]
	if n.leaf {
		t.splitLeaf(n)
	} else {
		t.splitNonLeaf(n)
	}
}

func (t *tree) splitLeaf(n *node) {
	seedA, seedB := pickSeedsCF(n.features)
	groupA, groupB := partitionCF(n.features, seedA, seedB)
	groupA = append(groupA, n.features[seedA])
	groupB = append(groupB, n.features[seedB])

	bID := t.nextID
	newA := &node{id: n.id, leaf: true, parentID: n.parentID, features: groupA, prev: n.prev, next: bID}
	newB := &node{leaf: true, parentID: n.parentID, features: groupB, prev: n.id, next: n.next}

	t.nodes[n.id] = newA
	t.alloc(newB) // bID == newB.id, confirmed by alloc's sequential assignment

	if n.next != noSibling {
		t.nodes[n.next].prev = bID
	}

	t.attachSplitSiblings(newA, newB)
}

func (t *tree) splitNonLeaf(n *node) {
	seedA, seedB := pickSeedsEntries(n.entries)
	groupA, groupB := partitionEntries(n.entries, seedA, seedB)
	groupA = append(groupA, n.entries[seedA])
	groupB = append(groupB, n.entries[seedB])

	bID := t.nextID
	newA := &node{id: n.id, leaf: false, parentID: n.parentID, entries: groupA}
	newB := &node{leaf: false, parentID: n.parentID, entries: groupB}

	t.nodes[n.id] = newA
	t.alloc(newB)

	for _, e := range groupB {
		t.nodes[e.ChildID].parentID = bID
	}

	t.attachSplitSiblings(newA, newB)
}

// attachSplitSiblings wires newA/newB into their parent (appending the new
// sibling entry and recursing if the parent overflows) or, if the split
// node was the root, synthesizes a fresh non-leaf root over both halves.
func (t *tree) attachSplitSiblings(newA, newB *node) {
	sumA, errA := newA.sum()
	sumB, errB := newB.sum()
	if errA != nil || errB != nil {
		return
	}

	if newA.parentID == noParent {
		rootID := t.nextID
		newA.parentID = rootID
		newB.parentID = rootID
		root := &node{leaf: false, parentID: noParent, entries: []childEntry{{CF: sumA, ChildID: newA.id}, {CF: sumB, ChildID: newB.id}}}
		t.alloc(root)
		t.rootID = root.id
		return
	}

	parent := t.nodes[newA.parentID]
	parent.entries = append(parent.entries, childEntry{CF: sumB, ChildID: newB.id})
	for i := range parent.entries {
		if parent.entries[i].ChildID == newA.id {
			parent.entries[i].CF = sumA
			break
		}
	}
	// The parent splits only once the appended sibling entry takes it past
	// branching_factor entries; otherwise its own ancestors are refreshed so
	// every stored CF still covers the point that triggered the split.
	if len(parent.entries) > t.branchingFactor {
		t.split(parent.id)
	} else {
		t.refreshFrom(parent.id)
	}
}

// pickSeedsCF returns the indices of the pair of CFs with maximum pairwise
// distance, ties broken by first occurrence.
func pickSeedsCF(features []cf.CF) (int, int) {
	bestI, bestJ := 0, 1
	bestDist := features[0].Distance(features[1])
	for i := 0; i < len(features); i++ {
		for j := i + 1; j < len(features); j++ {
			d := features[i].Distance(features[j])
			if d > bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

func pickSeedsEntries(entries []childEntry) (int, int) {
	bestI, bestJ := 0, 1
	bestDist := entries[0].CF.Distance(entries[1].CF)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			d := entries[i].CF.Distance(entries[j].CF)
			if d > bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

// partitionCF assigns every feature other than the two seeds to whichever
// seed's centroid it is strictly closer to; exact ties fall to group B.
func partitionCF(features []cf.CF, seedA, seedB int) ([]cf.CF, []cf.CF) {
	var a, b []cf.CF
	sa, sb := features[seedA], features[seedB]
	for i, f := range features {
		if i == seedA || i == seedB {
			continue
		}
		if sa.Distance(f) < sb.Distance(f) {
			a = append(a, f)
		} else {
			b = append(b, f)
		}
	}
	return a, b
}

func partitionEntries(entries []childEntry, seedA, seedB int) ([]childEntry, []childEntry) {
	var a, b []childEntry
	sa, sb := entries[seedA].CF, entries[seedB].CF
	for i, e := range entries {
		if i == seedA || i == seedB {
			continue
		}
		if sa.Distance(e.CF) < sb.Distance(e.CF) {
			a = append(a, e)
		} else {
			b = append(b, e)
		}
	}
	return a, b
}
