package birch

import "github.com/katalvlaran/streamcluster/cf"

// noParent marks the absence of a parent id, and noSibling the absence of a
// prev/next leaf-chain neighbor. Go has no Option<usize>; -1 is the
// equivalent sentinel for this arena's dense, non-negative id space.
const noParent = -1
const noSibling = -1

// childEntry pairs a non-leaf's summarizing CF with the id of the child
// subtree it summarizes.
type childEntry struct {
	CF      cf.CF
	ChildID int
}

// node is the tagged CFNode variant (spec §3): either a Leaf (holding
// ClusteringFeatures directly, linked to its siblings for the doubly-linked
// leaf chain) or a NonLeaf (holding (CF, childID) pairs). leaf discriminates
// the tag; the fields relevant to the other variant are simply unused,
// mirroring the teacher's tagged-union-over-struct idiom used for CFNode in
// the design notes.
type node struct {
	id       int
	parentID int
	leaf     bool

	// Leaf-only fields.
	features []cf.CF
	prev     int
	next     int

	// NonLeaf-only fields.
	entries []childEntry
}

// sum returns the CF (leaf) or total CF (non-leaf) represented by this
// node: the sum of its features, or the sum of its entries' CFs. An empty
// leaf is a programmer error (spec §7) and must never occur — no split
// path in this package produces one.
func (n *node) sum() (cf.CF, error) {
	if n.leaf {
		return cf.Sum(n.features)
	}
	cfs := make([]cf.CF, len(n.entries))
	for i, e := range n.entries {
		cfs[i] = e.CF
	}
	return cf.Sum(cfs)
}
