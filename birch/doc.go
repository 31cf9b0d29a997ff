// Package birch implements the BIRCH clustering algorithm: a
// height-balanced Clustering-Feature tree with incremental
// absorb/insert/split insertion and an offline k-means refinement pass
// over leaf summaries (spec §4.1).
//
// Nodes live in an arena (tree.nodes), addressed by integer id; parent,
// child, and leaf-chain sibling relations are expressed through ids rather
// than direct pointers, eliminating the cyclic-ownership problem the
// original parent<->child<->sibling graph would otherwise require (spec §9
// "cyclic references ... replaced uniformly with an arena + integer id
// model"). Ids are dense, monotonically allocated by tree.nextID, and never
// reused: a split overwrites the original node's arena slot in place and
// appends one new sibling (plus one new root when the root splits), so arena
// indices always equal node ids and the arena never accumulates dead entries.
package birch
