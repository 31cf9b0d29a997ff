// Package clustream implements CluStream: an online layer maintaining a
// bounded population of temporal micro-clusters, with a pyramidal snapshot
// vault preserving historical states at geometrically spaced time scales
// for horizon-based offline macro-clustering (spec §4.2).
package clustream
