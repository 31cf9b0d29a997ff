// Package cf implements the ClusteringFeature (CF) — the additive
// sufficient statistic `(n, LS, SS)` shared by BIRCH's CF tree and, in
// spirit, CluStream's and DenStream's (weighted, temporal) micro-clusters
// (spec §3). CF is the one summary every L1 algorithm in this module is
// ultimately built from.
package cf
