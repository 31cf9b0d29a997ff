// Package cluster defines the capability set every clustering strategy and
// sampler in streamcluster implements (spec §6, §9 "polymorphism over
// clustering strategies is expressed as a small capability set"):
//
//	Algorithm interface { Insert, Clusters, Name }
//
// BIRCH, CluStream, and DenStream implement it directly; the sampler
// package composes over it rather than inheriting from it. This package
// also defines ClusteringElement, the uniform output record, and the SSQ
// quality metric external harnesses compute from it.
package cluster
