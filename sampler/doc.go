// Package sampler implements clustering-contract wrappers that admit only a
// subset of an incoming stream to an underlying cluster.Algorithm: a fixed-
// odds StaticSampler and an adaptive KMeansDynamicSampler that raises
// admission probability near under-represented regions (spec §4.4).
package sampler
