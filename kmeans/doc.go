// Package kmeans implements the single offline k-means routine shared by
// BIRCH's global refinement (over leaf CF centroids), CluStream's
// initialization and horizon-based macro-clustering (over buffered points
// or subtracted micro-cluster centroids), and the KMeans-Dynamic sampler's
// bootstrap (spec §9: "Offline k-means is shared ... a single routine
// parameterized by the point producer").
//
// Determinism (spec §8 "Laws"): initialization always takes the first k
// points (no random restarts), and the loop terminates the moment
// successive centroid lists are identical, bounded by Run's maxIterations
// argument (DefaultMaxIterations when it is not positive).
package kmeans
