// Package vector defines the fixed-dimension real vector used throughout
// streamcluster, plus the handful of numeric primitives every algorithm
// package builds on: Euclidean distance, dimension validation, and
// drift-safe square roots.
//
// A Vector has no notion of a "stream" or "dimension registry" of its own;
// callers establish dimension consistency (spec: dimension is fixed per
// stream) by comparing against the first point they see, via Validate.
package vector
