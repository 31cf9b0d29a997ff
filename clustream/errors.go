package clustream

import "errors"

// Sentinel errors for CluStream construction and queries.
var (
	// ErrInvalidQ indicates a non-positive memory size Q.
	ErrInvalidQ = errors.New("clustream: Q must be >= 1")

	// ErrInvalidInitNumber indicates the initialization buffer size is
	// smaller than Q: the bootstrap k-means pass requires at least Q points
	// to seed Q clusters.
	ErrInvalidInitNumber = errors.New("clustream: INIT_NUMBER must be >= Q")

	// ErrInvalidMaximumBoundaryFactor indicates a non-positive boundary factor.
	ErrInvalidMaximumBoundaryFactor = errors.New("clustream: MAXIMUM_BOUNDARY_FACTOR must be > 0")

	// ErrInvalidAlpha indicates a vault order base below 2.
	ErrInvalidAlpha = errors.New("clustream: alpha must be >= 2")

	// ErrInvalidK indicates a non-positive macro-cluster count.
	ErrInvalidK = errors.New("clustream: k must be >= 1")

	// ErrInvalidHorizon indicates a non-positive horizon for macro-clustering.
	ErrInvalidHorizon = errors.New("clustream: horizon must be >= 1")
)
