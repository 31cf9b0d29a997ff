package sampler

import "errors"

// Sentinel errors for sampler construction.
var (
	// ErrNilAlgorithm indicates a sampler was constructed without a wrapped
	// cluster.Algorithm to forward admitted points to.
	ErrNilAlgorithm = errors.New("sampler: wrapped algorithm must not be nil")

	// ErrInvalidOdds indicates a StaticSampler's fixed admission odds fall
	// outside [0, 1].
	ErrInvalidOdds = errors.New("sampler: odds must be in [0, 1]")

	// ErrInvalidDelta indicates a non-positive bootstrap buffer size.
	ErrInvalidDelta = errors.New("sampler: DELTA must be >= 1")

	// ErrInvalidK indicates a non-positive reference-cluster count.
	ErrInvalidK = errors.New("sampler: k must be >= 1")
)
