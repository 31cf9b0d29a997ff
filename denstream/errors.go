package denstream

import "errors"

// Sentinel errors for DenStream construction.
var (
	// ErrInvalidLambda indicates a non-positive decay rate.
	ErrInvalidLambda = errors.New("denstream: lambda must be > 0")

	// ErrInvalidMu indicates a non-positive weight threshold.
	ErrInvalidMu = errors.New("denstream: mu must be > 0")

	// ErrInvalidEpsilon indicates a non-positive neighborhood radius.
	ErrInvalidEpsilon = errors.New("denstream: epsilon must be > 0")

	// ErrInvalidBeta indicates beta outside (0, 1).
	ErrInvalidBeta = errors.New("denstream: beta must be in (0, 1)")

	// ErrInvalidInitN indicates a non-positive initialization buffer size.
	ErrInvalidInitN = errors.New("denstream: INIT_N must be >= 1")

	// ErrInvalidV indicates a non-positive clock-batching interval.
	ErrInvalidV = errors.New("denstream: V must be >= 1")
)
