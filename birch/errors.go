package birch

import "errors"

// Sentinel errors for BIRCH construction and insertion.
var (
	// ErrInvalidThreshold indicates a non-positive absorb-gate threshold.
	ErrInvalidThreshold = errors.New("birch: threshold must be > 0")

	// ErrInvalidBranchingFactor indicates a branching factor below 2.
	ErrInvalidBranchingFactor = errors.New("birch: branching_factor must be >= 2")

	// ErrInvalidK indicates a non-positive cluster count for refinement.
	ErrInvalidK = errors.New("birch: k must be >= 1")
)
