package harness

import "errors"

// Sentinel errors for harness I/O and configuration.
var (
	// ErrEmptyCSV indicates an input CSV file contained no data rows.
	ErrEmptyCSV = errors.New("harness: CSV file contains no data rows")

	// ErrUnknownAlgorithm indicates a run configuration named an algorithm
	// this module does not implement.
	ErrUnknownAlgorithm = errors.New("harness: unknown algorithm")

	// ErrStreamUnimplemented indicates the configuration requested the
	// STREAM algorithm, which the source this module was built from never
	// implemented beyond a stub.
	ErrStreamUnimplemented = errors.New("harness: STREAM algorithm is not implemented")

	// ErrUnknownSampler indicates a run configuration named a sampler this
	// module does not implement.
	ErrUnknownSampler = errors.New("harness: unknown sampler")
)
