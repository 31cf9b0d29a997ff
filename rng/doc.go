// Package rng centralizes deterministic random generation for every
// randomized decision in streamcluster: the samplers' Bernoulli admission
// draws (spec §4.4) and any seed derivation an algorithm needs for testing.
//
// Goals (mirrored from the teacher's tsp package):
//   - Determinism: same seed => identical decisions across runs/platforms.
//   - Encapsulation: one RNG factory, no time-based sources hidden anywhere.
//   - Splittable state: derive independent substreams from a parent seed so
//     a sampler and its wrapped algorithm (or multiple samplers under test)
//     never share mutable *rand.Rand state (spec §9: "pick a generator with
//     splittable state so tests can reproduce sampler decisions").
//
// Concurrency: *rand.Rand is NOT goroutine-safe; the single-threaded,
// cooperative model of this engine (spec §5) means that is never an issue
// in practice, but callers must still not share one Source across samplers.
package rng
