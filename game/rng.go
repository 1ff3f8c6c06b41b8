// Package game - RNG utilities for the evader's goal selection.
//
// Goals:
//   - Determinism: same seed ⇒ identical game runs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere in the library.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; derive independent streams instead.
package game

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for the game loop.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveRNG creates an independent deterministic RNG stream from a base
// RNG and a stream identifier, using a SplitMix64-style avalanche mix to
// eliminate correlations between substreams. If base is nil the default
// seed policy applies.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		// Int63 advances base state; intentional, so reusing a stream id
		// by mistake still yields distinct children.
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with the canonical SplitMix64 finalizer constants.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
