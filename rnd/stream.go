// Package rnd - deterministic, splittable random streams.
//
// This file centralizes random generation for all operators in the module.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single stream type; no time-based sources hidden anywhere.
//   - Independence: Split yields decorrelated child streams for parallel workers.
//   - Performance: O(1) draws; no hidden allocations in hot paths.
package rnd

import "math/rand"

// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Stream is a deterministic random source. It wraps math/rand with a seed
// policy and a SplitMix64-based derivation scheme for child streams.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	r *rand.Rand
	// streams counts Split calls so repeated splits derive distinct children.
	streams uint64
}

// New returns a deterministic Stream.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *Stream {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return &Stream{r: rand.New(rand.NewSource(s))}
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small changes in inputs produce large, well-distributed
//     output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Split derives an independent child Stream.
//
// The parent advances by one draw, which is intentional: it keeps children
// distinct even if callers split repeatedly from the same state. Children are
// deterministic functions of the parent's seed and split order.
//
// Usage: call during setup (not in hot loops) to create per-worker streams.
//
// Complexity: O(1).
func (s *Stream) Split() *Stream {
	s.streams++
	return &Stream{r: rand.New(rand.NewSource(deriveSeed(s.r.Int63(), s.streams)))}
}

// Intn returns a uniform int in [0,n). Requires n > 0.
func (s *Stream) Intn(n int) int { return s.r.Intn(n) }

// Float64 returns a uniform float64 in [0,1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// NormFloat64 returns a standard normal deviate.
func (s *Stream) NormFloat64() float64 { return s.r.NormFloat64() }

// Shuffle performs an in-place Fisher-Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func (s *Stream) Shuffle(a []int) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}
	var (
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = s.r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
