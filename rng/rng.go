// Package rng provides the seedable uniform integer source used by graph
// generation and the batch driver.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws, hence identical graphs.
//   - Encapsulation: no process-wide generator; every caller holds its own *Source.
//   - Independent streams: Derive splits one seed into per-category / per-worker streams.
//
// Concurrency:
//   - A *Source is NOT goroutine-safe. Derive one stream per goroutine instead of sharing.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Source is a seeded uniform integer generator.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New returns a deterministic Source.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *Source {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the effective seed of s.
func (s *Source) Seed() int64 { return s.seed }

// Intn returns a uniform integer in [0, n). Panics if n <= 0, like math/rand.
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// Between returns a uniform integer in the closed interval [min, max].
// Panics if max < min.
func (s *Source) Between(min, max int) int {
	return min + s.r.Intn(max-min+1)
}

// Perm returns a uniformly random permutation of 0..n-1 built with an
// in-place Fisher–Yates shuffle. n <= 0 yields an empty slice.
//
// Complexity: O(n) time, O(n) space.
func (s *Source) Perm(n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s.Shuffle(p)

	return p
}

// Shuffle permutes a in place (Fisher–Yates).
// Complexity: O(len(a)) time, O(1) extra space.
func (s *Source) Shuffle(a []int) {
	var j int
	for i := len(a) - 1; i > 0; i-- {
		j = s.r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Derive returns an independent deterministic stream identified by stream.
// It depends only on s's seed and stream, never on how many draws s has
// already served, so Derive(k) is reproducible regardless of call order.
//
// Complexity: O(1).
func (s *Source) Derive(stream uint64) *Source {
	return New(deriveSeed(s.seed, stream))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer (Vigna 2014 constants).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		// New would remap 0 to DefaultSeed and collide with the root stream.
		x = 0x9e3779b97f4a7c15
	}

	return int64(x)
}
