package rng

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroSeedUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultSeed, New(0).Seed())
	assert.Equal(t, int64(42), New(42).Seed())

	a, b := New(0), New(DefaultSeed)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSource_Deterministic(t *testing.T) {
	a, b := New(7), New(7)
	assert.Equal(t, a.Perm(50), b.Perm(50))
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Between(1, 100), b.Between(1, 100))
	}
}

func TestSource_BetweenInclusive(t *testing.T) {
	s := New(3)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.Between(1, 5)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "both bounds must be reachable")
	assert.Equal(t, 9, s.Between(9, 9))
}

func TestSource_PermIsPermutation(t *testing.T) {
	s := New(11)
	p := s.Perm(100)
	sorted := append([]int(nil), p...)
	sort.Ints(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v)
	}
	assert.Empty(t, s.Perm(0))
	assert.Empty(t, s.Perm(-3))
}

// TestSource_DeriveIndependentOfState pins that derived streams depend only on
// (seed, stream) and that distinct streams diverge.
func TestSource_DeriveIndependentOfState(t *testing.T) {
	a := New(99)
	b := New(99)
	_ = b.Perm(500) // advance b; Derive must not care

	assert.Equal(t, a.Derive(3).Perm(20), b.Derive(3).Perm(20))
	assert.NotEqual(t, a.Derive(1).Seed(), a.Derive(2).Seed())
	assert.NotEqual(t, a.Seed(), a.Derive(0).Seed())
}
