// Package random provides the injectable random source used by the problem
// generators, plus the range, choice and sampling helpers built on it.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the generators draw from.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// New returns a deterministic source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSeeded returns a source seeded with the current time.
func NewTimeSeeded() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}

// IntRange returns a uniform int in [lo, hi], both ends inclusive.
func IntRange(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.IntN(hi-lo+1)
}

// FloatRange returns a uniform float64 in [lo, hi).
func FloatRange(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Choice returns a uniformly chosen element of items.
// It panics if items is empty.
func Choice[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("random: Choice from empty slice")
	}
	return items[src.IntN(len(items))]
}

// Sample returns k distinct elements of items in random order, drawn
// without replacement. items is not modified. It panics if k > len(items).
func Sample[T any](src Source, items []T, k int) []T {
	if k < 0 || k > len(items) {
		panic("random: sample larger than population")
	}
	pool := make([]T, len(items))
	copy(pool, items)
	// Partial Fisher-Yates: the first k slots become the sample.
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Pair draws two distinct elements of items as an ordered pair.
func Pair[T any](src Source, items []T) (T, T) {
	s := Sample(src, items, 2)
	return s[0], s[1]
}
