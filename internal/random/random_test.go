package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRange_Inclusive(t *testing.T) {
	src := New(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := IntRange(src, 10, 14)
		require.GreaterOrEqual(t, v, 10)
		require.LessOrEqual(t, v, 14)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "every value in [10,14] should appear")
}

func TestIntRange_SwappedBounds(t *testing.T) {
	src := New(2)
	for i := 0; i < 100; i++ {
		v := IntRange(src, 5, 1)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
	}
}

func TestFloatRange(t *testing.T) {
	src := New(3)
	for i := 0; i < 1000; i++ {
		v := FloatRange(src, -40, 150)
		require.GreaterOrEqual(t, v, -40.0)
		require.Less(t, v, 150.0)
	}
}

func TestChoice(t *testing.T) {
	src := New(4)
	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Choice(src, items))
	}
	assert.Panics(t, func() { Choice(src, []int{}) })
}

func TestSample_DistinctAndUnmodified(t *testing.T) {
	src := New(5)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int(nil), items...)

	for i := 0; i < 500; i++ {
		s := Sample(src, items, 3)
		require.Len(t, s, 3)
		assert.NotEqual(t, s[0], s[1])
		assert.NotEqual(t, s[0], s[2])
		assert.NotEqual(t, s[1], s[2])
		for _, v := range s {
			assert.Contains(t, items, v)
		}
	}
	assert.Equal(t, orig, items)
}

func TestSample_TooLarge(t *testing.T) {
	assert.Panics(t, func() { Sample(New(6), []int{1}, 2) })
}

func TestPair_OrderVaries(t *testing.T) {
	src := New(7)
	items := []string{"x", "y"}
	firsts := map[string]bool{}
	for i := 0; i < 200; i++ {
		a, b := Pair(src, items)
		require.NotEqual(t, a, b)
		firsts[a] = true
	}
	assert.Len(t, firsts, 2, "both orders should be drawn")
}

func TestNew_Deterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
