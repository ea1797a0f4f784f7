package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheProbe(t *testing.T) {
	key := cacheKey{board: "RY./", depth: 3}

	t.Run("miss on unknown key", func(t *testing.T) {
		c := newTranspositionCache()
		_, ok := c.probe(key, -100, 100)
		require.False(t, ok)
		require.Equal(t, 0, c.hits)
	})

	t.Run("exact entries hit in any window", func(t *testing.T) {
		c := newTranspositionCache()
		c.storeExact(key, 42)

		got, ok := c.probe(key, -100, 100)
		require.True(t, ok)
		require.Equal(t, 42, got)

		got, ok = c.probe(key, 50, 60)
		require.True(t, ok)
		require.Equal(t, 42, got)
		require.Equal(t, 2, c.hits)
	})

	t.Run("lower bounds only prove cutoffs at or above beta", func(t *testing.T) {
		c := newTranspositionCache()
		// Searched with window (0, 10), value 10 hit the cutoff.
		c.store(key, 10, 0, 10)

		_, ok := c.probe(key, -100, 100)
		require.False(t, ok, "a pruned bound is not the exact value")

		got, ok := c.probe(key, -100, 8)
		require.True(t, ok, "value >= beta still proves a cutoff")
		require.Equal(t, 10, got)
	})

	t.Run("upper bounds only hit at or below alpha", func(t *testing.T) {
		c := newTranspositionCache()
		// Searched with window (5, 100), value 3 never reached alpha.
		c.store(key, 3, 5, 100)

		_, ok := c.probe(key, -100, 100)
		require.False(t, ok)

		got, ok := c.probe(key, 4, 100)
		require.True(t, ok, "value <= alpha still proves a fail-low")
		require.Equal(t, 3, got)
	})

	t.Run("in-window stores are exact", func(t *testing.T) {
		c := newTranspositionCache()
		c.store(key, 7, 0, 10)

		got, ok := c.probe(key, -100, 100)
		require.True(t, ok)
		require.Equal(t, 7, got)
	})
}

func TestCacheKeyIncludesDepth(t *testing.T) {
	c := newTranspositionCache()
	c.storeExact(cacheKey{board: "RY./", depth: 2}, 5)

	_, ok := c.probe(cacheKey{board: "RY./", depth: 3}, -100, 100)
	require.False(t, ok, "the same board at a different depth is a different entry")
}
