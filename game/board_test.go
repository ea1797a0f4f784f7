package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridDrop(t *testing.T) {
	t.Run("pieces stack bottom-up", func(t *testing.T) {
		g := NewGrid(7)

		require.NoError(t, g.Drop(3, Red))
		require.NoError(t, g.Drop(3, Yellow))
		require.NoError(t, g.Drop(3, Red))

		require.Equal(t, Red, g.ColorAt(0, 3))
		require.Equal(t, Yellow, g.ColorAt(1, 3))
		require.Equal(t, Red, g.ColorAt(2, 3))
		require.Equal(t, None, g.ColorAt(3, 3))
		require.Equal(t, 3, g.Height(3))
	})

	t.Run("full column rejects drops", func(t *testing.T) {
		g := NewGrid(4)
		for i := 0; i < 4; i++ {
			require.NoError(t, g.Drop(0, Red))
		}

		require.False(t, g.ColumnPlayable(0))
		require.Error(t, g.Drop(0, Yellow))
	})

	t.Run("out of range columns are not playable", func(t *testing.T) {
		g := NewGrid(7)

		require.False(t, g.ColumnPlayable(-1))
		require.False(t, g.ColumnPlayable(7))
		require.Error(t, g.Drop(7, Red))
	})

	t.Run("empty cells cannot be dropped", func(t *testing.T) {
		g := NewGrid(7)

		require.Error(t, g.Drop(0, None))
	})
}

func TestGridHasLegalMove(t *testing.T) {
	g := NewGrid(4)
	require.True(t, g.HasLegalMove())

	colors := []Color{Red, Yellow}
	for col := 0; col < 4; col++ {
		for i := 0; i < 4; i++ {
			require.NoError(t, g.Drop(col, colors[(col+i)%2]))
		}
	}
	require.False(t, g.HasLegalMove())
}

func TestGridKey(t *testing.T) {
	t.Run("same contents share a key", func(t *testing.T) {
		a := NewGrid(7)
		b := NewGrid(7)
		require.NoError(t, a.Drop(2, Red))
		require.NoError(t, b.Drop(2, Red))

		require.Equal(t, a.Key(), b.Key())
	})

	t.Run("different contents differ", func(t *testing.T) {
		a := NewGrid(7)
		b := NewGrid(7)
		require.NoError(t, a.Drop(2, Red))
		require.NoError(t, b.Drop(2, Yellow))

		require.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("key captures position not move order", func(t *testing.T) {
		a := NewGrid(7)
		require.NoError(t, a.Drop(1, Red))
		require.NoError(t, a.Drop(2, Yellow))
		b := NewGrid(7)
		require.NoError(t, b.Drop(2, Yellow))
		require.NoError(t, b.Drop(1, Red))

		require.Equal(t, a.Key(), b.Key())
	})
}

func TestGridClone(t *testing.T) {
	g := NewGrid(7)
	require.NoError(t, g.Drop(3, Red))
	before := g.Key()

	clone := g.Clone()
	require.Equal(t, before, clone.Key())

	require.NoError(t, clone.Drop(0, Yellow))
	require.Equal(t, before, g.Key(), "mutating a clone must not touch the original")
	require.Equal(t, None, g.ColorAt(0, 0))
	require.Equal(t, Yellow, clone.ColorAt(0, 0))
}

func TestParseGrid(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		g, err := ParseGrid([]string{
			".......",
			".......",
			".......",
			".......",
			".......",
			"R......",
			"YYY..RR",
		})
		require.NoError(t, err)

		require.Equal(t, Yellow, g.ColorAt(0, 0))
		require.Equal(t, Red, g.ColorAt(1, 0))
		require.Equal(t, Red, g.ColorAt(0, 5))
		require.Equal(t, 2, g.Height(0))
		require.Equal(t, 0, g.Height(3))
	})

	t.Run("floating pieces are rejected", func(t *testing.T) {
		_, err := ParseGrid([]string{
			"....",
			"R...",
			"....",
			"....",
		})
		require.Error(t, err)
	})

	t.Run("ragged rows are rejected", func(t *testing.T) {
		_, err := ParseGrid([]string{"....", "...", "....", "...."})
		require.Error(t, err)
	})
}
