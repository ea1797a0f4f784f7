package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.WriteAgents([]AgentRecord{
		{ID: 1, Name: "minimax", Depth: 6},
		{ID: 2, Name: "random", Seed: 42},
	}))
	require.NoError(t, w.WriteGames([]GameRecord{
		{ID: 1, Agent1: 1, Agent2: 2, Winner: "minimax", Moves: 9, Duration: 120 * time.Millisecond},
	}))
	require.NoError(t, w.WriteMoves([]MoveRecord{
		{Game: 1, Step: 1, Player: "minimax", Column: 3, Nodes: 1234, CacheHits: 56, Cutoffs: 78, Elapsed: 9 * time.Millisecond},
		{Game: 1, Step: 2, Player: "random", Column: 0},
	}))

	t.Run("agents file", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"id", "name", "depth", "seed"}, rows[0])
		require.Equal(t, []string{"1", "minimax", "6", "0"}, rows[1])
	})

	t.Run("games file", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(w.Dir(), "games.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "minimax", "9", "false", "120"}, rows[1])
	})

	t.Run("moves file", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(w.Dir(), "moves.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "minimax", "3", "1234", "56", "78", "9000"}, rows[1])
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
