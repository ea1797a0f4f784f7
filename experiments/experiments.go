package experiments

import (
	"fmt"
	"time"

	"c4/engine"
	"c4/experiments/metrics"
	"c4/game"
	"c4/player"
	"c4/searcher"

	"github.com/rs/zerolog/log"
)

// AgentConfig describes one side of a matchup. Depth 0 selects the
// random baseline player instead of the minimax engine.
type AgentConfig struct {
	ID    int
	Name  string
	Depth int
	Seed  uint64
}

func (c AgentConfig) build() player.Player {
	if c.Depth <= 0 {
		return player.NewRandomPlayer(c.Name, c.Seed)
	}
	return player.NewMinimaxPlayer(c.Name, searcher.NewMinimax(searcher.WithDepth(c.Depth)))
}

// Summary tallies a finished matchup from agent1's perspective.
type Summary struct {
	Games    int
	Wins1    int
	Wins2    int
	Draws    int
	Duration time.Duration
}

// Matchup plays two agent configs against each other.
type Matchup struct {
	Agent1    AgentConfig
	Agent2    AgentConfig
	Games     int
	BoardSize int
}

// Run plays the configured number of games, alternating which agent
// moves first, and persists agent, game and move records through the
// writer. A nil writer skips persistence.
func (m Matchup) Run(w *metrics.Writer) (Summary, error) {
	if m.Games <= 0 {
		return Summary{}, fmt.Errorf("matchup needs a positive game count, got %d", m.Games)
	}
	size := m.BoardSize
	if size == 0 {
		size = 7
	}

	summary := Summary{Games: m.Games}
	gameRecords := make([]metrics.GameRecord, 0, m.Games)
	var moveRecords []metrics.MoveRecord
	start := time.Now()

	for i := 0; i < m.Games; i++ {
		first, second := m.Agent1, m.Agent2
		if i%2 == 1 { // Alternate who moves first
			first, second = second, first
		}

		gameStart := time.Now()
		e := engine.NewLocalEngine(first.build(), second.build(), size)
		result := e.Run()

		switch {
		case result.Draw:
			summary.Draws++
		case result.WinnerName == m.Agent1.Name:
			summary.Wins1++
		default:
			summary.Wins2++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:       i + 1,
			Agent1:   first.ID,
			Agent2:   second.ID,
			Winner:   winnerLabel(result),
			Moves:    len(result.Moves),
			Forfeit:  result.Forfeit,
			Duration: time.Since(gameStart),
		})
		for _, move := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:      i + 1,
				Step:      move.Step,
				Player:    move.Player,
				Column:    move.Column,
				Nodes:     move.Metrics.Nodes,
				CacheHits: move.Metrics.CacheHits,
				Cutoffs:   move.Metrics.Cutoffs,
				Elapsed:   move.Metrics.Elapsed,
			})
		}
		log.Info().
			Int("game", i+1).
			Str("winner", winnerLabel(result)).
			Int("moves", len(result.Moves)).
			Msg("game over")
	}
	summary.Duration = time.Since(start)

	if w != nil {
		agents := []metrics.AgentRecord{
			{ID: m.Agent1.ID, Name: m.Agent1.Name, Depth: m.Agent1.Depth, Seed: m.Agent1.Seed},
			{ID: m.Agent2.ID, Name: m.Agent2.Name, Depth: m.Agent2.Depth, Seed: m.Agent2.Seed},
		}
		if err := w.WriteAgents(agents); err != nil {
			return summary, err
		}
		if err := w.WriteGames(gameRecords); err != nil {
			return summary, err
		}
		if err := w.WriteMoves(moveRecords); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func winnerLabel(result engine.Result) string {
	if result.Winner == game.None {
		return "draw"
	}
	return result.WinnerName
}
