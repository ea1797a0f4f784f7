package engine

import (
	"c4/game"
	"c4/player"
	"c4/searcher"

	"github.com/rs/zerolog/log"
)

// MoveRecord describes one applied move and what its decision cost.
type MoveRecord struct {
	Step    int
	Player  string
	Color   game.Color
	Column  int
	Metrics searcher.SearchMetrics
}

// Result is the outcome of one finished game. Winner is game.None on a
// draw.
type Result struct {
	Winner     game.Color
	WinnerName string
	Draw       bool
	Forfeit    bool
	Moves      []MoveRecord
}

// LocalEngine referees a single game between two players on one board.
type LocalEngine struct {
	board   game.Board
	players map[game.Color]player.Player
}

// NewLocalEngine sets up a game on an empty size x size board. Red moves
// first.
func NewLocalEngine(red, yellow player.Player, size int) *LocalEngine {
	if red == nil || yellow == nil {
		panic("need two players")
	}
	return &LocalEngine{
		board: game.NewGrid(size),
		players: map[game.Color]player.Player{
			game.Red:    red,
			game.Yellow: yellow,
		},
	}
}

// Board exposes the live board, for inspection after Run.
func (e *LocalEngine) Board() game.Board {
	return e.board
}

// Run plays the game to completion: players alternate starting with Red,
// every returned column is validated before it is applied, and the game
// ends on a connected four, a full board, or an illegal answer (which
// forfeits).
func (e *LocalEngine) Run() Result {
	result := Result{}
	toMove := game.Red
	maxMoves := e.board.Size() * e.board.Size()

	for step := 1; step <= maxMoves; step++ {
		if !e.board.HasLegalMove() {
			break
		}
		p := e.players[toMove]
		col, metrics := p.ChooseMove(e.board, toMove)
		if col == game.NoColumn || !e.board.ColumnPlayable(col) {
			log.Warn().
				Str("player", p.Name()).
				Int("column", col).
				Msg("illegal column, forfeiting the game")
			result.Winner = toMove.Opponent()
			result.WinnerName = e.players[result.Winner].Name()
			result.Forfeit = true
			return result
		}
		if err := e.board.Drop(col, toMove); err != nil {
			panic(err) // validated above
		}
		result.Moves = append(result.Moves, MoveRecord{
			Step:    step,
			Player:  p.Name(),
			Color:   toMove,
			Column:  col,
			Metrics: metrics,
		})
		log.Debug().
			Int("step", step).
			Str("player", p.Name()).
			Int("column", col).
			Msg("move applied")

		if game.HasConnectedFour(e.board, toMove) {
			result.Winner = toMove
			result.WinnerName = p.Name()
			return result
		}
		toMove = toMove.Opponent()
	}

	result.Draw = true
	return result
}
