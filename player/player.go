package player

import (
	"c4/game"
	"c4/searcher"

	"golang.org/x/exp/rand"
)

// Player is the contract a referee drives: a static identity and a
// single decision entry point. ChooseMove must not mutate the board it
// is handed and returns game.NoColumn when no column is playable.
type Player interface {
	Name() string
	ChooseMove(b game.Board, color game.Color) (int, searcher.SearchMetrics)
}

// MinimaxPlayer answers with the minimax engine's choice.
type MinimaxPlayer struct {
	name   string
	engine *searcher.Minimax
}

func NewMinimaxPlayer(name string, engine *searcher.Minimax) *MinimaxPlayer {
	if engine == nil {
		panic("minimax player needs an engine")
	}
	return &MinimaxPlayer{name: name, engine: engine}
}

func (p *MinimaxPlayer) Name() string {
	return p.name
}

func (p *MinimaxPlayer) ChooseMove(b game.Board, color game.Color) (int, searcher.SearchMetrics) {
	return p.engine.FindMove(b, color)
}

// RandomPlayer drops into a uniformly random legal column. Baseline
// opponent for experiments.
type RandomPlayer struct {
	name string
	rng  *rand.Rand
}

func NewRandomPlayer(name string, seed uint64) *RandomPlayer {
	return &RandomPlayer{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) ChooseMove(b game.Board, _ game.Color) (int, searcher.SearchMetrics) {
	var legal []int
	for col := 0; col < b.Size(); col++ {
		if b.ColumnPlayable(col) {
			legal = append(legal, col)
		}
	}
	if len(legal) == 0 {
		return game.NoColumn, searcher.SearchMetrics{}
	}
	return legal[p.rng.Intn(len(legal))], searcher.SearchMetrics{}
}
