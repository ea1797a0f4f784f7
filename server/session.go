package server

import (
	"sync"

	"c4/game"
	"c4/searcher"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// session is one live game between a human and the agent. All access
// goes through mu: move handling and websocket broadcasts can race
// otherwise.
type session struct {
	id         string
	mu         sync.Mutex
	board      game.Board
	humanColor game.Color
	agentColor game.Color
	toMove     game.Color
	engine     *searcher.Minimax
	lastAgent  int
	watchers   map[*websocket.Conn]struct{}
}

func newSession(id string, size, depth int, humanColor game.Color) *session {
	return &session{
		id:         id,
		board:      game.NewGrid(size),
		humanColor: humanColor,
		agentColor: humanColor.Opponent(),
		toMove:     game.Red,
		engine:     searcher.NewMinimax(searcher.WithDepth(depth)),
		lastAgent:  game.NoColumn,
		watchers:   make(map[*websocket.Conn]struct{}),
	}
}

// agentReply lets the agent move if the game is open and it is its turn.
// Callers must hold mu.
func (s *session) agentReply() {
	if s.toMove != s.agentColor || game.GameOver(s.board) {
		return
	}
	col, metrics := s.engine.FindMove(s.board, s.agentColor)
	if col == game.NoColumn {
		return
	}
	if err := s.board.Drop(col, s.agentColor); err != nil {
		panic(err) // FindMove only returns playable columns
	}
	s.lastAgent = col
	s.toMove = s.humanColor
	log.Info().
		Str("game", s.id).
		Int("column", col).
		Int("nodes", metrics.Nodes).
		Msg("agent moved")
}

// snapshot renders the session state for clients. Callers must hold mu.
func (s *session) snapshot() GameState {
	size := s.board.Size()
	rows := make([]string, size)
	for r := size - 1; r >= 0; r-- {
		line := make([]byte, size)
		for c := 0; c < size; c++ {
			switch s.board.ColorAt(r, c) {
			case game.Red:
				line[c] = 'R'
			case game.Yellow:
				line[c] = 'Y'
			default:
				line[c] = '.'
			}
		}
		rows[size-1-r] = string(line)
	}

	winner := game.Winner(s.board)
	state := GameState{
		ID:              s.id,
		Size:            size,
		Rows:            rows,
		HumanColor:      s.humanColor.String(),
		NextToMove:      s.toMove.String(),
		LastAgentColumn: s.lastAgent,
		Over:            game.GameOver(s.board),
	}
	if winner != game.None {
		state.Winner = winner.String()
	} else if state.Over {
		state.Draw = true
	}
	return state
}

// broadcast pushes the current state to every websocket watcher,
// dropping connections that fail. Callers must hold mu.
func (s *session) broadcast() {
	state := s.snapshot()
	for conn := range s.watchers {
		if err := conn.WriteJSON(state); err != nil {
			log.Debug().Str("game", s.id).Err(err).Msg("dropping watcher")
			conn.Close()
			delete(s.watchers, conn)
		}
	}
}
