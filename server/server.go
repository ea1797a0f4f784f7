package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"c4/game"
	"c4/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// GameState is the wire representation of a session, also pushed over
// the websocket channel. Rows are given top row first.
type GameState struct {
	ID              string   `json:"id"`
	Size            int      `json:"size"`
	Rows            []string `json:"rows"`
	HumanColor      string   `json:"humanColor"`
	NextToMove      string   `json:"nextToMove"`
	LastAgentColumn int      `json:"lastAgentColumn"`
	Winner          string   `json:"winner,omitempty"`
	Draw            bool     `json:"draw"`
	Over            bool     `json:"over"`
}

type createRequest struct {
	Size       int    `json:"size"`
	Depth      int    `json:"depth"`
	HumanColor string `json:"humanColor"`
}

type moveRequest struct {
	Column int `json:"column"`
}

// Server hosts play-against-the-agent sessions. Sessions live in memory
// only and disappear with the process.
type Server struct {
	defaultSize  int
	defaultDepth int

	mu       sync.RWMutex
	sessions map[string]*session
	upgrader websocket.Upgrader
}

func New(defaultSize, defaultDepth int) *Server {
	if defaultSize < game.ConnectLength {
		defaultSize = 7
	}
	if defaultDepth <= 0 {
		defaultDepth = searcher.DefaultDepth
	}
	return &Server{
		defaultSize:  defaultSize,
		defaultDepth: defaultDepth,
		sessions:     make(map[string]*session),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router wires the HTTP surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/games", s.handleCreate)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", s.handleGet)
		r.Post("/moves", s.handleMove)
		r.Get("/ws", s.handleWatch)
	})
	return r
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Msg("server listening")
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	req := createRequest{Size: s.defaultSize, Depth: s.defaultDepth, HumanColor: game.Red.String()}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	humanColor, err := parseColor(req.HumanColor)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Size < game.ConnectLength {
		httpError(w, http.StatusBadRequest, fmt.Sprintf("board size %d is too small", req.Size))
		return
	}
	if req.Depth <= 0 {
		httpError(w, http.StatusBadRequest, fmt.Sprintf("depth %d is not positive", req.Depth))
		return
	}

	sess := newSession(uuid.NewString(), req.Size, req.Depth, humanColor)
	sess.mu.Lock()
	sess.agentReply() // Agent opens when the human picked Yellow
	state := sess.snapshot()
	sess.mu.Unlock()

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Info().Str("game", sess.id).Int("size", req.Size).Int("depth", req.Depth).Msg("game created")
	writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		httpError(w, http.StatusNotFound, "no such game")
		return
	}
	sess.mu.Lock()
	state := sess.snapshot()
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		httpError(w, http.StatusNotFound, "no such game")
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if game.GameOver(sess.board) {
		httpError(w, http.StatusConflict, "game is over")
		return
	}
	if sess.toMove != sess.humanColor {
		httpError(w, http.StatusConflict, "not your turn")
		return
	}
	if !sess.board.ColumnPlayable(req.Column) {
		httpError(w, http.StatusBadRequest, fmt.Sprintf("column %d is not playable", req.Column))
		return
	}
	if err := sess.board.Drop(req.Column, sess.humanColor); err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess.toMove = sess.agentColor
	sess.agentReply()
	sess.broadcast()
	writeJSON(w, http.StatusOK, sess.snapshot())
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		httpError(w, http.StatusNotFound, "no such game")
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	sess.mu.Lock()
	sess.watchers[conn] = struct{}{}
	state := sess.snapshot()
	sess.mu.Unlock()
	if err := conn.WriteJSON(state); err != nil {
		s.detach(sess, conn)
		return
	}

	// Reads are only needed to notice the peer going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.detach(sess, conn)
				return
			}
		}
	}()
}

func (s *Server) lookup(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) detach(sess *session, conn *websocket.Conn) {
	sess.mu.Lock()
	delete(sess.watchers, conn)
	sess.mu.Unlock()
	conn.Close()
}

func parseColor(name string) (game.Color, error) {
	switch name {
	case game.Red.String(), "":
		return game.Red, nil
	case game.Yellow.String():
		return game.Yellow, nil
	default:
		return game.None, fmt.Errorf("unknown color %q", name)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug().Err(err).Msg("failed to encode response")
	}
}

func httpError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
