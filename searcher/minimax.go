package searcher

import (
	"math"
	"time"

	"c4/game"

	"github.com/rs/zerolog/log"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 6

type Option func(*Minimax)

// WithDepth sets the maximum search depth in plies.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithoutCache disables the per-decision transposition cache. Mainly
// useful for verifying that caching never changes the chosen move.
func WithoutCache() Option {
	return func(m *Minimax) {
		m.useCache = false
	}
}

// Minimax is a depth-bounded minimax engine with alpha-beta pruning and
// a per-decision transposition cache. The engine itself is immutable
// configuration; all per-decision state lives in a context created
// inside FindMove, so one engine value can serve any number of calls.
type Minimax struct {
	depth    int
	useCache bool
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		depth:    DefaultDepth,
		useCache: true,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Depth returns the configured search depth.
func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove picks the column to drop into for the given side. Candidate
// columns are visited in the fixed center-out order; each playable one
// is applied to a clone and searched one ply shallower with the opponent
// to move. Ties keep the earliest candidate in the order. The input
// board is never mutated. Returns game.NoColumn when nothing is
// playable.
func (m *Minimax) FindMove(b game.Board, color game.Color) (int, SearchMetrics) {
	start := time.Now()
	ctx := &searchContext{
		color:    color,
		order:    ColumnOrder(b.Size()),
		cache:    newTranspositionCache(),
		useCache: m.useCache,
	}

	bestColumn := game.NoColumn
	bestScore := math.MinInt
	for _, col := range ctx.order {
		if !b.ColumnPlayable(col) {
			continue
		}
		child := b.Clone()
		if err := child.Drop(col, color); err != nil {
			panic(err) // playable column cannot fail to accept a drop
		}
		score := ctx.search(child, m.depth-1, false, math.MinInt, math.MaxInt)
		if score > bestScore {
			bestScore = score
			bestColumn = col
		}
	}

	metrics := SearchMetrics{
		Depth:       m.depth,
		Nodes:       ctx.nodes,
		CacheHits:   ctx.cache.hits,
		CacheStores: ctx.cache.stores,
		Cutoffs:     ctx.cutoffs,
		Elapsed:     time.Since(start),
	}
	log.Debug().
		Stringer("color", color).
		Int("column", bestColumn).
		Int("score", bestScore).
		Int("nodes", metrics.Nodes).
		Dur("elapsed", metrics.Elapsed).
		Msg("decision complete")
	return bestColumn, metrics
}
