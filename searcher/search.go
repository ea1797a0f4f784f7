package searcher

import (
	"math"

	"c4/game"
)

// searchContext holds the mutable state of one decision: the side being
// played for, the column order, the per-decision cache and the node
// counter. A fresh context is built for every FindMove call, so engines
// are reusable and calls never share state.
type searchContext struct {
	color    game.Color
	order    []int
	cache    *transpositionCache
	useCache bool
	nodes    int
	cutoffs  int
}

// search runs depth-bounded minimax with alpha-beta pruning. The side to
// move is derived from maximizing: the context's own color when true,
// the opponent when false. Recursion stops when depth runs out or no
// column is playable, and the static evaluator scores the leaf. A
// realized four-in-a-row is not terminal by itself; it surfaces through
// the evaluator's WinScore contribution.
func (ctx *searchContext) search(b game.Board, depth int, maximizing bool, alpha, beta int) int {
	ctx.nodes++

	key := cacheKey{board: b.Key(), depth: depth}
	if ctx.useCache {
		if score, ok := ctx.cache.probe(key, alpha, beta); ok {
			return score
		}
	}

	if depth == 0 || !b.HasLegalMove() {
		score := Evaluate(b, ctx.color)
		if ctx.useCache {
			ctx.cache.storeExact(key, score)
		}
		return score
	}

	moveColor := ctx.color
	if !maximizing {
		moveColor = ctx.color.Opponent()
	}

	alphaOrig, betaOrig := alpha, beta
	value := math.MinInt
	if !maximizing {
		value = math.MaxInt
	}

	for _, col := range ctx.order {
		if !b.ColumnPlayable(col) {
			continue
		}
		child := b.Clone()
		if err := child.Drop(col, moveColor); err != nil {
			panic(err) // playable column cannot fail to accept a drop
		}
		score := ctx.search(child, depth-1, !maximizing, alpha, beta)

		if maximizing {
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if score < value {
				value = score
			}
			if value < beta {
				beta = value
			}
		}
		if beta <= alpha {
			ctx.cutoffs++
			break
		}
	}

	if ctx.useCache {
		ctx.cache.store(key, value, alphaOrig, betaOrig)
	}
	return value
}
