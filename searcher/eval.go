package searcher

import "c4/game"

// Heuristic weights. A completed four dominates every combination of
// partial lines; a three needing one cell outweighs scattered twos.
const (
	WinScore   = 10000
	threeScore = 50
	twoScore   = 10
)

// lineDirections are the four orientations a winning line can lie on.
var lineDirections = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// Evaluate scores a position from color's perspective: positive favors
// color, negative favors the opponent. Zero-sum by construction, so
// Evaluate(b, c) == -Evaluate(b, c.Opponent()).
func Evaluate(b game.Board, color game.Color) int {
	return lineScore(b, color) - lineScore(b, color.Opponent())
}

// lineScore sums the window contributions for one side over all four
// directions.
func lineScore(b game.Board, color game.Color) int {
	score := 0
	for _, d := range lineDirections {
		score += directionScore(b, color, d[0], d[1])
	}
	return score
}

// directionScore scans every length-4 window starting at every cell
// along one direction. Cells outside the board contribute nothing; an
// opposing cell kills the window.
func directionScore(b game.Board, color game.Color, dr, dc int) int {
	size := b.Size()
	score := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			score += windowScore(b, color, row, col, dr, dc)
		}
	}
	return score
}

func windowScore(b game.Board, color game.Color, row, col, dr, dc int) int {
	size := b.Size()
	count, empty := 0, 0
	for k := 0; k < game.ConnectLength; k++ {
		r := row + k*dr
		c := col + k*dc
		if r < 0 || r >= size || c < 0 || c >= size {
			continue
		}
		switch b.ColorAt(r, c) {
		case color:
			count++
		case game.None:
			empty++
		default:
			return 0
		}
	}
	switch {
	case count == 4:
		return WinScore
	case count == 3 && empty == 1:
		return threeScore
	case count == 2 && empty == 2:
		return twoScore
	default:
		return 0
	}
}
