package game

// directions are the four line orientations a win can lie on: horizontal,
// vertical, diagonal and anti-diagonal. Each is scanned once from every
// cell, so only one orientation per axis is needed.
var directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// HasConnectedFour reports whether color owns four aligned cells.
func HasConnectedFour(b Board, color Color) bool {
	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if b.ColorAt(row, col) != color {
				continue
			}
			for _, d := range directions {
				if lineFrom(b, row, col, d[0], d[1], color) {
					return true
				}
			}
		}
	}
	return false
}

func lineFrom(b Board, row, col, dr, dc int, color Color) bool {
	size := b.Size()
	for k := 1; k < ConnectLength; k++ {
		r := row + k*dr
		c := col + k*dc
		if r < 0 || r >= size || c < 0 || c >= size {
			return false
		}
		if b.ColorAt(r, c) != color {
			return false
		}
	}
	return true
}

// Winner returns the side holding a connected four, or None.
func Winner(b Board) Color {
	if HasConnectedFour(b, Red) {
		return Red
	}
	if HasConnectedFour(b, Yellow) {
		return Yellow
	}
	return None
}

// GameOver reports whether the game has ended, either by a win or by the
// board filling up.
func GameOver(b Board) bool {
	return !b.HasLegalMove() || Winner(b) != None
}
