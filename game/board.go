package game

import (
	"fmt"
	"strings"
)

// Grid is the concrete N x N gravity-drop board. Cells are addressed as
// (row, col) with row 0 at the bottom; heights tracks the fill level per
// column so drops and legality checks are O(1).
type Grid struct {
	size    int
	cells   [][]Color
	heights []int
}

// NewGrid returns an empty size x size board.
func NewGrid(size int) *Grid {
	if size < ConnectLength {
		panic(fmt.Sprintf("board size %d is smaller than a winning line", size))
	}
	cells := make([][]Color, size)
	for r := range cells {
		cells[r] = make([]Color, size)
	}
	return &Grid{
		size:    size,
		cells:   cells,
		heights: make([]int, size),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) ColumnPlayable(col int) bool {
	return col >= 0 && col < g.size && g.heights[col] < g.size
}

func (g *Grid) Drop(col int, color Color) error {
	if color != Red && color != Yellow {
		return fmt.Errorf("cannot drop color %v", color)
	}
	if !g.ColumnPlayable(col) {
		return fmt.Errorf("column %d is not playable", col)
	}
	g.cells[g.heights[col]][col] = color
	g.heights[col]++
	return nil
}

func (g *Grid) HasLegalMove() bool {
	for col := 0; col < g.size; col++ {
		if g.heights[col] < g.size {
			return true
		}
	}
	return false
}

func (g *Grid) ColorAt(row, col int) Color {
	return g.cells[row][col]
}

// Key serializes the full board contents row by row. Two boards share a
// key exactly when every cell matches, which is what the search cache
// requires; a lossy hash would not do.
func (g *Grid) Key() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			switch g.cells[r][c] {
			case Red:
				b.WriteByte('R')
			case Yellow:
				b.WriteByte('Y')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('/')
	}
	return b.String()
}

func (g *Grid) Clone() Board {
	cells := make([][]Color, g.size)
	for r := range cells {
		cells[r] = make([]Color, g.size)
		copy(cells[r], g.cells[r])
	}
	heights := make([]int, g.size)
	copy(heights, g.heights)
	return &Grid{
		size:    g.size,
		cells:   cells,
		heights: heights,
	}
}

// ParseGrid builds a board from rows of 'R', 'Y' and '.' given top row
// first. Pieces must rest on the bottom or on another piece.
func ParseGrid(rows []string) (*Grid, error) {
	size := len(rows)
	g := NewGrid(size)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), size)
		}
		r := size - 1 - i
		for c := 0; c < size; c++ {
			switch row[c] {
			case 'R':
				g.cells[r][c] = Red
			case 'Y':
				g.cells[r][c] = Yellow
			case '.':
			default:
				return nil, fmt.Errorf("unknown cell %q at row %d col %d", row[c], i, c)
			}
		}
	}
	for c := 0; c < size; c++ {
		h := size
		for h > 0 && g.cells[h-1][c] == None {
			h--
		}
		for r := 0; r < h; r++ {
			if g.cells[r][c] == None {
				return nil, fmt.Errorf("column %d has a floating piece", c)
			}
		}
		g.heights[c] = h
	}
	return g, nil
}

// Height returns the number of pieces in col.
func (g *Grid) Height(col int) int {
	return g.heights[col]
}

// String renders the board top row first, for logs.
func (g *Grid) String() string {
	var b strings.Builder
	for r := g.size - 1; r >= 0; r-- {
		for c := 0; c < g.size; c++ {
			switch g.cells[r][c] {
			case Red:
				b.WriteString("R ")
			case Yellow:
				b.WriteString("Y ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
