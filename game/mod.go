package game

// Color identifies a cell owner. The two sides are +1 and -1 so that
// negating a color yields the opponent; None marks an empty cell.
type Color int

const (
	None   Color = 0
	Red    Color = 1
	Yellow Color = -1
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return -c
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "None"
	}
}

// NoColumn is returned by a player that has no legal column to drop into.
const NoColumn = -1

// ConnectLength is the number of aligned pieces that wins the game.
const ConnectLength = 4

// Board is the collaborator contract the search core operates on. Drop
// mutates the board in place, so callers keep the original intact by
// cloning first.
type Board interface {
	// Size returns N for the N x N grid.
	Size() int
	// ColumnPlayable reports whether a piece can still be dropped into col.
	ColumnPlayable(col int) bool
	// Drop gravity-places a piece of the given color into col.
	Drop(col int, color Color) error
	// HasLegalMove reports whether any column is still playable.
	HasLegalMove() bool
	// ColorAt reads the cell at (row, col); row 0 is the bottom row.
	ColorAt(row, col int) Color
	// Key returns a canonical snapshot of the full board contents,
	// usable as a map key.
	Key() string
	// Clone returns an independent board with identical contents.
	Clone() Board
}
