package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Cell is the tri-state content of a board square: empty or a player's mark.
type Cell uint8

const EmptyCell Cell = 0

// MarkOf - returns the cell value holding the player's mark.
func MarkOf(player Player) Cell {
	return Cell(player)
}

// Player - returns the player whose mark is in the cell, false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch p := Player(that); p {
	case PlayerX, PlayerO:
		return p, true
	default:
		return 0, false
	}
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) String() string {
	if player, ok := that.Player(); ok {
		return player.String()
	}
	return ""
}

// Board is one snapshot of the 3x3 grid stored row-major.
// It is an array, so every copy is independent of the original.
type Board [BoardSize]Cell

// With - returns a copy of the board with the player's mark at idx.
func (that Board) With(idx int, player Player) Board {
	that[idx] = MarkOf(player)
	return that
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// Marks - counts the non-empty cells.
func (that Board) Marks() int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// IsValidCell - reports whether idx addresses a cell of the board.
func IsValidCell(idx int) bool {
	return idx >= 0 && idx < BoardSize
}

// CellIndex - converts a zero-based row and column to a cell index.
func CellIndex(row, col int) int {
	return row*BoardSide + col
}

// CellPosition - converts a cell index to a zero-based row and column.
func CellPosition(idx int) (int, int) {
	return idx / BoardSide, idx % BoardSide
}
