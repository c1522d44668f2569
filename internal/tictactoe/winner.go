package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// WinCombos lists the rows, columns and diagonals in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result is the outcome of a win check. Won is false when nobody has three in a row.
type Result struct {
	Winner entity.Player
	Line   [3]int
	Won    bool
}

// Evaluate - returns the first line in WinCombos that holds three equal marks.
func Evaluate(board entity.Board) Result {
	return evaluate(board[:])
}

// EvaluateCells - like Evaluate, for callers holding a plain slice of cells.
func EvaluateCells(cells []entity.Cell) (Result, error) {
	if len(cells) != entity.BoardSize {
		return Result{}, fmt.Errorf("%w: %d cells, want %d", apperror.ErrInvalidBoard, len(cells), entity.BoardSize)
	}

	return evaluate(cells), nil
}

func evaluate(cells []entity.Cell) Result {
	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if a.IsEmpty() || a != b || b != c {
			continue
		}

		winner, ok := a.Player()
		if !ok {
			continue
		}

		return Result{Winner: winner, Line: combo, Won: true}
	}

	return Result{}
}
