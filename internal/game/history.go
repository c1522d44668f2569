package game

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// GameHistory holds every board snapshot of a game and a cursor selecting the
// one in play. Turn, winner and draw are always derived from the snapshot at
// the cursor and its step parity.
type GameHistory struct {
	snapshots []entity.Board
	cursor    int
}

// New - returns a history holding only the empty board.
func New() *GameHistory {
	return &GameHistory{
		snapshots: []entity.Board{{}},
	}
}

// PlayerToMove - X moves on even steps, O on odd ones.
func PlayerToMove(step int) entity.Player {
	if step%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// CanMove - reports whether ApplyMove(cell) would record a new snapshot.
func (that *GameHistory) CanMove(cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	current := that.current()
	if tictactoe.Evaluate(current).Won {
		return false
	}

	return current[cell].IsEmpty()
}

// ApplyMove - marks cell for the player to move at the cursor.
// Moves on an occupied cell or after the game is won are ignored and the
// unchanged view is returned. Any snapshots after the cursor are discarded.
func (that *GameHistory) ApplyMove(cell int) (entity.View, error) {
	if !entity.IsValidCell(cell) {
		return that.CurrentView(), fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.CanMove(cell) {
		return that.CurrentView(), nil
	}

	next := that.current().With(cell, PlayerToMove(that.cursor))

	that.snapshots = append(that.snapshots[:that.cursor+1], next)
	that.cursor = len(that.snapshots) - 1

	return that.CurrentView(), nil
}

// RewindTo - moves the cursor to step without touching the snapshots.
func (that *GameHistory) RewindTo(step int) (entity.View, error) {
	if err := that.checkStep(step); err != nil {
		return that.CurrentView(), err
	}

	that.cursor = step

	return that.CurrentView(), nil
}

// Reset - drops every move and returns to the empty board.
func (that *GameHistory) Reset() {
	that.snapshots = []entity.Board{{}}
	that.cursor = 0
}

// Len - number of snapshots, including the empty board.
func (that *GameHistory) Len() int {
	return len(that.snapshots)
}

// Step - the cursor position.
func (that *GameHistory) Step() int {
	return that.cursor
}

// Snapshot - returns a copy of the board at step.
func (that *GameHistory) Snapshot(step int) (entity.Board, error) {
	if err := that.checkStep(step); err != nil {
		return entity.Board{}, err
	}

	return that.snapshots[step], nil
}

// Snapshots - returns a copy of the whole history.
func (that *GameHistory) Snapshots() []entity.Board {
	return slices.Clone(that.snapshots)
}

// CurrentView - board, status and move list at the cursor.
func (that *GameHistory) CurrentView() entity.View {
	board := that.current()

	view := entity.View{
		Board: board,
		Moves: that.moves(),
		Step:  that.cursor,
	}

	result := tictactoe.Evaluate(board)
	switch {
	case result.Won:
		view.Status = entity.Winner(result.Winner)
		view.WinLine = result.Line[:]
	case board.IsFull():
		view.Status = entity.Draw()
	default:
		view.Status = entity.NextToMove(PlayerToMove(that.cursor))
	}

	return view
}

func (that *GameHistory) current() entity.Board {
	return that.snapshots[that.cursor]
}

func (that *GameHistory) checkStep(step int) error {
	if step < 0 || step >= len(that.snapshots) {
		return fmt.Errorf("%w: step %d, history has %d", apperror.ErrInvalidStep, step, len(that.snapshots))
	}
	return nil
}

func (that *GameHistory) moves() []entity.MoveEntry {
	moves := make([]entity.MoveEntry, 0, len(that.snapshots))

	for step := range that.snapshots {
		entry := entity.MoveEntry{
			Step:    step,
			Label:   entity.MoveLabel(step),
			Cell:    -1,
			Current: step == that.cursor,
		}

		if step > 0 {
			entry.Player = PlayerToMove(step - 1)
			entry.Cell = changedCell(that.snapshots[step-1], that.snapshots[step])
		}

		moves = append(moves, entry)
	}

	return moves
}

// changedCell - index of the cell that was marked between two consecutive snapshots.
func changedCell(prev, next entity.Board) int {
	for i := range next {
		if prev[i] != next[i] {
			return i
		}
	}
	return -1
}
