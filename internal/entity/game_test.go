package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	t.Run("Empty cell has no player", func(t *testing.T) {
		// Given: the empty cell value
		cell := EmptyCell

		// When: asking for its player
		_, ok := cell.Player()

		// Then: there should be none
		assert.False(t, ok)
		assert.True(t, cell.IsEmpty())
		assert.Equal(t, "", cell.String())
	})

	t.Run("Mark cell round-trips its player", func(t *testing.T) {
		for _, player := range []Player{PlayerX, PlayerO} {
			// When: creating a mark for the player
			cell := MarkOf(player)

			// Then: the cell should report the same player
			got, ok := cell.Player()
			require.True(t, ok)
			assert.Equal(t, player, got)
			assert.False(t, cell.IsEmpty())
			assert.Equal(t, player.String(), cell.String())
		}
	})
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}

func TestBoard_With(t *testing.T) {
	t.Run("Returns a copy and leaves the original untouched", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: marking cell 4 for X
		next := board.With(4, PlayerX)

		// Then: only the copy should hold the mark
		assert.Equal(t, MarkOf(PlayerX), next[4])
		assert.Equal(t, EmptyCell, board[4])
		assert.Equal(t, 1, next.Marks())
		assert.Equal(t, 0, board.Marks())
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		var board Board
		assert.False(t, board.IsFull())
	})

	t.Run("Board with every cell marked is full", func(t *testing.T) {
		// Given: a board where every cell holds a mark
		var board Board
		for i := range board {
			board = board.With(i, PlayerO)
		}

		// Then: it should be reported as full
		assert.True(t, board.IsFull())
		assert.Equal(t, BoardSize, board.Marks())
	})
}

func TestCellCoordinates(t *testing.T) {
	for idx := 0; idx < BoardSize; idx++ {
		row, col := CellPosition(idx)
		assert.Equal(t, idx, CellIndex(row, col))
	}

	assert.True(t, IsValidCell(0))
	assert.True(t, IsValidCell(8))
	assert.False(t, IsValidCell(-1))
	assert.False(t, IsValidCell(9))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Winner: X", Winner(PlayerX).String())
	assert.Equal(t, "Draw", Draw().String())
	assert.Equal(t, "Next player: O", NextToMove(PlayerO).String())

	assert.True(t, Winner(PlayerO).IsDecided())
	assert.True(t, Draw().IsDecided())
	assert.False(t, NextToMove(PlayerX).IsDecided())
}

func TestMoveLabel(t *testing.T) {
	assert.Equal(t, "Go to game start", MoveLabel(0))
	assert.Equal(t, "Go to move #1", MoveLabel(1))
	assert.Equal(t, "Go to move #9", MoveLabel(9))
}
