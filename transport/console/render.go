package console

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const rowSeparator = "---+---+---"

type renderer struct {
	out        *termenv.Output
	descending bool
}

func newRenderer(out *termenv.Output, descending bool) *renderer {
	return &renderer{out: out, descending: descending}
}

// view - writes the board, the status line and the move list.
func (that *renderer) view(view entity.View) error {
	var sb strings.Builder

	sb.WriteString(that.board(view))
	sb.WriteString("\n")
	sb.WriteString(that.status(view.Status))
	sb.WriteString("\n\n")
	sb.WriteString(that.moveList(view.Moves))

	if _, err := that.out.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write view: %w", err)
	}

	return nil
}

func (that *renderer) moves(view entity.View) error {
	if _, err := that.out.WriteString(that.moveList(view.Moves)); err != nil {
		return fmt.Errorf("failed to write moves: %w", err)
	}

	return nil
}

func (that *renderer) board(view entity.View) string {
	var sb strings.Builder

	for row := 0; row < entity.BoardSide; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 0, entity.BoardSide)
		for col := 0; col < entity.BoardSide; col++ {
			idx := entity.CellIndex(row, col)
			cells = append(cells, " "+that.cell(view.Board[idx], idx, slices.Contains(view.WinLine, idx))+" ")
		}

		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	return sb.String()
}

// cell - empty cells show their index so they can be typed in a move command.
func (that *renderer) cell(cell entity.Cell, idx int, winning bool) string {
	player, ok := cell.Player()
	if !ok {
		return that.out.String(strconv.Itoa(idx)).Faint().String()
	}

	style := that.out.String(player.String()).Foreground(that.playerColor(player))
	if winning {
		style = style.Bold().Underline()
	}

	return style.String()
}

func (that *renderer) status(status entity.Status) string {
	style := that.out.String(status.String())
	if status.IsDecided() {
		style = style.Bold()
	}

	return style.String()
}

func (that *renderer) moveList(moves []entity.MoveEntry) string {
	ordered := slices.Clone(moves)
	if that.descending {
		slices.Reverse(ordered)
	}

	var sb strings.Builder

	for _, move := range ordered {
		marker := " "
		if move.Current {
			marker = ">"
		}

		line := fmt.Sprintf("%s %d. %s", marker, move.Step, move.Label)
		if move.Step > 0 {
			row, col := entity.CellPosition(move.Cell)
			line += fmt.Sprintf(" (%s at row %d, col %d)", move.Player, row, col)
		}

		if move.Current {
			line = that.out.String(line).Bold().String()
		}

		sb.WriteString(line + "\n")
	}

	return sb.String()
}

func (that *renderer) playerColor(player entity.Player) termenv.Color {
	if player == entity.PlayerX {
		return that.out.Color("9")
	}
	return that.out.Color("12")
}
