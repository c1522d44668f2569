package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const helpText = `commands:
  move <cell>       mark a cell, 0..8 row by row (alias m)
  move <row> <col>  mark a cell by row and column, 0..2
  jump <step>       go back (or forward) to a step of the move list (alias j)
  view              show the board again
  sort              flip the order of the move list
  new               start over with an empty board
  help              show this text (alias ?)
  quit              leave (alias exit)
`

func (that *Server) handleMove(cmd *Command) error {
	log := that.logger.With("method", "handleMove")

	cell, err := parseCell(cmd.Args)
	if err != nil {
		log.Warn("bad move arguments", "args", cmd.Args, "error", err)
		return that.sendErrorResponse(err.Error())
	}

	before := that.uGame.View()

	view, err := that.uGame.MakeMove(cell)
	if errors.Is(err, apperror.ErrInvalidCell) {
		return that.sendErrorResponse(fmt.Sprintf("cell %d is not on the board", cell))
	}

	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	if view.Step == before.Step {
		return that.sendNotice(rejectReason(before, cell))
	}

	return that.renderer.view(view)
}

func (that *Server) handleJump(cmd *Command) error {
	log := that.logger.With("method", "handleJump")

	if len(cmd.Args) != 1 {
		return that.sendErrorResponse("usage: jump <step>")
	}

	step, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		log.Warn("bad jump argument", "arg", cmd.Args[0])
		return that.sendErrorResponse(fmt.Sprintf("step %q is not a number", cmd.Args[0]))
	}

	view, err := that.uGame.JumpTo(step)
	if errors.Is(err, apperror.ErrInvalidStep) {
		return that.sendErrorResponse(fmt.Sprintf("there is no step %d", step))
	}

	if err != nil {
		return fmt.Errorf("failed to jump: %w", err)
	}

	return that.renderer.view(view)
}

func (that *Server) handleView(_ *Command) error {
	return that.renderer.view(that.uGame.View())
}

func (that *Server) handleSort(_ *Command) error {
	that.renderer.descending = !that.renderer.descending

	return that.renderer.moves(that.uGame.View())
}

func (that *Server) handleNew(_ *Command) error {
	return that.renderer.view(that.uGame.Restart())
}

func (that *Server) handleHelp(_ *Command) error {
	if _, err := io.WriteString(that.out, helpText); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}

	return nil
}

func (that *Server) handleQuit(_ *Command) error {
	return errQuit
}

func (that *Server) sendNotice(message string) error {
	text := that.out.String(message).Faint().String()

	if _, err := fmt.Fprintln(that.out, text); err != nil {
		return fmt.Errorf("failed to write notice: %w", err)
	}

	return nil
}

// parseCell - accepts either a single cell index or a row and a column.
func parseCell(args []string) (int, error) {
	switch len(args) {
	case 1:
		cell, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("cell %q is not a number", args[0])
		}
		return cell, nil
	case 2:
		row, err := parseCoordinate("row", args[0])
		if err != nil {
			return 0, err
		}

		col, err := parseCoordinate("col", args[1])
		if err != nil {
			return 0, err
		}

		return entity.CellIndex(row, col), nil
	default:
		return 0, errors.New("usage: move <cell> or move <row> <col>")
	}
}

func parseCoordinate(name, arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil || value < 0 || value >= entity.BoardSide {
		return 0, fmt.Errorf("%s %q must be 0, 1 or 2", name, arg)
	}
	return value, nil
}

func rejectReason(view entity.View, cell int) string {
	if view.Status.Kind == entity.StatusWinner {
		return "the game is over, jump back to play on"
	}
	return fmt.Sprintf("cell %d is already taken", cell)
}
