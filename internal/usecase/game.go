package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type gameHistory interface {
	CanMove(cell int) bool
	ApplyMove(cell int) (entity.View, error)
	RewindTo(step int) (entity.View, error)
	CurrentView() entity.View
	Reset()
}

// GameUseCase drives one game session on behalf of a presentation layer.
type GameUseCase struct {
	logger    *slog.Logger
	sessionID string
	history   gameHistory
}

func NewGameUseCase(logger *slog.Logger, history gameHistory) *GameUseCase {
	sessionID := uuid.NewString()

	return &GameUseCase{
		logger:    logger.With("component", "usecase", "session", sessionID),
		sessionID: sessionID,
		history:   history,
	}
}

func (that *GameUseCase) SessionID() string {
	return that.sessionID
}

// MakeMove - places the next mark on cell. A move on an occupied cell or a
// decided board is not an error: the unchanged view is returned.
func (that *GameUseCase) MakeMove(cell int) (entity.View, error) {
	log := that.logger.With("method", "MakeMove", "cell", cell)

	if !that.history.CanMove(cell) {
		view, err := that.history.ApplyMove(cell)
		if err != nil {
			log.Warn("move refused", "error", err)
			return view, fmt.Errorf("failed to make move: %w", err)
		}

		log.Debug("move ignored", "step", view.Step, "status", view.Status.String())
		return view, nil
	}

	view, err := that.history.ApplyMove(cell)
	if err != nil {
		return view, fmt.Errorf("failed to make move: %w", err)
	}

	last := view.Moves[view.Step]
	log.Info("move made", "step", view.Step, "player", last.Player.String())

	if view.Status.IsDecided() {
		log.Info("game decided", "status", view.Status.String())
	}

	return view, nil
}

// JumpTo - moves the displayed position to step.
func (that *GameUseCase) JumpTo(step int) (entity.View, error) {
	log := that.logger.With("method", "JumpTo", "step", step)

	view, err := that.history.RewindTo(step)
	if err != nil {
		log.Warn("jump refused", "error", err)
		return view, fmt.Errorf("failed to jump to step: %w", err)
	}

	log.Debug("jumped", "status", view.Status.String())

	return view, nil
}

func (that *GameUseCase) View() entity.View {
	return that.history.CurrentView()
}

// Restart - throws away the whole history and starts from the empty board.
func (that *GameUseCase) Restart() entity.View {
	that.history.Reset()
	that.logger.Info("game restarted")

	return that.history.CurrentView()
}
