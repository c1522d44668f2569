package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const maxWaitDuration = 5 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Logs   *bytes.Buffer

	History *game.GameHistory
	Game    *usecase.GameUseCase
}

// New - builds a fresh game session whose JSON logs are captured in Logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	history := game.New()

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		History: history,
		Game:    usecase.NewGameUseCase(logger, history),
	}
}
