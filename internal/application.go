package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/console"
)

// RunApp - runs the application on the process's standard input and output.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "component", "app", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one session reading commands from input and drawing to output.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, input io.Reader, output io.Writer) error {
	log := logger.With("component", "app")

	gameUseCase := usecase.NewGameUseCase(logger, game.New())

	consoleServer := console.New(logger, gameUseCase, output, console.Options{
		Prompt:          conf.Console.Prompt,
		NoColor:         conf.Console.NoColor,
		MovesDescending: conf.Console.MovesDescending,
	})

	log.Info("Starting console session", "session", gameUseCase.SessionID())

	if err := consoleServer.Start(ctx, input); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Console session finished")

	return nil
}
