package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

var errQuit = errors.New("quit")

type uGame interface {
	MakeMove(cell int) (entity.View, error)
	JumpTo(step int) (entity.View, error)
	View() entity.View
	Restart() entity.View
}

// Command is one line of user input split into an action and its arguments.
type Command struct {
	Action string
	Args   []string
}

type Options struct {
	Prompt          string
	NoColor         bool
	MovesDescending bool
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	out      *termenv.Output
	renderer *renderer
	prompt   string

	handlers map[string]func(cmd *Command) error
	aliases  map[string]string
}

func New(logger *slog.Logger, uGame uGame, writer io.Writer, opts Options) *Server {
	var out *termenv.Output
	if opts.NoColor {
		out = termenv.NewOutput(writer, termenv.WithProfile(termenv.Ascii))
	} else {
		out = termenv.NewOutput(writer)
	}

	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		out:      out,
		renderer: newRenderer(out, opts.MovesDescending),
		prompt:   opts.Prompt,

		handlers: make(map[string]func(*Command) error),
		aliases: map[string]string{
			"m":    "move",
			"j":    "jump",
			"?":    "help",
			"exit": "quit",
		},
	}

	server.handlers["move"] = server.handleMove
	server.handlers["jump"] = server.handleJump
	server.handlers["view"] = server.handleView
	server.handlers["sort"] = server.handleSort
	server.handlers["new"] = server.handleNew
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Start - renders the game and processes commands from input until it is
// exhausted, the user quits or ctx is cancelled.
func (that *Server) Start(ctx context.Context, input io.Reader) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := that.renderer.view(that.uGame.View()); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	for {
		if err := that.writePrompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.finishInput(readErr)
			}

			err := that.handleLine(line)
			if errors.Is(err, errQuit) {
				log.Info("console closed by user")
				return nil
			}

			if err != nil {
				log.Error("error processing command", "error", err)
				return err
			}
		}
	}
}

func (that *Server) finishInput(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	that.logger.Info("console input closed")

	return nil
}

// handleLine - parses a line and runs the matching handler.
func (that *Server) handleLine(line string) error {
	cmd, ok := parseCommand(line)
	if !ok {
		return nil
	}

	that.resolve(cmd)

	handler, ok := that.handlers[cmd.Action]
	if !ok {
		that.logger.Warn("unknown command", "action", cmd.Action)
		return that.sendErrorResponse(fmt.Sprintf("unknown command %q, type help for the list", cmd.Action))
	}

	return handler(cmd)
}

func parseCommand(line string) (*Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	return &Command{
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, true
}

func (that *Server) resolve(cmd *Command) {
	if action, ok := that.aliases[cmd.Action]; ok {
		cmd.Action = action
	}
}

func (that *Server) writePrompt() error {
	if that.prompt == "" {
		return nil
	}

	if _, err := io.WriteString(that.out, that.prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(message string) error {
	text := that.out.String("error: " + message).Foreground(that.out.Color("9")).String()

	if _, err := fmt.Fprintln(that.out, text); err != nil {
		return fmt.Errorf("failed to write error: %w", err)
	}

	return nil
}
