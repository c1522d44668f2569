package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
)

func TestRun(t *testing.T) {
	// Given: a config with colours off and a scripted game
	conf := &config.Config{
		LogLevel: "info",
		Console:  config.Console{Prompt: "> ", NoColor: true},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	output := &bytes.Buffer{}

	// When: X takes the diagonal
	input := strings.NewReader("move 0\nmove 1\nmove 4\nmove 2\nmove 8\nquit\n")
	err := Run(context.Background(), logger, conf, input, output)

	// Then: the session ends cleanly with X as the winner
	require.NoError(t, err)
	assert.Contains(t, output.String(), "Winner: X")
	assert.Contains(t, output.String(), "> 5. Go to move #5 (X at row 2, col 2)")
}
