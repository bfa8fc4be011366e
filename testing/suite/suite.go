package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Board repository.BoardRepository

	PlayerX entity.Player
	PlayerO entity.Player
}

// New - prepares a logger, a fresh board and a pair of named players.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Board:   repository.NewBoardRepository(),
		PlayerX: entity.NewPlayer("X-player", entity.PlayerX),
		PlayerO: entity.NewPlayer("O-player", entity.PlayerO),
	}
}
