package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

// RunApp - runs the application on the process stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	clearScreen := !conf.PlainOutput && term.IsTerminal(int(os.Stdout.Fd()))

	return Run(ctx, logger, os.Stdin, os.Stdout, clearScreen)
}

// Run - wires the board, the game manager and the console, and blocks until the console stops or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer, clearScreen bool) error {
	log := logger.With("component", "app")

	board := repository.NewBoardRepository()
	gameManager := usecase.NewGameManager(logger, board)
	console := terminal.New(logger, gameManager, in, out, clearScreen)

	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console")
		consoleErrCh <- console.Start(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console finished, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
